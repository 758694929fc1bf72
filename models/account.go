package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultAvatarURL is applied when an account is created without an avatar.
const DefaultAvatarURL = "https://www.gravatar.com/avatar/default?d=mp"

type Address struct {
	AddressLine string `bson:"addressLine" json:"addressLine"`
	Postcode    string `bson:"postcode" json:"postcode" validate:"omitempty,ukpostcode"`
}

type Contact struct {
	PhoneNumber string `bson:"phoneNumber" json:"phoneNumber" validate:"required,ukphone"`
	Email       string `bson:"email" json:"email" validate:"required,email"`
}

type Service struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Price       float64            `bson:"price" json:"price"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}

// Reviewee is the denormalized reviewer snapshot attached to a review at
// read time. It is never stored.
type Reviewee struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

type Review struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ReviewBody string             `bson:"reviewBody" json:"reviewBody"`
	Rating     float64            `bson:"rating" json:"rating"`
	ReviewedBy primitive.ObjectID `bson:"reviewedBy" json:"reviewedBy"`
	Reviewee   *Reviewee          `bson:"-" json:"reviewee,omitempty"`
}

type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Services    []Service          `bson:"services" json:"services"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	FulfilledAt *time.Time         `bson:"fulfilledAt" json:"fulfilledAt"`
	ServicedBy  primitive.ObjectID `bson:"servicedBy" json:"servicedBy"`
}

// Technician is the optional capability sub-record on an Account. A nil
// Technician marks a plain customer; the stored form is an explicit null so
// the customer/technician split stays queryable.
type Technician struct {
	Services     []Service `bson:"services" json:"services"`
	Reviews      []Review  `bson:"reviews" json:"reviews"`
	Company      string    `bson:"company,omitempty" json:"company,omitempty"`
	CompanyImage string    `bson:"companyImage,omitempty" json:"companyImage,omitempty"`
}

// AverageRating returns the mean of the received review ratings, 0 when the
// technician has no reviews yet.
func (t *Technician) AverageRating() float64 {
	if len(t.Reviews) == 0 {
		return 0
	}
	var sum float64
	for _, r := range t.Reviews {
		sum += r.Rating
	}
	return sum / float64(len(t.Reviews))
}

// Account is the single persisted aggregate. Reviews holds reviews received
// as a customer; reviews received as a technician live under Technician.
type Account struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Username   string             `bson:"username" json:"username"`
	FirstName  string             `bson:"firstName" json:"firstName"`
	LastName   string             `bson:"lastName" json:"lastName"`
	Address    Address            `bson:"address" json:"address"`
	Contact    Contact            `bson:"contact" json:"contact"`
	AvatarURL  string             `bson:"avatarUrl" json:"avatarUrl"`
	Password   string             `bson:"password,omitempty" json:"-"`
	Technician *Technician        `bson:"technician" json:"technician"`
	Reviews    []Review           `bson:"reviews" json:"reviews"`
	Orders     []Order            `bson:"orders" json:"orders"`
}

func (a *Account) IsTechnician() bool {
	return a.Technician != nil
}

// Name returns the display name used in reviewer snapshots.
func (a *Account) Name() string {
	if a.FirstName == "" {
		return a.LastName
	}
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}
