package db

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/garagehub/servicing-app/models"
)

func mustID(hex string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		panic(err)
	}
	return id
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

// SampleAccounts returns the development fixture set: two technicians and
// two plain customers.
func SampleAccounts() []models.Account {
	techOne := mustID("63ce75449ae462be0adad72d")
	techTwo := mustID("63ce75449ae462be0adad72e")
	custOne := mustID("63ce75449ae462be0adad72f")
	custTwo := mustID("63ce75449ae462be0adad730")
	created := time.Date(2023, time.January, 23, 10, 0, 0, 0, time.UTC)

	return []models.Account{
		{
			ID:        techOne,
			Username:  "test-tech-01",
			FirstName: "James",
			LastName:  "Wright",
			Address:   models.Address{AddressLine: "12 Random Place", Postcode: "KF76 9LM"},
			Contact:   models.Contact{PhoneNumber: "32985262985", Email: "jameswright@company.com"},
			AvatarURL: models.DefaultAvatarURL,
			Password:  mustHash("autocentre"),
			Technician: &models.Technician{
				Company: "Wright Autos",
				Services: []models.Service{
					{ID: primitive.NewObjectID(), Name: "Servicing and MOT", Price: 120},
					{ID: primitive.NewObjectID(), Name: "Clutch repairs", Price: 250},
					{ID: primitive.NewObjectID(), Name: "Engine and cooling", Price: 180},
				},
				Reviews: []models.Review{
					{ID: primitive.NewObjectID(), ReviewBody: "Very good services :)", Rating: 4, ReviewedBy: custOne},
				},
			},
			Reviews: []models.Review{},
			Orders:  []models.Order{},
		},
		{
			ID:        techTwo,
			Username:  "test-tech-02",
			FirstName: "Gemma",
			LastName:  "Rushworth",
			Address:   models.Address{AddressLine: "8 Yellow Brick Road", Postcode: "LS1 4PD"},
			Contact:   models.Contact{PhoneNumber: "07856413579", Email: "gemmarushworth@company.com"},
			AvatarURL: models.DefaultAvatarURL,
			Password:  mustHash("fixitall"),
			Technician: &models.Technician{
				Company: "Rushworth Repairs",
				Services: []models.Service{
					{ID: primitive.NewObjectID(), Name: "Tyres, wheels and tracking", Price: 90},
					{ID: primitive.NewObjectID(), Name: "Valeting", Price: 45},
				},
				Reviews: []models.Review{
					{ID: primitive.NewObjectID(), ReviewBody: "Quick and tidy work", Rating: 5, ReviewedBy: custOne},
					{ID: primitive.NewObjectID(), ReviewBody: "Pricey but thorough", Rating: 3, ReviewedBy: custTwo},
				},
			},
			Reviews: []models.Review{},
			Orders:  []models.Order{},
		},
		{
			ID:        custOne,
			Username:  "test-user-01",
			FirstName: "Sarah",
			LastName:  "Hughes",
			Address:   models.Address{AddressLine: "3 Hilltop Avenue", Postcode: "M13 9PL"},
			Contact:   models.Contact{PhoneNumber: "07700900123", Email: "sarahhughes@company.com"},
			AvatarURL: models.DefaultAvatarURL,
			Password:  mustHash("redvauxhall"),
			Reviews: []models.Review{
				{ID: primitive.NewObjectID(), ReviewBody: "Prompt payment, no problems", Rating: 5, ReviewedBy: techOne},
			},
			Orders: []models.Order{
				{
					ID: primitive.NewObjectID(),
					Services: []models.Service{
						{ID: primitive.NewObjectID(), Name: "Servicing and MOT", Price: 120},
					},
					CreatedAt:  created,
					ServicedBy: techOne,
				},
			},
		},
		{
			ID:        custTwo,
			Username:  "test-user-02",
			FirstName: "Dev",
			LastName:  "Patel",
			Address:   models.Address{AddressLine: "77 Lower Lane", Postcode: "B4 7ET"},
			Contact:   models.Contact{PhoneNumber: "07700900456", Email: "devpatel@company.com"},
			AvatarURL: models.DefaultAvatarURL,
			Password:  mustHash("bluehonda"),
			Reviews:   []models.Review{},
			Orders:    []models.Order{},
		},
	}
}
