package models

import (
	"context"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const (
	SortByRating  = "rating"
	SortByReviews = "reviews"
	OrderDesc     = "desc"
)

func checkSortParams(sortBy, order string) error {
	switch sortBy {
	case "", SortByRating, SortByReviews:
	default:
		return ErrBadRequest
	}
	switch order {
	case "", OrderDesc:
	default:
		return ErrBadRequest
	}
	return nil
}

// filterByService keeps technicians offering at least one service whose name
// contains the filter substring, case-insensitively. An empty filter keeps
// everything.
func filterByService(accounts []Account, service string) []Account {
	if service == "" {
		return accounts
	}
	needle := strings.ToLower(service)
	filtered := make([]Account, 0, len(accounts))
	for _, acc := range accounts {
		for _, svc := range acc.Technician.Services {
			if strings.Contains(strings.ToLower(svc.Name), needle) {
				filtered = append(filtered, acc)
				break
			}
		}
	}
	return filtered
}

// sortTechnicians orders the slice descending by the requested metric, ties
// keeping fetch order. order=desc then reverses whatever ordering is already
// applied.
func sortTechnicians(accounts []Account, sortBy, order string) {
	switch sortBy {
	case SortByRating:
		sort.SliceStable(accounts, func(i, j int) bool {
			return accounts[i].Technician.AverageRating() > accounts[j].Technician.AverageRating()
		})
	case SortByReviews:
		sort.SliceStable(accounts, func(i, j int) bool {
			return len(accounts[i].Technician.Reviews) > len(accounts[j].Technician.Reviews)
		})
	}
	if order == OrderDesc {
		for i, j := 0, len(accounts)-1; i < j; i, j = i+1, j-1 {
			accounts[i], accounts[j] = accounts[j], accounts[i]
		}
	}
}

// FindTechnicians lists every account carrying a technician sub-record,
// optionally filtered by service name and sorted by mean rating or review
// count. Invalid sort parameters fail before the collection is touched.
func (s *Store) FindTechnicians(ctx context.Context, service, sortBy, order string) ([]Account, error) {
	if err := checkSortParams(sortBy, order); err != nil {
		return nil, err
	}
	cur, err := s.accounts.Find(ctx, bson.M{"technician": bson.M{"$ne": nil}})
	if err != nil {
		return nil, err
	}
	var technicians []Account
	if err := cur.All(ctx, &technicians); err != nil {
		return nil, err
	}
	technicians = filterByService(technicians, service)
	sortTechnicians(technicians, sortBy, order)
	return technicians, nil
}

// FindTechnician fetches one technician account and denormalizes each
// received review's reviewer into a profile snapshot.
func (s *Store) FindTechnician(ctx context.Context, id primitive.ObjectID) (*Account, error) {
	acc, err := s.FindAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	if acc.Technician != nil {
		if err := s.attachReviewees(ctx, acc.Technician.Reviews); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// CreateTechnician persists a new account with a populated technician
// sub-record and no reviews yet.
func (s *Store) CreateTechnician(ctx context.Context, in *TechnicianInput) (*Account, error) {
	if err := ValidateRegister(&in.RegisterInput); err != nil {
		return nil, err
	}
	acc, err := s.insertAccount(ctx, &in.RegisterInput, in.Technician)
	if err != nil {
		return nil, err
	}
	return acc, nil
}

func (s *Store) insertAccount(ctx context.Context, in *RegisterInput, tech *Technician) (*Account, error) {
	taken, err := s.accountExists(ctx, bson.M{"$or": bson.A{
		bson.M{"username": in.Username},
		bson.M{"contact.email": in.Contact.Email},
		bson.M{"contact.phoneNumber": in.Contact.PhoneNumber},
	}})
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrAccountExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	acc := &Account{
		Username:   in.Username,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Address:    in.Address,
		Contact:    in.Contact,
		AvatarURL:  DefaultAvatarURL,
		Password:   string(hash),
		Technician: tech,
		Reviews:    []Review{},
		Orders:     []Order{},
	}
	if tech != nil {
		for i := range tech.Services {
			if tech.Services[i].ID.IsZero() {
				tech.Services[i].ID = primitive.NewObjectID()
			}
		}
	}
	res, err := s.accounts.InsertOne(ctx, acc)
	if err != nil {
		return nil, err
	}
	acc.ID = res.InsertedID.(primitive.ObjectID)
	return acc, nil
}

// AddTechnicianService appends a validated {name, price} service to the
// technician's services and returns the refreshed account.
func (s *Store) AddTechnicianService(ctx context.Context, id primitive.ObjectID, svc Service) (*Account, error) {
	svc.ID = primitive.NewObjectID()
	_, err := s.accounts.UpdateOne(ctx,
		bson.M{"_id": id, "technician": bson.M{"$ne": nil}},
		bson.M{"$push": bson.M{"technician.services": svc}},
	)
	if err != nil {
		return nil, err
	}
	acc, err := s.FindAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	if acc.Technician == nil {
		return nil, ErrNotFound
	}
	return acc, nil
}

// RemoveTechnician nulls out the technician sub-record, turning the account
// back into a plain customer. Downgrading an already-plain account is a
// no-op that still returns the account.
func (s *Store) RemoveTechnician(ctx context.Context, id primitive.ObjectID) (*Account, error) {
	_, err := s.accounts.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"technician": nil}},
	)
	if err != nil {
		return nil, err
	}
	return s.FindAccount(ctx, id)
}

// AddTechnicianReview appends a validated review to technician.reviews and
// returns the refreshed account.
func (s *Store) AddTechnicianReview(ctx context.Context, id primitive.ObjectID, rev Review) (*Account, error) {
	rev.ID = primitive.NewObjectID()
	_, err := s.accounts.UpdateOne(ctx,
		bson.M{"_id": id, "technician": bson.M{"$ne": nil}},
		bson.M{"$push": bson.M{"technician.reviews": rev}},
	)
	if err != nil {
		return nil, err
	}
	acc, err := s.FindAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	if acc.Technician == nil {
		return nil, ErrNotFound
	}
	return acc, nil
}

// RemoveTechnicianReview verifies both the account and the review sub-id
// resolve, then pulls the review.
func (s *Store) RemoveTechnicianReview(ctx context.Context, id, reviewID primitive.ObjectID) error {
	acc, err := s.FindAccount(ctx, id)
	if err != nil {
		return err
	}
	if acc.Technician == nil || !containsReview(acc.Technician.Reviews, reviewID) {
		return ErrNotFound
	}
	_, err = s.accounts.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$pull": bson.M{"technician.reviews": bson.M{"_id": reviewID}}},
	)
	return err
}

func containsReview(reviews []Review, id primitive.ObjectID) bool {
	for _, r := range reviews {
		if r.ID == id {
			return true
		}
	}
	return false
}
