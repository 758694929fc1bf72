package models

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// FindUsers lists every plain customer account (no technician sub-record).
func (s *Store) FindUsers(ctx context.Context) ([]Account, error) {
	cur, err := s.accounts.Find(ctx, bson.M{"technician": nil})
	if err != nil {
		return nil, err
	}
	var users []Account
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FindUser fetches a plain customer account by id. Technician accounts are
// not visible through this lens.
func (s *Store) FindUser(ctx context.Context, id primitive.ObjectID) (*Account, error) {
	var acc Account
	err := s.accounts.FindOne(ctx, bson.M{"_id": id, "technician": nil}).Decode(&acc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// CreateUser persists a plain customer account from a validated registration
// body.
func (s *Store) CreateUser(ctx context.Context, in *RegisterInput) (*Account, error) {
	if err := ValidateRegister(in); err != nil {
		return nil, err
	}
	return s.insertAccount(ctx, in, nil)
}

// Authenticate looks an account up by email and compares the submitted
// password against the stored hash. Both failure modes collapse into the
// same generic outcome.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*Account, error) {
	var acc Account
	err := s.accounts.FindOne(ctx, bson.M{"contact.email": email}).Decode(&acc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(acc.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &acc, nil
}

// RemoveUser deletes the account outright.
func (s *Store) RemoveUser(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.accounts.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddUserReview appends a validated review to the account's own reviews
// array and returns the refreshed account.
func (s *Store) AddUserReview(ctx context.Context, id primitive.ObjectID, rev Review) (*Account, error) {
	rev.ID = primitive.NewObjectID()
	_, err := s.accounts.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{"reviews": rev}},
	)
	if err != nil {
		return nil, err
	}
	return s.FindAccount(ctx, id)
}

// FindUserReviews lists the reviews an account has received as a customer,
// with each reviewer denormalized into a profile snapshot.
func (s *Store) FindUserReviews(ctx context.Context, id primitive.ObjectID) ([]Review, error) {
	acc, err := s.FindAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.attachReviewees(ctx, acc.Reviews); err != nil {
		return nil, err
	}
	return acc.Reviews, nil
}

// UpdateUserReview replaces the rating and body of the review matching the
// payload's _id via an array element filter. Both the account and the review
// sub-id must resolve first.
func (s *Store) UpdateUserReview(ctx context.Context, id primitive.ObjectID, rev Review) (*Account, error) {
	acc, err := s.FindAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	if !containsReview(acc.Reviews, rev.ID) {
		return nil, ErrNotFound
	}
	_, err = s.accounts.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"reviews.$[r].rating":     rev.Rating,
			"reviews.$[r].reviewBody": rev.ReviewBody,
		}},
		options.Update().SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{bson.M{"r._id": rev.ID}},
		}),
	)
	if err != nil {
		return nil, err
	}
	return s.FindAccount(ctx, id)
}

// DeleteUserReview verifies the account and review sub-id resolve, then
// pulls the review.
func (s *Store) DeleteUserReview(ctx context.Context, id, reviewID primitive.ObjectID) error {
	acc, err := s.FindAccount(ctx, id)
	if err != nil {
		return err
	}
	if !containsReview(acc.Reviews, reviewID) {
		return ErrNotFound
	}
	_, err = s.accounts.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$pull": bson.M{"reviews": bson.M{"_id": reviewID}}},
	)
	return err
}

// AddUserOrder appends an order to the account's orders array and returns
// the refreshed account. Each service snapshot gets its own sub-id.
func (s *Store) AddUserOrder(ctx context.Context, id primitive.ObjectID, ord Order) (*Account, error) {
	ord.ID = primitive.NewObjectID()
	for i := range ord.Services {
		if ord.Services[i].ID.IsZero() {
			ord.Services[i].ID = primitive.NewObjectID()
		}
	}
	_, err := s.accounts.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{"orders": ord}},
	)
	if err != nil {
		return nil, err
	}
	return s.FindAccount(ctx, id)
}

// FindUserOrders lists the account's orders.
func (s *Store) FindUserOrders(ctx context.Context, id primitive.ObjectID) ([]Order, error) {
	acc, err := s.FindAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	return acc.Orders, nil
}

// UpdateUserOrder replaces the matched order's services array.
func (s *Store) UpdateUserOrder(ctx context.Context, id, orderID primitive.ObjectID, services []Service) (*Account, error) {
	acc, err := s.FindAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	if !containsOrder(acc.Orders, orderID) {
		return nil, ErrNotFound
	}
	for i := range services {
		if services[i].ID.IsZero() {
			services[i].ID = primitive.NewObjectID()
		}
	}
	_, err = s.accounts.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"orders.$[o].services": services}},
		options.Update().SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{bson.M{"o._id": orderID}},
		}),
	)
	if err != nil {
		return nil, err
	}
	return s.FindAccount(ctx, id)
}

// DeleteUserOrder verifies the account and order sub-id, pulls the order,
// then confirms the account still resolves.
func (s *Store) DeleteUserOrder(ctx context.Context, id, orderID primitive.ObjectID) error {
	acc, err := s.FindAccount(ctx, id)
	if err != nil {
		return err
	}
	if !containsOrder(acc.Orders, orderID) {
		return ErrNotFound
	}
	_, err = s.accounts.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$pull": bson.M{"orders": bson.M{"_id": orderID}}},
	)
	if err != nil {
		return err
	}
	_, err = s.FindAccount(ctx, id)
	return err
}

func containsOrder(orders []Order, id primitive.ObjectID) bool {
	for _, o := range orders {
		if o.ID == id {
			return true
		}
	}
	return false
}
