package models

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionName is the single collection every account lives in.
const CollectionName = "accounts"

// Store wraps the accounts collection. It is constructed once at startup and
// handed to each controller; there is no package-level connection state.
type Store struct {
	accounts *mongo.Collection
}

func NewStore(db *mongo.Database) *Store {
	return &Store{accounts: db.Collection(CollectionName)}
}

// FindAccount fetches an account by id regardless of its technician flavour.
func (s *Store) FindAccount(ctx context.Context, id primitive.ObjectID) (*Account, error) {
	var acc Account
	err := s.accounts.FindOne(ctx, bson.M{"_id": id}).Decode(&acc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// attachReviewees resolves each review's reviewedBy reference into a
// {username, name, avatarUrl} snapshot. A reviewer id that no longer
// resolves leaves the review without a snapshot rather than failing the
// whole read.
func (s *Store) attachReviewees(ctx context.Context, reviews []Review) error {
	for i := range reviews {
		var reviewer Account
		err := s.accounts.FindOne(ctx, bson.M{"_id": reviews[i].ReviewedBy}).Decode(&reviewer)
		if errors.Is(err, mongo.ErrNoDocuments) {
			continue
		}
		if err != nil {
			return err
		}
		reviews[i].Reviewee = &Reviewee{
			Username:  reviewer.Username,
			Name:      reviewer.Name(),
			AvatarURL: reviewer.AvatarURL,
		}
	}
	return nil
}

func (s *Store) accountExists(ctx context.Context, filter bson.M) (bool, error) {
	count, err := s.accounts.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
