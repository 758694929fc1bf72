package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/garagehub/servicing-app/models"
)

// Seed drops the accounts collection and inserts the given fixtures.
func Seed(ctx context.Context, database *mongo.Database, accounts []models.Account) error {
	coll := database.Collection(models.CollectionName)
	if err := coll.Drop(ctx); err != nil {
		return err
	}
	docs := make([]interface{}, len(accounts))
	for i := range accounts {
		docs[i] = accounts[i]
	}
	_, err := coll.InsertMany(ctx, docs)
	return err
}
