package repository

import (
	"context"
	"errors"
	"time"

	"github.com/YeshwantRaoB/organizon-web/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{
		collection: db.Collection("carts"),
	}
}

// Get returns ErrNotFound when the user has never saved a cart.
func (r *CartRepository) Get(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// Save replaces the whole item list, creating the document on first write.
func (r *CartRepository) Save(ctx context.Context, userID string, items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	update := bson.M{"$set": bson.M{"items": items, "updatedAt": time.Now().UTC()}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"userId": userID}, update, options.Update().SetUpsert(true))
	return err
}
