package repository

import (
	"context"
	"errors"
	"time"

	"github.com/YeshwantRaoB/organizon-web/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AddressRepository struct {
	collection *mongo.Collection
}

func NewAddressRepository(db *mongo.Database) *AddressRepository {
	return &AddressRepository{
		collection: db.Collection("addresses"),
	}
}

func (r *AddressRepository) ListByUser(ctx context.Context, userID string) ([]models.Address, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	addresses := []models.Address{}
	if err := cursor.All(ctx, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *AddressRepository) FindOne(ctx context.Context, id primitive.ObjectID, userID string) (*models.Address, error) {
	var address models.Address
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&address)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *AddressRepository) Create(ctx context.Context, address *models.Address) error {
	now := time.Now().UTC()
	address.ID = primitive.NewObjectID()
	address.CreatedAt = now
	address.UpdatedAt = now
	_, err := r.collection.InsertOne(ctx, address)
	return err
}

// ClearDefaults unsets isDefault on every address of userID. It is a
// separate write from the one that sets the new default, so two concurrent
// requests can interleave between them.
func (r *AddressRepository) ClearDefaults(ctx context.Context, userID string) error {
	_, err := r.collection.UpdateMany(ctx, bson.M{"userId": userID}, bson.M{"$set": bson.M{"isDefault": false}})
	return err
}

// Replace overwrites the editable fields of an owned address and returns
// the stored result.
func (r *AddressRepository) Replace(ctx context.Context, address *models.Address) (*models.Address, error) {
	set := bson.M{
		"fullName":      address.FullName,
		"phoneNumber":   address.PhoneNumber,
		"streetAddress": address.StreetAddress,
		"city":          address.City,
		"state":         address.State,
		"zipCode":       address.ZipCode,
		"country":       address.Country,
		"isDefault":     address.IsDefault,
		"addressType":   address.AddressType,
		"updatedAt":     time.Now().UTC(),
	}
	filter := bson.M{"_id": address.ID, "userId": address.UserID}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Address
	err := r.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *AddressRepository) Delete(ctx context.Context, id primitive.ObjectID, userID string) (*models.Address, error) {
	var deleted models.Address
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id, "userId": userID}).Decode(&deleted)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}
