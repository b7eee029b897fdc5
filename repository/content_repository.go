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

const siteSettingsID = "site_settings"

type SettingsRepository struct {
	collection *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{
		collection: db.Collection("settings"),
	}
}

// Get returns an empty map when nothing has been saved yet.
func (r *SettingsRepository) Get(ctx context.Context) (models.Settings, error) {
	settings := models.Settings{}
	err := r.collection.FindOne(ctx, bson.M{"_id": siteSettingsID}).Decode(&settings)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Settings{}, nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *SettingsRepository) Save(ctx context.Context, settings models.Settings) error {
	set := bson.M{}
	for k, v := range settings {
		if k == "_id" {
			continue
		}
		set[k] = v
	}
	set["updatedAt"] = time.Now().UTC()

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": siteSettingsID}, bson.M{"$set": set}, options.Update().SetUpsert(true))
	return err
}

type PageRepository struct {
	collection *mongo.Collection
}

func NewPageRepository(db *mongo.Database) *PageRepository {
	return &PageRepository{
		collection: db.Collection("pages"),
	}
}

func (r *PageRepository) Get(ctx context.Context, path string) (models.Page, error) {
	page := models.Page{}
	err := r.collection.FindOne(ctx, bson.M{"path": path}).Decode(&page)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return page, nil
}

// Save upserts the page keyed by its "path" field.
func (r *PageRepository) Save(ctx context.Context, page models.Page) error {
	set := bson.M{}
	for k, v := range page {
		if k == "_id" {
			continue
		}
		set[k] = v
	}
	set["updatedAt"] = time.Now().UTC()

	_, err := r.collection.UpdateOne(ctx, bson.M{"path": page["path"]}, bson.M{"$set": set}, options.Update().SetUpsert(true))
	return err
}
