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

type OrderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{
		collection: db.Collection("orders"),
	}
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M) ([]models.OrderDoc, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.OrderDoc{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) FindByUser(ctx context.Context, userID string) ([]models.OrderDoc, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]models.OrderDoc, error) {
	return r.find(ctx, bson.M{})
}

func (r *OrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.OrderDoc, error) {
	var order models.OrderDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) error {
	update := bson.M{"$set": bson.M{"status": string(status), "updatedAt": time.Now().UTC()}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *OrderRepository) Stats(ctx context.Context) (models.OrderStats, error) {
	var stats models.OrderStats
	var err error
	if stats.Total, err = r.collection.CountDocuments(ctx, bson.M{}); err != nil {
		return stats, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$total"}}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return stats, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return stats, err
	}
	if len(rows) > 0 {
		stats.Revenue = rows[0].Total
	}
	return stats, nil
}
