package repository

import (
	"context"
	"errors"

	"github.com/YeshwantRaoB/organizon-web/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrDuplicateSKU = errors.New("sku already exists")
)

// ProductRepo is the catalogue store.
type ProductRepo interface {
	Find(ctx context.Context, q models.ProductQuery) ([]models.Product, int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindBySKU(ctx context.Context, sku string) (*models.Product, error)
	ExistsSKU(ctx context.Context, sku string) (bool, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id primitive.ObjectID, set map[string]interface{}) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	DeleteAll(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (models.ProductStats, []models.CategoryCount, error)
	EnsureIndexes(ctx context.Context) error
}

// CartRepo holds one cart document per user.
type CartRepo interface {
	Get(ctx context.Context, userID string) (*models.Cart, error)
	Save(ctx context.Context, userID string, items []models.CartItem) error
}

type OrderRepo interface {
	FindByUser(ctx context.Context, userID string) ([]models.OrderDoc, error)
	FindAll(ctx context.Context) ([]models.OrderDoc, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.OrderDoc, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) error
	Stats(ctx context.Context) (models.OrderStats, error)
}

type AddressRepo interface {
	ListByUser(ctx context.Context, userID string) ([]models.Address, error)
	FindOne(ctx context.Context, id primitive.ObjectID, userID string) (*models.Address, error)
	Create(ctx context.Context, address *models.Address) error
	ClearDefaults(ctx context.Context, userID string) error
	Replace(ctx context.Context, address *models.Address) (*models.Address, error)
	Delete(ctx context.Context, id primitive.ObjectID, userID string) (*models.Address, error)
}

type AuditRepo interface {
	Append(ctx context.Context, entry *models.AuditLog) error
}

type SettingsRepo interface {
	Get(ctx context.Context) (models.Settings, error)
	Save(ctx context.Context, settings models.Settings) error
}

type PageRepo interface {
	Get(ctx context.Context, path string) (models.Page, error)
	Save(ctx context.Context, page models.Page) error
}
