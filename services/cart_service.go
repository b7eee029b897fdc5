package services

import (
	"context"
	"errors"

	"github.com/YeshwantRaoB/organizon-web/models"
	awspkg "github.com/YeshwantRaoB/organizon-web/pkg/aws"
	"github.com/YeshwantRaoB/organizon-web/repository"

	"go.uber.org/zap"
)

// CartService defines the server-side cart operations.
type CartService interface {
	GetCart(ctx context.Context, userID string) (*models.Cart, *ServiceError)
	SaveCart(ctx context.Context, userID string, items []models.CartItem) *ServiceError
	ClearCart(ctx context.Context, userID string) *ServiceError
}

type cartServiceImpl struct {
	repo    repository.CartRepo
	metrics *awspkg.MetricsClient
}

func NewCartService(repo repository.CartRepo, metrics *awspkg.MetricsClient) CartService {
	return &cartServiceImpl{repo: repo, metrics: metrics}
}

// GetCart never creates a document; an unknown user gets an empty cart.
func (s *cartServiceImpl) GetCart(ctx context.Context, userID string) (*models.Cart, *ServiceError) {
	cart, err := s.repo.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return &models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
	}
	if err != nil {
		return nil, internal(ctx, "Failed to fetch cart", err, zap.String("user_id", userID))
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart, nil
}

// SaveCart replaces the whole item list as given. Lines are not checked, so
// one odd line never costs the rest of the write.
func (s *cartServiceImpl) SaveCart(ctx context.Context, userID string, items []models.CartItem) *ServiceError {
	if items == nil {
		items = []models.CartItem{}
	}
	if err := s.repo.Save(ctx, userID, items); err != nil {
		return internal(ctx, "Failed to save cart", err, zap.String("user_id", userID))
	}
	recordCount(s.metrics, awspkg.MetricCartSaved, nil)
	return nil
}

func (s *cartServiceImpl) ClearCart(ctx context.Context, userID string) *ServiceError {
	return s.SaveCart(ctx, userID, []models.CartItem{})
}
