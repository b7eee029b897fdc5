package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/YeshwantRaoB/organizon-web/models"
	awspkg "github.com/YeshwantRaoB/organizon-web/pkg/aws"
	"github.com/YeshwantRaoB/organizon-web/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type OrderService interface {
	ListForUser(ctx context.Context, userID string) ([]models.Order, *ServiceError)
	ListAll(ctx context.Context) ([]models.Order, *ServiceError)
	GetOrder(ctx context.Context, id string) (*models.Order, *ServiceError)
	UpdateStatus(ctx context.Context, id, status string) *ServiceError
}

type OrderServiceConfig struct {
	// StrictTransitions refuses to move an order out of completed or
	// cancelled.
	StrictTransitions bool
}

type orderServiceImpl struct {
	repo    repository.OrderRepo
	cfg     OrderServiceConfig
	metrics *awspkg.MetricsClient
	now     func() time.Time
}

func NewOrderService(repo repository.OrderRepo, cfg OrderServiceConfig, metrics *awspkg.MetricsClient) OrderService {
	return &orderServiceImpl{repo: repo, cfg: cfg, metrics: metrics, now: time.Now}
}

func (s *orderServiceImpl) ListForUser(ctx context.Context, userID string) ([]models.Order, *ServiceError) {
	docs, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, internal(ctx, "Failed to fetch orders", err, zap.String("user_id", userID))
	}
	return s.normalize(docs, false), nil
}

func (s *orderServiceImpl) ListAll(ctx context.Context) ([]models.Order, *ServiceError) {
	docs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, internal(ctx, "Failed to fetch orders", err)
	}
	return s.normalize(docs, true), nil
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, id string) (*models.Order, *ServiceError) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, notFound("Order not found")
	}
	doc, err := s.repo.FindByID(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("Order not found")
	}
	if err != nil {
		return nil, internal(ctx, "Failed to fetch order", err, zap.String("order_id", id))
	}
	o := doc.Normalize(s.now())
	o.UserID = doc.UserID
	return &o, nil
}

// UpdateStatus validates the value before touching storage, so a rejected
// status leaves the order as it was.
func (s *orderServiceImpl) UpdateStatus(ctx context.Context, id, status string) *ServiceError {
	next := models.OrderStatus(status)
	if !next.IsValid() {
		return badRequest("Invalid status value")
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return notFound("Order not found")
	}

	if s.cfg.StrictTransitions {
		doc, err := s.repo.FindByID(ctx, oid)
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("Order not found")
		}
		if err != nil {
			return internal(ctx, "Failed to update order", err, zap.String("order_id", id))
		}
		current := models.OrderStatusPending
		if doc.Status != nil {
			current = models.OrderStatus(*doc.Status)
		}
		if current.IsTerminal() && current != next {
			return &ServiceError{StatusCode: http.StatusConflict, Message: "Order is already " + string(current)}
		}
	}

	err = s.repo.UpdateStatus(ctx, oid, next)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound("Order not found")
	}
	if err != nil {
		return internal(ctx, "Failed to update order", err, zap.String("order_id", id))
	}
	recordCount(s.metrics, awspkg.MetricOrderStatusSet, map[string]string{"Status": status})
	return nil
}

func (s *orderServiceImpl) normalize(docs []models.OrderDoc, withOwner bool) []models.Order {
	now := s.now()
	out := make([]models.Order, 0, len(docs))
	for _, d := range docs {
		o := d.Normalize(now)
		if withOwner {
			o.UserID = d.UserID
		}
		out = append(out, o)
	}
	return out
}
