package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/YeshwantRaoB/organizon-web/identity"
	"github.com/YeshwantRaoB/organizon-web/models"
	"github.com/YeshwantRaoB/organizon-web/repository"

	"go.uber.org/zap"
)

const (
	DefaultUserPageSize = 100
	MaxUserPageSize     = 1000
)

// AdminService backs the back-office dashboard, user management, site
// settings and content pages.
type AdminService interface {
	Stats(ctx context.Context) (*models.Stats, *ServiceError)
	ListUsers(ctx context.Context, limit int, pageToken string) (*models.UserPage, *ServiceError)
	SetAdmin(ctx context.Context, req *models.SetAdminRequest) *ServiceError
	DeleteUser(ctx context.Context, uid string) *ServiceError
	GetSettings(ctx context.Context) (models.Settings, *ServiceError)
	SaveSettings(ctx context.Context, settings models.Settings) *ServiceError
	GetPage(ctx context.Context, path string) (models.Page, *ServiceError)
	SavePage(ctx context.Context, page models.Page) *ServiceError
}

type adminServiceImpl struct {
	products repository.ProductRepo
	orders   repository.OrderRepo
	settings repository.SettingsRepo
	pages    repository.PageRepo
	users    identity.UserAdmin
}

// NewAdminService wires the admin operations. users may be nil when the
// identity provider offers no management API (local JWT mode).
func NewAdminService(
	products repository.ProductRepo,
	orders repository.OrderRepo,
	settings repository.SettingsRepo,
	pages repository.PageRepo,
	users identity.UserAdmin,
) AdminService {
	return &adminServiceImpl{
		products: products,
		orders:   orders,
		settings: settings,
		pages:    pages,
		users:    users,
	}
}

var errUsersUnavailable = &ServiceError{StatusCode: http.StatusServiceUnavailable, Message: "User management is not available"}

func (s *adminServiceImpl) Stats(ctx context.Context) (*models.Stats, *ServiceError) {
	productStats, categories, err := s.products.Stats(ctx)
	if err != nil {
		return nil, internal(ctx, "Failed to compute stats", err)
	}
	orderStats, err := s.orders.Stats(ctx)
	if err != nil {
		return nil, internal(ctx, "Failed to compute stats", err)
	}
	return &models.Stats{Products: productStats, Orders: orderStats, Categories: categories}, nil
}

func (s *adminServiceImpl) ListUsers(ctx context.Context, limit int, pageToken string) (*models.UserPage, *ServiceError) {
	if s.users == nil {
		return nil, errUsersUnavailable
	}
	if limit <= 0 {
		limit = DefaultUserPageSize
	}
	if limit > MaxUserPageSize {
		limit = MaxUserPageSize
	}
	page, err := s.users.ListUsers(ctx, limit, pageToken)
	if err != nil {
		return nil, internal(ctx, "Failed to list users", err)
	}
	return &page, nil
}

func (s *adminServiceImpl) SetAdmin(ctx context.Context, req *models.SetAdminRequest) *ServiceError {
	if s.users == nil {
		return errUsersUnavailable
	}
	if req.UID == "" {
		return badRequest("UID is required")
	}
	err := s.users.SetAdmin(ctx, req.UID, req.IsAdmin)
	if errors.Is(err, identity.ErrUserNotFound) {
		return notFound("User not found")
	}
	if err != nil {
		return internal(ctx, "Failed to update admin claim", err, zap.String("uid", req.UID))
	}
	// Force a fresh token so the new claim takes effect on next sign-in.
	if err := s.users.RevokeTokens(ctx, req.UID); err != nil {
		return internal(ctx, "Failed to revoke tokens", err, zap.String("uid", req.UID))
	}
	return nil
}

func (s *adminServiceImpl) DeleteUser(ctx context.Context, uid string) *ServiceError {
	if s.users == nil {
		return errUsersUnavailable
	}
	if uid == "" {
		return badRequest("UID is required")
	}
	err := s.users.DeleteUser(ctx, uid)
	if errors.Is(err, identity.ErrUserNotFound) {
		return notFound("User not found")
	}
	if err != nil {
		return internal(ctx, "Failed to delete user", err, zap.String("uid", uid))
	}
	return nil
}

func (s *adminServiceImpl) GetSettings(ctx context.Context) (models.Settings, *ServiceError) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, internal(ctx, "Failed to fetch settings", err)
	}
	return settings, nil
}

func (s *adminServiceImpl) SaveSettings(ctx context.Context, settings models.Settings) *ServiceError {
	if err := s.settings.Save(ctx, settings); err != nil {
		return internal(ctx, "Failed to save settings", err)
	}
	return nil
}

func (s *adminServiceImpl) GetPage(ctx context.Context, path string) (models.Page, *ServiceError) {
	if path == "" {
		return nil, badRequest("Path is required")
	}
	page, err := s.pages.Get(ctx, path)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("Page not found")
	}
	if err != nil {
		return nil, internal(ctx, "Failed to fetch page", err, zap.String("path", path))
	}
	return page, nil
}

func (s *adminServiceImpl) SavePage(ctx context.Context, page models.Page) *ServiceError {
	if path, _ := page["path"].(string); path == "" {
		return badRequest("Path is required")
	}
	if err := s.pages.Save(ctx, page); err != nil {
		return internal(ctx, "Failed to save page", err)
	}
	return nil
}
