package controllers

import (
	"context"
	"io"

	"github.com/YeshwantRaoB/organizon-web/models"
	"github.com/YeshwantRaoB/organizon-web/services"

	"github.com/stretchr/testify/mock"
)

// --- Mock services ---

type MockCartService struct{ mock.Mock }

func (m *MockCartService) GetCart(ctx context.Context, userID string) (*models.Cart, *services.ServiceError) {
	args := m.Called(ctx, userID)
	return args.Get(0).(*models.Cart), serviceErr(args, 1)
}

func (m *MockCartService) SaveCart(ctx context.Context, userID string, items []models.CartItem) *services.ServiceError {
	return serviceErr(m.Called(ctx, userID, items), 0)
}

func (m *MockCartService) ClearCart(ctx context.Context, userID string) *services.ServiceError {
	return serviceErr(m.Called(ctx, userID), 0)
}

type MockOrderService struct{ mock.Mock }

func (m *MockOrderService) ListForUser(ctx context.Context, userID string) ([]models.Order, *services.ServiceError) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Order), serviceErr(args, 1)
}

func (m *MockOrderService) ListAll(ctx context.Context) ([]models.Order, *services.ServiceError) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Order), serviceErr(args, 1)
}

func (m *MockOrderService) GetOrder(ctx context.Context, id string) (*models.Order, *services.ServiceError) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*models.Order)
	return o, serviceErr(args, 1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, id, status string) *services.ServiceError {
	return serviceErr(m.Called(ctx, id, status), 0)
}

type MockProductService struct{ mock.Mock }

func (m *MockProductService) ListProducts(ctx context.Context, q models.ProductQuery) (*models.ProductListResponse, *services.ServiceError) {
	args := m.Called(ctx, q)
	r, _ := args.Get(0).(*models.ProductListResponse)
	return r, serviceErr(args, 1)
}

func (m *MockProductService) GetProduct(ctx context.Context, idOrSKU string) (*models.Product, *services.ServiceError) {
	args := m.Called(ctx, idOrSKU)
	p, _ := args.Get(0).(*models.Product)
	return p, serviceErr(args, 1)
}

func (m *MockProductService) CreateProduct(ctx context.Context, in *models.ProductInput) (*models.Product, *services.ServiceError) {
	args := m.Called(ctx, in)
	p, _ := args.Get(0).(*models.Product)
	return p, serviceErr(args, 1)
}

func (m *MockProductService) UpdateProduct(ctx context.Context, id string, upd *models.ProductUpdate) (*models.Product, *services.ServiceError) {
	args := m.Called(ctx, id, upd)
	p, _ := args.Get(0).(*models.Product)
	return p, serviceErr(args, 1)
}

func (m *MockProductService) DeleteProduct(ctx context.Context, id string) (*models.Product, *services.ServiceError) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Product)
	return p, serviceErr(args, 1)
}

func (m *MockProductService) BulkImport(ctx context.Context, req *models.BulkImportRequest) (*models.BulkImportResponse, *services.ServiceError) {
	args := m.Called(ctx, req)
	r, _ := args.Get(0).(*models.BulkImportResponse)
	return r, serviceErr(args, 1)
}

type MockAddressService struct{ mock.Mock }

func (m *MockAddressService) ListAddresses(ctx context.Context, userID string) ([]models.Address, *services.ServiceError) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Address), serviceErr(args, 1)
}

func (m *MockAddressService) CreateAddress(ctx context.Context, userID string, in *models.AddressInput) (*models.Address, *services.ServiceError) {
	args := m.Called(ctx, userID, in)
	a, _ := args.Get(0).(*models.Address)
	return a, serviceErr(args, 1)
}

func (m *MockAddressService) UpdateAddress(ctx context.Context, userID, id string, in *models.AddressInput) (*models.Address, *services.ServiceError) {
	args := m.Called(ctx, userID, id, in)
	a, _ := args.Get(0).(*models.Address)
	return a, serviceErr(args, 1)
}

func (m *MockAddressService) DeleteAddress(ctx context.Context, userID, id string) *services.ServiceError {
	return serviceErr(m.Called(ctx, userID, id), 0)
}

type MockAdminService struct{ mock.Mock }

func (m *MockAdminService) Stats(ctx context.Context) (*models.Stats, *services.ServiceError) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*models.Stats)
	return s, serviceErr(args, 1)
}

func (m *MockAdminService) ListUsers(ctx context.Context, limit int, pageToken string) (*models.UserPage, *services.ServiceError) {
	args := m.Called(ctx, limit, pageToken)
	p, _ := args.Get(0).(*models.UserPage)
	return p, serviceErr(args, 1)
}

func (m *MockAdminService) SetAdmin(ctx context.Context, req *models.SetAdminRequest) *services.ServiceError {
	return serviceErr(m.Called(ctx, req), 0)
}

func (m *MockAdminService) DeleteUser(ctx context.Context, uid string) *services.ServiceError {
	return serviceErr(m.Called(ctx, uid), 0)
}

func (m *MockAdminService) GetSettings(ctx context.Context) (models.Settings, *services.ServiceError) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(models.Settings)
	return s, serviceErr(args, 1)
}

func (m *MockAdminService) SaveSettings(ctx context.Context, settings models.Settings) *services.ServiceError {
	return serviceErr(m.Called(ctx, settings), 0)
}

func (m *MockAdminService) GetPage(ctx context.Context, path string) (models.Page, *services.ServiceError) {
	args := m.Called(ctx, path)
	p, _ := args.Get(0).(models.Page)
	return p, serviceErr(args, 1)
}

func (m *MockAdminService) SavePage(ctx context.Context, page models.Page) *services.ServiceError {
	return serviceErr(m.Called(ctx, page), 0)
}

type MockImageService struct{ mock.Mock }

func (m *MockImageService) Upload(ctx context.Context, filename, contentType string, size int64, body io.Reader) (*services.UploadedImage, *services.ServiceError) {
	args := m.Called(ctx, filename, contentType, size)
	img, _ := args.Get(0).(*services.UploadedImage)
	return img, serviceErr(args, 1)
}

func (m *MockImageService) Presign(ctx context.Context, filename, contentType string) (*services.PresignedUpload, *services.ServiceError) {
	args := m.Called(ctx, filename, contentType)
	up, _ := args.Get(0).(*services.PresignedUpload)
	return up, serviceErr(args, 1)
}

func serviceErr(args mock.Arguments, i int) *services.ServiceError {
	serr, _ := args.Get(i).(*services.ServiceError)
	return serr
}
