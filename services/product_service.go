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

const (
	DefaultProductLimit = 50
	MaxProductLimit     = 100
)

type ProductService interface {
	ListProducts(ctx context.Context, q models.ProductQuery) (*models.ProductListResponse, *ServiceError)
	GetProduct(ctx context.Context, idOrSKU string) (*models.Product, *ServiceError)
	CreateProduct(ctx context.Context, in *models.ProductInput) (*models.Product, *ServiceError)
	UpdateProduct(ctx context.Context, id string, upd *models.ProductUpdate) (*models.Product, *ServiceError)
	DeleteProduct(ctx context.Context, id string) (*models.Product, *ServiceError)
	BulkImport(ctx context.Context, req *models.BulkImportRequest) (*models.BulkImportResponse, *ServiceError)
}

type productServiceImpl struct {
	repo      repository.ProductRepo
	cache     *ProductCache
	validator *RequestValidator
	metrics   *awspkg.MetricsClient
	now       func() time.Time
}

func NewProductService(repo repository.ProductRepo, cache *ProductCache, metrics *awspkg.MetricsClient) ProductService {
	return &productServiceImpl{
		repo:      repo,
		cache:     cache,
		validator: NewRequestValidator(),
		metrics:   metrics,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// NormalizeQuery clamps paging: limit defaults to 50 and is capped at 100,
// page starts at 1.
func NormalizeQuery(q models.ProductQuery) models.ProductQuery {
	if q.Limit <= 0 {
		q.Limit = DefaultProductLimit
	}
	if q.Limit > MaxProductLimit {
		q.Limit = MaxProductLimit
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Category == "all" {
		q.Category = ""
	}
	return q
}

func (s *productServiceImpl) ListProducts(ctx context.Context, q models.ProductQuery) (*models.ProductListResponse, *ServiceError) {
	q = NormalizeQuery(q)

	if cached, ok := s.cache.GetList(ctx, q); ok {
		recordCount(s.metrics, awspkg.MetricCacheHits, nil)
		return cached, nil
	}
	recordCount(s.metrics, awspkg.MetricCacheMisses, nil)

	products, total, err := s.repo.Find(ctx, q)
	if err != nil {
		return nil, internal(ctx, "Failed to fetch products", err)
	}
	resp := &models.ProductListResponse{OK: true, Total: total, Page: q.Page, Limit: q.Limit, Products: products}
	s.cache.SetList(ctx, q, resp)
	return resp, nil
}

// GetProduct looks the key up as an ObjectID first and falls back to SKU.
func (s *productServiceImpl) GetProduct(ctx context.Context, idOrSKU string) (*models.Product, *ServiceError) {
	if cached, ok := s.cache.GetProduct(ctx, idOrSKU); ok {
		return cached, nil
	}

	var (
		product *models.Product
		err     = repository.ErrNotFound
	)
	if oid, perr := primitive.ObjectIDFromHex(idOrSKU); perr == nil {
		product, err = s.repo.FindByID(ctx, oid)
	}
	if errors.Is(err, repository.ErrNotFound) {
		product, err = s.repo.FindBySKU(ctx, idOrSKU)
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("Product not found")
	}
	if err != nil {
		return nil, internal(ctx, "Failed to fetch product", err, zap.String("product", idOrSKU))
	}

	s.cache.SetProduct(ctx, idOrSKU, product)
	return product, nil
}

func (s *productServiceImpl) CreateProduct(ctx context.Context, in *models.ProductInput) (*models.Product, *ServiceError) {
	if verr := s.validator.Struct(in); verr != nil {
		return nil, verr
	}

	exists, err := s.repo.ExistsSKU(ctx, in.SKU)
	if err != nil {
		return nil, internal(ctx, "Failed to create product", err)
	}
	if exists {
		return nil, conflict("SKU already exists")
	}

	product := in.ToProduct(s.now())
	if err := s.repo.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicateSKU) {
			return nil, conflict("SKU already exists")
		}
		return nil, internal(ctx, "Failed to create product", err, zap.String("sku", in.SKU))
	}

	s.cache.Invalidate(ctx)
	recordCount(s.metrics, awspkg.MetricProductsCreated, nil)
	return product, nil
}

func (s *productServiceImpl) UpdateProduct(ctx context.Context, id string, upd *models.ProductUpdate) (*models.Product, *ServiceError) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, notFound("Product not found")
	}
	if verr := s.validator.Struct(upd); verr != nil {
		return nil, verr
	}

	set := upd.Fields()
	set["updatedAt"] = s.now()

	product, err := s.repo.Update(ctx, oid, set)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("Product not found")
	}
	if err != nil {
		return nil, internal(ctx, "Failed to update product", err, zap.String("product_id", id))
	}

	s.cache.Invalidate(ctx)
	return product, nil
}

func (s *productServiceImpl) DeleteProduct(ctx context.Context, id string) (*models.Product, *ServiceError) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, notFound("Product not found")
	}
	product, err := s.repo.Delete(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("Product not found")
	}
	if err != nil {
		return nil, internal(ctx, "Failed to delete product", err, zap.String("product_id", id))
	}

	s.cache.Invalidate(ctx)
	return product, nil
}

// BulkImport inserts products one by one. An existing SKU is counted as
// skipped or reported as an error, depending on skipDuplicates; no item
// fails the batch.
func (s *productServiceImpl) BulkImport(ctx context.Context, req *models.BulkImportRequest) (*models.BulkImportResponse, *ServiceError) {
	if req.Products == nil {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Validation failed", Details: []FieldError{{Field: "products", Rule: "required"}}}
	}
	if verr := s.validator.Struct(req); verr != nil {
		return nil, verr
	}

	skip := req.ShouldSkipDuplicates()
	results := models.BulkImportResults{Total: len(req.Products), Errors: []models.BulkImportError{}}

	for i := range req.Products {
		in := req.Products[i]

		exists, err := s.repo.ExistsSKU(ctx, in.SKU)
		if err != nil {
			results.Errors = append(results.Errors, models.BulkImportError{SKU: in.SKU, Error: err.Error()})
			continue
		}
		if exists {
			if skip {
				results.Skipped++
			} else {
				results.Errors = append(results.Errors, models.BulkImportError{SKU: in.SKU, Error: "SKU already exists"})
			}
			continue
		}

		if err := s.repo.Create(ctx, in.ToProduct(s.now())); err != nil {
			msg := err.Error()
			if errors.Is(err, repository.ErrDuplicateSKU) {
				msg = "SKU already exists"
			}
			results.Errors = append(results.Errors, models.BulkImportError{SKU: in.SKU, Error: msg})
			continue
		}
		results.Inserted++
	}

	if results.Inserted > 0 {
		s.cache.Invalidate(ctx)
		recordValue(s.metrics, awspkg.MetricProductsImported, float64(results.Inserted), nil)
	}
	return &models.BulkImportResponse{OK: true, Count: results.Inserted, Results: results}, nil
}
