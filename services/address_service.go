package services

import (
	"context"
	"errors"

	"github.com/YeshwantRaoB/organizon-web/common/logger"
	"github.com/YeshwantRaoB/organizon-web/models"
	"github.com/YeshwantRaoB/organizon-web/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type AddressService interface {
	ListAddresses(ctx context.Context, userID string) ([]models.Address, *ServiceError)
	CreateAddress(ctx context.Context, userID string, in *models.AddressInput) (*models.Address, *ServiceError)
	UpdateAddress(ctx context.Context, userID, id string, in *models.AddressInput) (*models.Address, *ServiceError)
	DeleteAddress(ctx context.Context, userID, id string) *ServiceError
}

type addressServiceImpl struct {
	repo      repository.AddressRepo
	audit     repository.AuditRepo
	validator *RequestValidator
}

func NewAddressService(repo repository.AddressRepo, audit repository.AuditRepo) AddressService {
	return &addressServiceImpl{repo: repo, audit: audit, validator: NewRequestValidator()}
}

func (s *addressServiceImpl) ListAddresses(ctx context.Context, userID string) ([]models.Address, *ServiceError) {
	addresses, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, internal(ctx, "Failed to fetch addresses", err, zap.String("user_id", userID))
	}
	return addresses, nil
}

// CreateAddress clears the owner's other defaults first when the new
// address is marked default.
func (s *addressServiceImpl) CreateAddress(ctx context.Context, userID string, in *models.AddressInput) (*models.Address, *ServiceError) {
	if verr := s.validator.Struct(in); verr != nil {
		return nil, verr
	}
	if in.IsDefault {
		if err := s.repo.ClearDefaults(ctx, userID); err != nil {
			return nil, internal(ctx, "Failed to create address", err, zap.String("user_id", userID))
		}
	}

	address := &models.Address{UserID: userID}
	in.Apply(address)
	if err := s.repo.Create(ctx, address); err != nil {
		return nil, internal(ctx, "Failed to create address", err, zap.String("user_id", userID))
	}

	s.record(ctx, models.AuditCreateAddress, userID, address.ID, nil, address)
	return address, nil
}

func (s *addressServiceImpl) UpdateAddress(ctx context.Context, userID, id string, in *models.AddressInput) (*models.Address, *ServiceError) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, notFound("Address not found")
	}
	if verr := s.validator.Struct(in); verr != nil {
		return nil, verr
	}

	before, err := s.repo.FindOne(ctx, oid, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("Address not found")
	}
	if err != nil {
		return nil, internal(ctx, "Failed to update address", err, zap.String("address_id", id))
	}

	if in.IsDefault {
		if err := s.repo.ClearDefaults(ctx, userID); err != nil {
			return nil, internal(ctx, "Failed to update address", err, zap.String("address_id", id))
		}
	}

	next := *before
	in.Apply(&next)
	after, err := s.repo.Replace(ctx, &next)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("Address not found")
	}
	if err != nil {
		return nil, internal(ctx, "Failed to update address", err, zap.String("address_id", id))
	}

	s.record(ctx, models.AuditUpdateAddress, userID, oid, before, after)
	return after, nil
}

func (s *addressServiceImpl) DeleteAddress(ctx context.Context, userID, id string) *ServiceError {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return notFound("Address not found")
	}
	deleted, err := s.repo.Delete(ctx, oid, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound("Address not found")
	}
	if err != nil {
		return internal(ctx, "Failed to delete address", err, zap.String("address_id", id))
	}

	s.record(ctx, models.AuditDeleteAddress, userID, oid, deleted, nil)
	return nil
}

// record appends an audit entry. The address write has already happened,
// so a failed append is logged rather than returned.
func (s *addressServiceImpl) record(ctx context.Context, action models.AuditAction, userID string, id primitive.ObjectID, before, after *models.Address) {
	entry := &models.AuditLog{UserID: userID, Action: action, AddressID: id, Before: before, After: after}
	if err := s.audit.Append(ctx, entry); err != nil {
		logger.Error(ctx, "Failed to append audit log", err,
			zap.String("action", string(action)),
			zap.String("address_id", id.Hex()),
		)
	}
}
