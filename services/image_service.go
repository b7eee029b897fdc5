package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MaxImageSize         = 10 * 1024 * 1024
	DefaultPresignExpiry = 15 * time.Minute
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// ImageStore is the image host. pkg/aws.ImageStore is the S3 implementation.
type ImageStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	PresignPut(ctx context.Context, key, contentType string, expires time.Duration) (string, error)
	PublicURL(key string) string
}

type UploadedImage struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

type PresignedUpload struct {
	UploadURL string `json:"uploadUrl"`
	Method    string `json:"method"`
	Key       string `json:"key"`
	PublicURL string `json:"publicUrl"`
	ExpiresIn int64  `json:"expiresIn"`
}

type ImageService interface {
	Upload(ctx context.Context, filename, contentType string, size int64, body io.Reader) (*UploadedImage, *ServiceError)
	Presign(ctx context.Context, filename, contentType string) (*PresignedUpload, *ServiceError)
}

type imageServiceImpl struct {
	store  ImageStore
	prefix string
}

// NewImageService returns a service whose operations answer 503 when store
// is nil (no bucket configured).
func NewImageService(store ImageStore, prefix string) ImageService {
	return &imageServiceImpl{store: store, prefix: prefix}
}

var errImagesUnavailable = &ServiceError{StatusCode: http.StatusServiceUnavailable, Message: "Image hosting is not configured"}

func (s *imageServiceImpl) objectKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%sproduct_img_%s%s", s.prefix, uuid.New().String(), ext)
}

func checkImageType(contentType string) *ServiceError {
	if !allowedImageTypes[strings.ToLower(contentType)] {
		return badRequest("Invalid content type. Allowed: image/jpeg, image/png, image/webp, image/gif")
	}
	return nil
}

func (s *imageServiceImpl) Upload(ctx context.Context, filename, contentType string, size int64, body io.Reader) (*UploadedImage, *ServiceError) {
	if s.store == nil {
		return nil, errImagesUnavailable
	}
	if verr := checkImageType(contentType); verr != nil {
		return nil, verr
	}
	if size > MaxImageSize {
		return nil, badRequest("Image exceeds the 10MB limit")
	}

	key := s.objectKey(filename)
	url, err := s.store.Upload(ctx, key, contentType, body)
	if err != nil {
		return nil, internal(ctx, "Failed to upload image", err, zap.String("key", key))
	}
	return &UploadedImage{URL: url, Key: key}, nil
}

func (s *imageServiceImpl) Presign(ctx context.Context, filename, contentType string) (*PresignedUpload, *ServiceError) {
	if s.store == nil {
		return nil, errImagesUnavailable
	}
	if verr := checkImageType(contentType); verr != nil {
		return nil, verr
	}

	key := s.objectKey(filename)
	url, err := s.store.PresignPut(ctx, key, contentType, DefaultPresignExpiry)
	if err != nil {
		return nil, internal(ctx, "Failed to generate presigned upload", err, zap.String("key", key))
	}
	return &PresignedUpload{
		UploadURL: url,
		Method:    http.MethodPut,
		Key:       key,
		PublicURL: s.store.PublicURL(key),
		ExpiresIn: int64(DefaultPresignExpiry.Seconds()),
	}, nil
}
