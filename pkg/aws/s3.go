package aws

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ImageStore uploads product images to an S3 bucket and resolves their
// public URLs.
type ImageStore struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
	endpoint  string
	publicURL string
}

// NewImageStore builds an S3-backed store. endpoint targets S3-compatible
// services (LocalStack, MinIO) with path-style addressing; publicBase, when
// set, is used instead of the bucket URL for the returned links (a CDN).
func NewImageStore(cfg sdkaws.Config, bucket, endpoint, publicBase string) *ImageStore {
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = sdkaws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return &ImageStore{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    bucket,
		endpoint:  endpoint,
		publicURL: publicBase,
	}
}

// Upload writes body under key and returns its public URL.
func (s *ImageStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      sdkaws.String(s.bucket),
		Key:         sdkaws.String(key),
		Body:        body,
		ContentType: sdkaws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return s.PublicURL(key), nil
}

// PresignPut returns a URL the browser can PUT the object to directly.
func (s *ImageStore) PresignPut(ctx context.Context, key, contentType string, expires time.Duration) (string, error) {
	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      sdkaws.String(s.bucket),
		Key:         sdkaws.String(key),
		ContentType: sdkaws.String(contentType),
	}, func(o *s3.PresignOptions) {
		o.Expires = expires
	})
	if err != nil {
		return "", fmt.Errorf("failed to presign put object: %w", err)
	}
	return req.URL, nil
}

func (s *ImageStore) PublicURL(key string) string {
	return ObjectURL(s.publicURL, s.endpoint, s.bucket, key)
}

// ObjectURL resolves the public link for key: CDN base first, then the
// custom endpoint, then the virtual-hosted bucket URL.
func ObjectURL(publicBase, endpoint, bucket, key string) string {
	switch {
	case publicBase != "":
		return fmt.Sprintf("%s/%s", strings.TrimRight(publicBase, "/"), key)
	case endpoint != "":
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(endpoint, "/"), bucket, key)
	default:
		return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", bucket, key)
	}
}
