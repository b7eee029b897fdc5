package services_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/YeshwantRaoB/organizon-web/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImageStore struct {
	uploaded map[string]string
}

func (f *fakeImageStore) Upload(_ context.Context, key, _ string, body io.Reader) (string, error) {
	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.uploaded[key] = string(b)
	return f.PublicURL(key), nil
}

func (f *fakeImageStore) PresignPut(_ context.Context, key, _ string, _ time.Duration) (string, error) {
	return "https://bucket.example/" + key + "?sig=1", nil
}

func (f *fakeImageStore) PublicURL(key string) string {
	return "https://cdn.example/" + key
}

func TestImageService_Upload(t *testing.T) {
	store := &fakeImageStore{uploaded: map[string]string{}}
	svc := services.NewImageService(store, "products/")

	img, serr := svc.Upload(context.Background(), "Rice.PNG", "image/png", 4, strings.NewReader("data"))
	require.Nil(t, serr)
	assert.True(t, strings.HasPrefix(img.Key, "products/product_img_"))
	assert.True(t, strings.HasSuffix(img.Key, ".png"))
	assert.Equal(t, "https://cdn.example/"+img.Key, img.URL)
	assert.Equal(t, "data", store.uploaded[img.Key])

	_, serr = svc.Upload(context.Background(), "a.txt", "text/plain", 1, strings.NewReader("x"))
	require.NotNil(t, serr)
	assert.Equal(t, http.StatusBadRequest, serr.StatusCode)

	_, serr = svc.Upload(context.Background(), "big.jpg", "image/jpeg", services.MaxImageSize+1, strings.NewReader("x"))
	require.NotNil(t, serr)
	assert.Equal(t, http.StatusBadRequest, serr.StatusCode)
}

func TestImageService_Presign(t *testing.T) {
	svc := services.NewImageService(&fakeImageStore{}, "")
	up, serr := svc.Presign(context.Background(), "a.webp", "image/webp")
	require.Nil(t, serr)
	assert.Equal(t, http.MethodPut, up.Method)
	assert.Contains(t, up.UploadURL, up.Key)
	assert.Equal(t, int64(900), up.ExpiresIn)
}

func TestImageService_NotConfigured(t *testing.T) {
	svc := services.NewImageService(nil, "")
	_, serr := svc.Presign(context.Background(), "a.png", "image/png")
	require.NotNil(t, serr)
	assert.Equal(t, http.StatusServiceUnavailable, serr.StatusCode)
}
