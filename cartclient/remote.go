package cartclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/YeshwantRaoB/organizon-web/models"
)

// HTTPRemote talks to the storefront's /api/cart endpoint.
type HTTPRemote struct {
	baseURL string
	client  *http.Client
}

func NewHTTPRemote(baseURL string, timeout time.Duration) *HTTPRemote {
	return &HTTPRemote{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (r *HTTPRemote) do(ctx context.Context, method, token string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+"/api/cart", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("cart %s: status=%d body=%s", method, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return resp, nil
}

// Fetch returns the server cart's lines, empty when the user has none.
func (r *HTTPRemote) Fetch(ctx context.Context, token string) ([]models.CartItem, error) {
	resp, err := r.do(ctx, http.MethodGet, token, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body struct {
		Cart models.Cart `json:"cart"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	if body.Cart.Items == nil {
		return []models.CartItem{}, nil
	}
	return body.Cart.Items, nil
}

// Save replaces the server cart's lines.
func (r *HTTPRemote) Save(ctx context.Context, token string, items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	b, err := json.Marshal(map[string]interface{}{"items": items})
	if err != nil {
		return err
	}
	resp, err := r.do(ctx, http.MethodPost, token, bytes.NewReader(b))
	if err != nil {
		return err
	}
	return resp.Body.Close()
}
