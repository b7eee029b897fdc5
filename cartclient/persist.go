package cartclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/YeshwantRaoB/organizon-web/models"
)

// StorageKey names the local cart record.
const StorageKey = "organizon-cart"

// FilePersister stores the cart as JSON in <dir>/organizon-cart.json.
type FilePersister struct {
	path string
}

func NewFilePersister(dir string) *FilePersister {
	return &FilePersister{path: filepath.Join(dir, StorageKey+".json")}
}

type persistedCart struct {
	Items []models.CartItem `json:"items"`
}

// Load returns nil items when nothing has been stored yet.
func (p *FilePersister) Load() ([]models.CartItem, error) {
	b, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}
	var state persistedCart
	if err := json.Unmarshal(b, &state); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return state.Items, nil
}

// Save writes through a temp file so a crash never leaves half a cart.
func (p *FilePersister) Save(items []models.CartItem) error {
	b, err := json.Marshal(persistedCart{Items: items})
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("create cart dir: %w", err)
	}
	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("write cart: %w", err)
	}
	return os.Rename(tmp, p.path)
}
