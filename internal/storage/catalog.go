package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"sync"

	"copydesk/internal/domain"
)

var productIDPattern = regexp.MustCompile(`^prod(\d+)$`)

// JSONCatalog is a product repository backed by one JSON array document in a
// FileStore. Every mutation rewrites the whole document.
type JSONCatalog struct {
	store *FileStore
	key   string

	mu       sync.RWMutex
	products []domain.Product
}

// NewJSONCatalog loads the catalog stored at key. A missing document starts
// an empty catalog; a malformed one is an error.
func NewJSONCatalog(ctx context.Context, store *FileStore, key string) (*JSONCatalog, error) {
	c := &JSONCatalog{store: store, key: key}
	data, err := store.Read(ctx, key)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return c, nil
	case err != nil:
		return nil, err
	}
	if err := json.Unmarshal(data, &c.products); err != nil {
		return nil, fmt.Errorf("storage: decode catalog %s: %w", key, err)
	}
	return c, nil
}

func (c *JSONCatalog) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		if filter.Match(p) {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

func (c *JSONCatalog) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	idx := c.indexOf(id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	p := c.products[idx].Clone()
	return &p, nil
}

// Create appends product, assigning the next prodNNN id when it has none.
func (c *JSONCatalog) Create(ctx context.Context, product domain.Product) (*domain.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := product.Clone()
	if p.ID == "" {
		p.ID = c.nextID()
	} else if c.indexOf(p.ID) >= 0 {
		return nil, domain.InvalidRequestf("product %s already exists", p.ID)
	}
	next := append(append([]domain.Product(nil), c.products...), p)
	if err := c.save(ctx, next); err != nil {
		return nil, err
	}
	out := p.Clone()
	return &out, nil
}

// Update replaces the stored record. The id is kept.
func (c *JSONCatalog) Update(ctx context.Context, id string, product domain.Product) (*domain.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexOf(id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	p := product.Clone()
	p.ID = id
	next := append([]domain.Product(nil), c.products...)
	next[idx] = p
	if err := c.save(ctx, next); err != nil {
		return nil, err
	}
	out := p.Clone()
	return &out, nil
}

func (c *JSONCatalog) Delete(ctx context.Context, id string) (*domain.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexOf(id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	removed := c.products[idx]
	next := make([]domain.Product, 0, len(c.products)-1)
	next = append(next, c.products[:idx]...)
	next = append(next, c.products[idx+1:]...)
	if err := c.save(ctx, next); err != nil {
		return nil, err
	}
	return &removed, nil
}

func (c *JSONCatalog) indexOf(id string) int {
	for i := range c.products {
		if c.products[i].ID == id {
			return i
		}
	}
	return -1
}

// nextID returns prod followed by one more than the highest numeric suffix in
// use, zero padded to three digits.
func (c *JSONCatalog) nextID() string {
	highest := 0
	for _, p := range c.products {
		m := productIDPattern.FindStringSubmatch(p.ID)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("prod%03d", highest+1)
}

// save writes next and only then swaps it in, so a failed write leaves the
// in-memory catalog unchanged.
func (c *JSONCatalog) save(ctx context.Context, next []domain.Product) error {
	data, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encode catalog: %w", err)
	}
	if _, err := c.store.Write(ctx, c.key, data); err != nil {
		return err
	}
	c.products = next
	return nil
}

var _ domain.ProductRepository = (*JSONCatalog)(nil)
