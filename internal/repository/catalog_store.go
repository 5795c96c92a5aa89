package repository

import (
	"context"
	"slices"
	"strings"
	"sync"

	"sobanhang/internal/model"
)

// DefaultSearchLimit caps Search results when the caller passes no limit.
const DefaultSearchLimit = 5

// CatalogStore owns the product list. Every mutation is written through to
// storage before it becomes visible; if the write fails the in-memory list is
// left unchanged.
type CatalogStore interface {
	Add(ctx context.Context, p model.Product) (model.Product, error)
	// Update replaces the product with p.ID and reports whether it existed.
	Update(ctx context.Context, p model.Product) (bool, error)
	Delete(ctx context.Context, id string) error
	FindByID(id string) (model.Product, bool)
	// FindByBarcode returns the first product carrying code. Barcodes are not
	// unique; callers must tolerate whichever duplicate comes first.
	FindByBarcode(code string) (model.Product, bool)
	Search(text string, limit int) []model.Product
	List() []model.Product
	// DeductStock decrements the stock of every product referenced by items.
	// Items whose product is missing are skipped. Returns how many items matched.
	DeductStock(ctx context.Context, items []model.SaleItem) (int, error)
}

type catalogStore struct {
	mu       sync.Mutex
	products []model.Product
	storage  ProductWriter
}

// NewCatalogStore takes ownership of products.
func NewCatalogStore(storage ProductWriter, products []model.Product) CatalogStore {
	return &catalogStore{storage: storage, products: products}
}

// Add ignores any id on p and assigns a fresh one.
func (s *catalogStore) Add(ctx context.Context, p model.Product) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = NewID("prod")
	next := append(slices.Clone(s.products), p)
	if err := s.commit(ctx, next); err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (s *catalogStore) Update(ctx context.Context, p model.Product) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(p.ID)
	if idx < 0 {
		return false, nil
	}
	next := slices.Clone(s.products)
	next[idx] = p
	if err := s.commit(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

func (s *catalogStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}
	next := slices.Delete(slices.Clone(s.products), idx, idx+1)
	return s.commit(ctx, next)
}

func (s *catalogStore) FindByID(id string) (model.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexOf(id); idx >= 0 {
		return s.products[idx], true
	}
	return model.Product{}, false
}

func (s *catalogStore) FindByBarcode(code string) (model.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.Barcode == code {
			return p, true
		}
	}
	return model.Product{}, false
}

// Search matches text case-insensitively against name or SKU. Empty text
// yields no results.
func (s *catalogStore) Search(text string, limit int) []model.Product {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	needle := strings.ToLower(text)
	if needle == "" {
		return []model.Product{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Product, 0, limit)
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), needle) || strings.Contains(strings.ToLower(p.SKU), needle) {
			out = append(out, p)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

func (s *catalogStore) List() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.products)
}

func (s *catalogStore) DeductStock(ctx context.Context, items []model.SaleItem) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.Clone(s.products)
	matched := 0
	for _, item := range items {
		idx := s.indexOf(item.ProductID)
		if idx < 0 {
			continue
		}
		next[idx].Stock -= item.Quantity
		matched++
	}
	if matched == 0 {
		return 0, nil
	}
	if err := s.commit(ctx, next); err != nil {
		return 0, err
	}
	return matched, nil
}

// indexOf must be called under lock.
func (s *catalogStore) indexOf(id string) int {
	return slices.IndexFunc(s.products, func(p model.Product) bool { return p.ID == id })
}

// commit persists next and swaps it in (must be called under lock).
func (s *catalogStore) commit(ctx context.Context, next []model.Product) error {
	if err := s.storage.SaveProducts(ctx, next); err != nil {
		return err
	}
	s.products = next
	return nil
}
