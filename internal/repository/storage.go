package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"sobanhang/internal/infra"
	"sobanhang/internal/model"
)

// Fixed, distinct keys of the persisted records. The format carries no schema
// version; changing a record shape is not backward compatible.
const (
	ProductsKey  = "sobanhang_products"
	CustomersKey = "sobanhang_customers"
	SalesKey     = "sobanhang_sales"
	ThemeKey     = "theme"
)

// ErrCorruptRecord is returned by Load when a stored record is not valid JSON
// for its collection.
var ErrCorruptRecord = errors.New("corrupt stored record")

// ProductWriter, CustomerWriter and SaleWriter are the narrow ports each store
// writes through. StateStorage satisfies all three.
type ProductWriter interface {
	SaveProducts(ctx context.Context, products []model.Product) error
}

type CustomerWriter interface {
	SaveCustomers(ctx context.Context, customers []model.Customer) error
}

type SaleWriter interface {
	SaveSales(ctx context.Context, sales []model.Sale) error
}

// ThemeStorage reads and writes the single theme string.
type ThemeStorage interface {
	LoadTheme(ctx context.Context) (string, bool, error)
	SaveTheme(ctx context.Context, theme string) error
}

// StateStorage is the persistence adapter: pure serialize/deserialize of the
// three records and the theme value, no business logic.
type StateStorage interface {
	ProductWriter
	CustomerWriter
	SaleWriter
	ThemeStorage
	Load(ctx context.Context) (*model.Snapshot, error)
	SaveAll(ctx context.Context, s *model.Snapshot) error
	Ping(ctx context.Context) error
}

type stateStorage struct{ kv infra.KVStore }

func NewStateStorage(kv infra.KVStore) StateStorage { return &stateStorage{kv: kv} }

// Load reads all three records. A missing key reads as an empty collection.
func (s *stateStorage) Load(ctx context.Context) (*model.Snapshot, error) {
	snap := &model.Snapshot{}
	if err := s.read(ctx, ProductsKey, &snap.Products); err != nil {
		return nil, err
	}
	if err := s.read(ctx, CustomersKey, &snap.Customers); err != nil {
		return nil, err
	}
	if err := s.read(ctx, SalesKey, &snap.Sales); err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *stateStorage) read(ctx context.Context, key string, dest any) error {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if !ok || raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("load %s: %w: %v", key, ErrCorruptRecord, err)
	}
	return nil
}

func (s *stateStorage) write(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *stateStorage) SaveProducts(ctx context.Context, products []model.Product) error {
	return s.write(ctx, ProductsKey, nonNil(products))
}

func (s *stateStorage) SaveCustomers(ctx context.Context, customers []model.Customer) error {
	return s.write(ctx, CustomersKey, nonNil(customers))
}

func (s *stateStorage) SaveSales(ctx context.Context, sales []model.Sale) error {
	return s.write(ctx, SalesKey, nonNil(sales))
}

// SaveAll writes the three records one after another; there is no atomicity
// across them.
func (s *stateStorage) SaveAll(ctx context.Context, snap *model.Snapshot) error {
	if err := s.SaveProducts(ctx, snap.Products); err != nil {
		return err
	}
	if err := s.SaveCustomers(ctx, snap.Customers); err != nil {
		return err
	}
	return s.SaveSales(ctx, snap.Sales)
}

// LoadTheme returns the stored theme string, if any.
func (s *stateStorage) LoadTheme(ctx context.Context) (string, bool, error) {
	return s.kv.Get(ctx, ThemeKey)
}

// SaveTheme stores the theme as a bare string, not JSON.
func (s *stateStorage) SaveTheme(ctx context.Context, theme string) error {
	return s.kv.Set(ctx, ThemeKey, theme)
}

func (s *stateStorage) Ping(ctx context.Context) error { return s.kv.Ping(ctx) }

// nonNil makes empty collections serialize as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
