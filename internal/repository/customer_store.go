package repository

import (
	"context"
	"slices"
	"sync"

	"sobanhang/internal/model"

	"github.com/shopspring/decimal"
)

// CustomerStore owns the customer list, written through like CatalogStore.
type CustomerStore interface {
	// Add assigns a fresh id and forces Debt to zero.
	Add(ctx context.Context, c model.Customer) (model.Customer, error)
	// Update applies edit to the customer with id under the store lock. The id
	// cannot be changed. Reports false, and writes nothing, if absent.
	Update(ctx context.Context, id string, edit func(*model.Customer)) (model.Customer, bool, error)
	Delete(ctx context.Context, id string) error
	// AdjustDebt adds delta (positive or negative) to the customer's debt.
	// No-op if absent.
	AdjustDebt(ctx context.Context, id string, delta decimal.Decimal) (model.Customer, bool, error)
	FindByID(id string) (model.Customer, bool)
	List() []model.Customer
}

type customerStore struct {
	mu        sync.Mutex
	customers []model.Customer
	storage   CustomerWriter
}

func NewCustomerStore(storage CustomerWriter, customers []model.Customer) CustomerStore {
	return &customerStore{storage: storage, customers: customers}
}

func (s *customerStore) Add(ctx context.Context, c model.Customer) (model.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = NewID("cust")
	c.Debt = decimal.Zero
	next := append(slices.Clone(s.customers), c)
	if err := s.commit(ctx, next); err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

func (s *customerStore) Update(ctx context.Context, id string, edit func(*model.Customer)) (model.Customer, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return model.Customer{}, false, nil
	}
	next := slices.Clone(s.customers)
	edit(&next[idx])
	next[idx].ID = id
	if err := s.commit(ctx, next); err != nil {
		return model.Customer{}, false, err
	}
	return next[idx], true, nil
}

func (s *customerStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}
	return s.commit(ctx, slices.Delete(slices.Clone(s.customers), idx, idx+1))
}

func (s *customerStore) AdjustDebt(ctx context.Context, id string, delta decimal.Decimal) (model.Customer, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return model.Customer{}, false, nil
	}
	next := slices.Clone(s.customers)
	next[idx].Debt = next[idx].Debt.Add(delta)
	if err := s.commit(ctx, next); err != nil {
		return model.Customer{}, false, err
	}
	return next[idx], true, nil
}

func (s *customerStore) FindByID(id string) (model.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexOf(id); idx >= 0 {
		return s.customers[idx], true
	}
	return model.Customer{}, false
}

func (s *customerStore) List() []model.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.customers)
}

func (s *customerStore) indexOf(id string) int {
	return slices.IndexFunc(s.customers, func(c model.Customer) bool { return c.ID == id })
}

func (s *customerStore) commit(ctx context.Context, next []model.Customer) error {
	if err := s.storage.SaveCustomers(ctx, next); err != nil {
		return err
	}
	s.customers = next
	return nil
}
