package repository

import (
	"context"
	"slices"
	"sync"

	"sobanhang/internal/model"
)

// SaleLedger holds committed sales, most recent first. Sales are never
// updated or removed.
type SaleLedger interface {
	Append(ctx context.Context, sale model.Sale) error
	All() []model.Sale
	FindByID(id string) (model.Sale, bool)
	Len() int
}

type saleLedger struct {
	mu      sync.Mutex
	sales   []model.Sale
	storage SaleWriter
}

// NewSaleLedger expects sales already in most-recent-first order, as stored.
func NewSaleLedger(storage SaleWriter, sales []model.Sale) SaleLedger {
	return &saleLedger{storage: storage, sales: sales}
}

// Append prepends sale so it becomes the new head.
func (l *saleLedger) Append(ctx context.Context, sale model.Sale) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := make([]model.Sale, 0, len(l.sales)+1)
	next = append(next, sale)
	next = append(next, l.sales...)
	if err := l.storage.SaveSales(ctx, next); err != nil {
		return err
	}
	l.sales = next
	return nil
}

func (l *saleLedger) All() []model.Sale {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.sales)
}

func (l *saleLedger) FindByID(id string) (model.Sale, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.sales {
		if s.ID == id {
			return s, true
		}
	}
	return model.Sale{}, false
}

func (l *saleLedger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.sales)
}
