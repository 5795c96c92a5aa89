package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// State bundles the three stores built from one storage load.
type State struct {
	Catalog   CatalogStore
	Customers CustomerStore
	Sales     SaleLedger
}

// LoadState reads persisted state and builds the stores.
//
// A corrupt record, or storage holding nothing at all, is replaced by
// SeedData; whatever was stored before is discarded. Any other storage error
// (backend unreachable) is returned so existing data is never overwritten.
func LoadState(ctx context.Context, storage StateStorage) (*State, error) {
	snap, err := storage.Load(ctx)
	switch {
	case errors.Is(err, ErrCorruptRecord):
		log.Warn().Err(err).Msg("stored state unreadable, reseeding demo data")
		snap = nil
	case err != nil:
		return nil, err
	case snap.Empty():
		log.Info().Msg("no stored state, seeding demo data")
		snap = nil
	}

	if snap == nil {
		snap = SeedData()
		if err := storage.SaveAll(ctx, snap); err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
	}

	return &State{
		Catalog:   NewCatalogStore(storage, snap.Products),
		Customers: NewCustomerStore(storage, snap.Customers),
		Sales:     NewSaleLedger(storage, snap.Sales),
	}, nil
}
