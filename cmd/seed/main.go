// cmd/seed/main.go: writes the demo catalog, customers and an empty ledger
// to the configured storage.
// Usage: go run ./cmd/seed [-force]
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"sobanhang/internal/config"
	"sobanhang/internal/infra"
	"sobanhang/internal/repository"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	force := flag.Bool("force", false, "overwrite existing data")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	kv, err := infra.OpenKVStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open storage")
	}
	defer kv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	storage := repository.NewStateStorage(kv)
	if !*force {
		snap, err := storage.Load(ctx)
		if err == nil && !snap.Empty() {
			log.Warn().
				Int("products", len(snap.Products)).
				Int("customers", len(snap.Customers)).
				Int("sales", len(snap.Sales)).
				Msg("storage already holds data; rerun with -force to overwrite")
			return
		}
	}

	seed := repository.SeedData()
	if err := storage.SaveAll(ctx, seed); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	log.Info().
		Str("driver", cfg.StorageDriver).
		Int("products", len(seed.Products)).
		Int("customers", len(seed.Customers)).
		Msg("demo data written")
}
