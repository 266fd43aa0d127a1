package infra

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"tripscore/internal/config"
)

// OpenBadger opens the embedded catalog store. Badger's own logger is
// silenced; open and close are logged here.
func OpenBadger(cfg config.CatalogConfig, logger zerolog.Logger) (*badger.DB, error) {
	opts := badger.DefaultOptions(cfg.BadgerPath).WithLogger(nil)
	if cfg.BadgerInMemory {
		opts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", cfg.BadgerPath, err)
	}

	logger.Info().Str("path", cfg.BadgerPath).Bool("in_memory", cfg.BadgerInMemory).Msg("badger catalog store opened")
	return db, nil
}

func CloseBadger(db *badger.DB, logger zerolog.Logger) {
	if err := db.Close(); err != nil {
		logger.Error().Err(err).Msg("close badger")
		return
	}
	logger.Info().Msg("badger catalog store closed")
}
