package infra

import (
	"path/filepath"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripscore/internal/config"
)

func TestOpenBadger_OnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog")
	db, err := OpenBadger(config.CatalogConfig{BadgerPath: path}, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("k"), []byte("v"))
	}))
	CloseBadger(db, zerolog.Nop())

	db, err = OpenBadger(config.CatalogConfig{BadgerPath: path}, zerolog.Nop())
	require.NoError(t, err)
	defer CloseBadger(db, zerolog.Nop())

	require.NoError(t, db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("k"))
		if err != nil {
			return err
		}
		val, err := item.ValueCopy(nil)
		assert.Equal(t, "v", string(val))
		return err
	}))
}

func TestOpenBadger_InMemory(t *testing.T) {
	db, err := OpenBadger(config.CatalogConfig{BadgerInMemory: true}, zerolog.Nop())
	require.NoError(t, err)
	CloseBadger(db, zerolog.Nop())
}
