package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"tripscore/internal/models/db_models"
	"tripscore/pkg/utils"
)

const (
	placeKeyPrefix     = "place:"
	placeNameKeyPrefix = "place_name:"
)

// BadgerPlaceRepository keeps the catalog in an embedded badger store for
// deployments without Postgres. Names are indexed case-insensitively.
type BadgerPlaceRepository struct {
	db *badger.DB
}

func NewBadgerPlaceRepository(db *badger.DB) *BadgerPlaceRepository {
	return &BadgerPlaceRepository{db: db}
}

func placeNameKey(name string) []byte {
	return []byte(placeNameKeyPrefix + strings.ToLower(strings.TrimSpace(name)))
}

func (r *BadgerPlaceRepository) CreatePlace(ctx context.Context, place *db_models.Place) (uuid.UUID, error) {
	if place.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return uuid.Nil, err
		}
		place.ID = id
	}
	now := time.Now().Unix()
	place.CreatedAt = now
	place.UpdatedAt = now

	data, err := json.Marshal(place)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal place: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		nameKey := placeNameKey(place.Name)
		if _, err := txn.Get(nameKey); err == nil {
			return fmt.Errorf("%w: %s", utils.ErrPlaceAlreadyExists, place.Name)
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		if err := txn.Set([]byte(placeKeyPrefix+place.ID.String()), data); err != nil {
			return fmt.Errorf("set place: %w", err)
		}
		if err := txn.Set(nameKey, []byte(place.ID.String())); err != nil {
			return fmt.Errorf("set place name: %w", err)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return place.ID, nil
}

func (r *BadgerPlaceRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Place, error) {
	var place *db_models.Place
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		place, err = getPlace(txn, id.String())
		return err
	})
	return place, err
}

func (r *BadgerPlaceRepository) GetByName(ctx context.Context, name string) (*db_models.Place, error) {
	var place *db_models.Place
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(placeNameKey(name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		id, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		place, err = getPlace(txn, string(id))
		return err
	})
	return place, err
}

func getPlace(txn *badger.Txn, id string) (*db_models.Place, error) {
	item, err := txn.Get([]byte(placeKeyPrefix + id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get place: %w", err)
	}

	var place db_models.Place
	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &place)
	}); err != nil {
		return nil, err
	}
	return &place, nil
}
