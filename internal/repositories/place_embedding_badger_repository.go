package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"

	"tripscore/internal/models/db_models"
	"tripscore/pkg/utils"
)

const embeddingKeyPrefix = "place_embedding:"

// BadgerEmbeddingRepository stores each vector as little-endian float32s
// under its place id.
type BadgerEmbeddingRepository struct {
	db *badger.DB
}

func NewBadgerEmbeddingRepository(db *badger.DB) EmbeddingRepository {
	return &BadgerEmbeddingRepository{db: db}
}

func (b *BadgerEmbeddingRepository) SaveEmbedding(ctx context.Context, embedding *db_models.PlaceEmbedding) error {
	vec := embedding.Embedding.Slice()
	embedding.Dimension = len(vec)

	return b.db.Update(func(txn *badger.Txn) error {
		key := []byte(embeddingKeyPrefix + embedding.PlaceID.String())
		if err := txn.Set(key, utils.EncodeVector(vec)); err != nil {
			return fmt.Errorf("set embedding: %w", err)
		}
		return nil
	})
}

func (b *BadgerEmbeddingRepository) All(ctx context.Context) ([]db_models.PlaceEmbedding, error) {
	var results []db_models.PlaceEmbedding

	err := b.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(embeddingKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			id, err := uuid.Parse(strings.TrimPrefix(string(item.Key()), embeddingKeyPrefix))
			if err != nil {
				return fmt.Errorf("parse embedding key: %w", err)
			}

			var vec []float32
			if err := item.Value(func(val []byte) error {
				vec, err = utils.DecodeVector(val)
				return err
			}); err != nil {
				return fmt.Errorf("decode embedding %s: %w", id, err)
			}

			results = append(results, db_models.PlaceEmbedding{
				PlaceID:   id,
				Embedding: pgvector.NewVector(vec),
				Dimension: len(vec),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
