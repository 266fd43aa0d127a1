package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripscore/internal/models/db_models"
)

// EmbeddingRepository persists one vector per place. All returns rows
// ordered by place id, which for v7 ids is creation order.
type EmbeddingRepository interface {
	SaveEmbedding(ctx context.Context, embedding *db_models.PlaceEmbedding) error
	All(ctx context.Context) ([]db_models.PlaceEmbedding, error)
}

type PostgresEmbeddingRepository struct {
	db *gorm.DB
}

func NewPostgresEmbeddingRepository(db *gorm.DB) EmbeddingRepository {
	return &PostgresEmbeddingRepository{db: db}
}

func (p *PostgresEmbeddingRepository) SaveEmbedding(ctx context.Context, embedding *db_models.PlaceEmbedding) error {
	embedding.Dimension = len(embedding.Embedding.Slice())
	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(embedding).Error
}

func (p *PostgresEmbeddingRepository) All(ctx context.Context) ([]db_models.PlaceEmbedding, error) {
	var results []db_models.PlaceEmbedding
	err := p.db.WithContext(ctx).
		Joins("JOIN places ON places.id = place_embeddings.place_id AND places.deleted_at IS NULL").
		Order("place_embeddings.place_id").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
