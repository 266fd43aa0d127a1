package db_models

import (
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"time"
)

type PlaceEmbedding struct {
	PlaceID   uuid.UUID       `gorm:"type:uuid;primaryKey;column:place_id"`
	Embedding pgvector.Vector `gorm:"type:vector"`
	Dimension int
	ModelName string
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
