package infra

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"tripscore/internal/config"
	"tripscore/internal/models/db_models"
)

// InitPostgresql opens the catalog database. With AutoMigrate set it also
// enables pgvector and creates the place tables.
func InitPostgresql(cfg config.DatabaseConfig, logger zerolog.Logger) (*gorm.DB, error) {
	connectionPool, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	sqlDB, err := connectionPool.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if cfg.AutoMigrate {
		if err := connectionPool.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
			return nil, fmt.Errorf("enable pgvector: %w", err)
		}
		if err := connectionPool.AutoMigrate(&db_models.Place{}, &db_models.PlaceEmbedding{}); err != nil {
			return nil, fmt.Errorf("migrate catalog tables: %w", err)
		}
		logger.Info().Msg("catalog tables migrated")
	}

	return connectionPool, nil
}

func ClosePostgresql(db *gorm.DB, logger zerolog.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("get database instance")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error().Err(err).Msg("close postgres connection")
	} else {
		logger.Info().Msg("postgres connection closed")
	}
}
