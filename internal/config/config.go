// Package config loads layered configuration: struct defaults, then an
// optional YAML file, then environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"tripscore/internal/logging"
	"tripscore/internal/scoring"
	"tripscore/internal/validation"
)

const (
	StorePostgres = "postgres"
	StoreBadger   = "badger"
)

type Config struct {
	Database  DatabaseConfig  `koanf:"database"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Embedding EmbeddingConfig `koanf:"embedding"`
	Sentiment SentimentConfig `koanf:"sentiment"`
	Scoring   scoring.Config  `koanf:"scoring"`
	Logging   logging.Config  `koanf:"logging"`
}

type DatabaseConfig struct {
	URL             string        `koanf:"url"`
	AutoMigrate     bool          `koanf:"auto_migrate"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"gte=0"`
}

type CatalogConfig struct {
	// Store selects where places and embeddings live.
	Store            string `koanf:"store" validate:"oneof=postgres badger"`
	BadgerPath       string `koanf:"badger_path"`
	BadgerInMemory   bool   `koanf:"badger_in_memory"`
	SeedFile         string `koanf:"seed_file"`
	EmbedBatchSize   int    `koanf:"embed_batch_size" validate:"gte=1"`
	EmbedConcurrency int    `koanf:"embed_concurrency" validate:"gte=1"`
}

type EmbeddingConfig struct {
	Provider     string `koanf:"provider" validate:"oneof=openai gemini hash"`
	Model        string `koanf:"model"`
	Dimensions   int    `koanf:"dimensions" validate:"gt=0"`
	OpenAIAPIKey string `koanf:"openai_api_key"`
	GeminiAPIKey string `koanf:"gemini_api_key"`
}

// APIKey returns the key for the configured provider.
func (e EmbeddingConfig) APIKey() string {
	switch strings.ToLower(e.Provider) {
	case "openai":
		return e.OpenAIAPIKey
	case "gemini":
		return e.GeminiAPIKey
	default:
		return ""
	}
}

type SentimentConfig struct {
	Enabled bool   `koanf:"enabled"`
	Model   string `koanf:"model"`
	// APIKey falls back to embedding.openai_api_key when empty.
	APIKey string `koanf:"api_key"`
}

func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: time.Hour,
		},
		Catalog: CatalogConfig{
			Store:            StoreBadger,
			BadgerPath:       "data/catalog",
			SeedFile:         "catalog/seed_places.json",
			EmbedBatchSize:   64,
			EmbedConcurrency: 4,
		},
		Embedding: EmbeddingConfig{
			Provider:   "hash",
			Dimensions: 256,
		},
		Scoring: scoring.DefaultConfig(),
		Logging: logging.DefaultConfig(),
	}
}

// Validate checks struct tags, then the rules that span fields.
func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Catalog.Store == StorePostgres && c.Database.URL == "" {
		return fmt.Errorf("config: POSTGRES_URL is required when catalog.store is postgres")
	}
	if c.Catalog.Store == StoreBadger && c.Catalog.BadgerPath == "" && !c.Catalog.BadgerInMemory {
		return fmt.Errorf("config: CATALOG_BADGER_PATH is required unless the store is in memory")
	}
	if c.Embedding.Provider != "hash" && c.Embedding.APIKey() == "" {
		return fmt.Errorf("config: an API key is required for the %s embedding provider", c.Embedding.Provider)
	}
	if c.Sentiment.Enabled && c.SentimentAPIKey() == "" {
		return fmt.Errorf("config: OPENAI_API_KEY or SENTIMENT_API_KEY is required when sentiment is enabled")
	}
	g := c.Scoring.Grades
	if !(g.Excellent >= g.Good && g.Good >= g.Decent) {
		return fmt.Errorf("config: grade thresholds must satisfy excellent >= good >= decent")
	}
	return nil
}

func (c *Config) SentimentAPIKey() string {
	if c.Sentiment.APIKey != "" {
		return c.Sentiment.APIKey
	}
	return c.Embedding.OpenAIAPIKey
}
