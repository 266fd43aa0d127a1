package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
}

const ConfigPathEnvVar = "CONFIG_PATH"

// Load applies defaults, the config file if one is found, then environment
// variables. A .env file in the working directory is read first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

var envMappings = map[string]string{
	"postgres_url":               "database.url",
	"database_auto_migrate":      "database.auto_migrate",
	"database_max_open_conns":    "database.max_open_conns",
	"database_max_idle_conns":    "database.max_idle_conns",
	"database_conn_max_lifetime": "database.conn_max_lifetime",

	"catalog_store":             "catalog.store",
	"catalog_badger_path":       "catalog.badger_path",
	"catalog_badger_in_memory":  "catalog.badger_in_memory",
	"catalog_seed_file":         "catalog.seed_file",
	"catalog_embed_batch_size":  "catalog.embed_batch_size",
	"catalog_embed_concurrency": "catalog.embed_concurrency",

	"embedding_provider":   "embedding.provider",
	"embedding_model":      "embedding.model",
	"embedding_dimensions": "embedding.dimensions",
	"openai_api_key":       "embedding.openai_api_key",
	"gemini_api_key":       "embedding.gemini_api_key",

	"sentiment_enabled": "sentiment.enabled",
	"sentiment_model":   "sentiment.model",
	"sentiment_api_key": "sentiment.api_key",

	"scoring_weight_feasibility":          "scoring.weights.feasibility",
	"scoring_weight_popularity":           "scoring.weights.popularity",
	"scoring_weight_diversity":            "scoring.weights.diversity",
	"scoring_weight_flow":                 "scoring.weights.flow",
	"scoring_weight_preference_alignment": "scoring.weights.preference_alignment",
	"scoring_max_popularity":              "scoring.max_popularity",
	"scoring_max_rating":                  "scoring.max_rating",
	"scoring_neutral_preference":          "scoring.neutral_preference",
	"scoring_daily_hour_capacity":         "scoring.daily_hour_capacity",
	"scoring_max_stops_per_day":           "scoring.max_stops_per_day",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps known variables to config paths. Anything else
// returns "" and is ignored.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
