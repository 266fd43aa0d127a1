package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"tripscore/cmd/fx/catalog_fx"
	"tripscore/cmd/fx/config_fx"
	"tripscore/cmd/fx/db_fx"
	"tripscore/cmd/fx/embedding_fx"
	"tripscore/cmd/fx/index_fx"
	"tripscore/cmd/fx/scoring_fx"
	"tripscore/internal/config"
	"tripscore/internal/index"
	"tripscore/internal/models/request_models"
	"tripscore/internal/models/response_models"
	"tripscore/internal/services"
	"tripscore/internal/validation"
)

func main() {
	input := flag.String("input", "", "score request JSON file; stdin when empty")
	flag.Parse()

	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		embedding_fx.Module,
		catalog_fx.Module,
		index_fx.Module,
		scoring_fx.Module,

		fx.Supply(inputPath(*input)),
		fx.Invoke(LoadCatalog),
		fx.Invoke(RunScoring),
	)

	app.Run()
}

type inputPath string

// LoadCatalog seeds the catalog and publishes the first index snapshot
// before anything is scored.
func LoadCatalog(
	lc fx.Lifecycle,
	cfg *config.Config,
	catalog services.PlaceCatalogInterface,
	indexService services.IndexServiceInterface,
	logger zerolog.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if path := cfg.Catalog.SeedFile; path != "" {
				n, err := catalog.LoadSeedFile(ctx, path)
				switch {
				case errors.Is(err, os.ErrNotExist):
					logger.Warn().Str("path", path).Msg("seed file not found, skipping")
				case err != nil:
					return fmt.Errorf("seed catalog: %w", err)
				default:
					logger.Info().Str("path", path).Int("added", n).Msg("catalog seeded")
				}
			}
			err := indexService.Rebuild(ctx)
			if errors.Is(err, index.ErrEmptyCatalog) {
				// pre-built itineraries still score without an index
				return nil
			}
			return err
		},
	})
}

// RunScoring scores one request after startup, prints the result and
// shuts the app down.
func RunScoring(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	path inputPath,
	itineraries services.ItineraryServiceInterface,
	logger zerolog.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				code := 0
				if err := scoreOnce(context.Background(), string(path), itineraries, os.Stdout); err != nil {
					logger.Error().Err(err).Msg("scoring failed")
					code = 1
				}
				_ = shutdowner.Shutdown(fx.ExitCode(code))
			}()
			return nil
		},
	})
}

func scoreOnce(ctx context.Context, path string, itineraries services.ItineraryServiceInterface, out io.Writer) error {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	var req request_models.ScoreRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	if err := validation.Struct(req); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}

	var (
		result response_models.ScoreResult
		err    error
	)
	if req.Itinerary != nil {
		result, err = itineraries.ScoreItinerary(ctx, *req.Itinerary)
	} else {
		result, err = itineraries.ScoreEntities(ctx, req.Text, req.Entities)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
