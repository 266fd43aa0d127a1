package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"tripscore/internal/index"
	"tripscore/internal/metrics"
	"tripscore/internal/models/db_models"
	"tripscore/internal/models/request_models"
	"tripscore/internal/models/response_models"
	"tripscore/internal/repositories"
	"tripscore/internal/validation"
	"tripscore/pkg/utils"
)

type PlaceCatalogInterface interface {
	AddPlace(ctx context.Context, req request_models.CreatePlaceRequest) (uuid.UUID, error)
	AddPlaces(ctx context.Context, reqs []request_models.CreatePlaceRequest) ([]uuid.UUID, error)
	GetPlace(ctx context.Context, id uuid.UUID) (*response_models.Place, error)
	AllEmbeddings(ctx context.Context) ([]index.Entry, error)
	LoadSeedFile(ctx context.Context, path string) (int, error)
}

type CatalogOptions struct {
	// EmbedBatchSize caps the texts sent per embedding call.
	EmbedBatchSize int
	// EmbedConcurrency caps in-flight embedding calls during bulk loads.
	EmbedConcurrency int
}

type PlaceCatalog struct {
	placeRepo     repositories.PlaceRepository
	embeddingRepo repositories.EmbeddingRepository
	embedder      utils.EmbeddingClientInterface
	opts          CatalogOptions
	logger        zerolog.Logger
}

func NewPlaceCatalog(
	placeRepo repositories.PlaceRepository,
	embeddingRepo repositories.EmbeddingRepository,
	embedder utils.EmbeddingClientInterface,
	opts CatalogOptions,
	logger zerolog.Logger,
) *PlaceCatalog {
	if opts.EmbedBatchSize < 1 {
		opts.EmbedBatchSize = 64
	}
	if opts.EmbedConcurrency < 1 {
		opts.EmbedConcurrency = 1
	}
	return &PlaceCatalog{
		placeRepo:     placeRepo,
		embeddingRepo: embeddingRepo,
		embedder:      embedder,
		opts:          opts,
		logger:        logger.With().Str("component", "place_catalog").Logger(),
	}
}

// AddPlace stores one place and, when it has a description, its embedding.
// The embedding is computed before anything is written so a failed call
// leaves no place without its vector.
func (c *PlaceCatalog) AddPlace(ctx context.Context, req request_models.CreatePlaceRequest) (uuid.UUID, error) {
	if err := validation.Struct(req); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}
	req.Name = strings.TrimSpace(req.Name)

	existing, err := c.placeRepo.GetByName(ctx, req.Name)
	if err != nil {
		c.logger.Error().Err(err).Str("name", req.Name).Msg("lookup place by name")
		return uuid.Nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", utils.ErrPlaceAlreadyExists, req.Name)
	}

	var vec pgvector.Vector
	hasEmbedding := strings.TrimSpace(req.Description) != ""
	if hasEmbedding {
		vecs, err := c.embed(ctx, []string{req.Description})
		if err != nil {
			return uuid.Nil, err
		}
		vec = vecs[0]
	}

	return c.store(ctx, req, vec, hasEmbedding)
}

// AddPlaces bulk-loads places. Names already in the catalog, or repeated
// within reqs, are skipped. Returned ids are those actually created.
func (c *PlaceCatalog) AddPlaces(ctx context.Context, reqs []request_models.CreatePlaceRequest) ([]uuid.UUID, error) {
	pending := make([]request_models.CreatePlaceRequest, 0, len(reqs))
	seen := make(map[string]struct{}, len(reqs))

	for i, req := range reqs {
		if err := validation.Struct(req); err != nil {
			return nil, fmt.Errorf("%w: place %d: %v", utils.ErrInvalidInput, i, err)
		}
		req.Name = strings.TrimSpace(req.Name)

		key := strings.ToLower(req.Name)
		if _, dup := seen[key]; dup {
			c.logger.Debug().Str("name", req.Name).Msg("duplicate name in batch, skipping")
			continue
		}
		seen[key] = struct{}{}

		existing, err := c.placeRepo.GetByName(ctx, req.Name)
		if err != nil {
			c.logger.Error().Err(err).Str("name", req.Name).Msg("lookup place by name")
			return nil, utils.ErrDatabaseError
		}
		if existing != nil {
			c.logger.Debug().Str("name", req.Name).Msg("place already in catalog, skipping")
			continue
		}
		pending = append(pending, req)
	}

	var texts []string
	for _, req := range pending {
		if strings.TrimSpace(req.Description) != "" {
			texts = append(texts, req.Description)
		}
	}

	var vecs []pgvector.Vector
	if len(texts) > 0 {
		var err error
		if vecs, err = c.embed(ctx, texts); err != nil {
			return nil, err
		}
	}

	ids := make([]uuid.UUID, 0, len(pending))
	next := 0
	for _, req := range pending {
		var vec pgvector.Vector
		hasEmbedding := strings.TrimSpace(req.Description) != ""
		if hasEmbedding {
			vec = vecs[next]
			next++
		}

		id, err := c.store(ctx, req, vec, hasEmbedding)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}

	c.logger.Info().
		Int("requested", len(reqs)).
		Int("created", len(ids)).
		Int("embedded", len(texts)).
		Msg("catalog bulk load complete")
	return ids, nil
}

func (c *PlaceCatalog) GetPlace(ctx context.Context, id uuid.UUID) (*response_models.Place, error) {
	place, err := c.placeRepo.GetByID(ctx, id)
	if err != nil {
		c.logger.Error().Err(err).Str("place_id", id.String()).Msg("get place")
		return nil, utils.ErrDatabaseError
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}

	resp := toPlaceResponse(place)
	return &resp, nil
}

func (c *PlaceCatalog) AllEmbeddings(ctx context.Context) ([]index.Entry, error) {
	rows, err := c.embeddingRepo.All(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("list embeddings")
		return nil, utils.ErrDatabaseError
	}

	entries := make([]index.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, index.Entry{PlaceID: row.PlaceID, Vector: row.Embedding.Slice()})
	}
	return entries, nil
}

// LoadSeedFile reads a JSON array of places and bulk-loads it.
func (c *PlaceCatalog) LoadSeedFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}

	var reqs []request_models.CreatePlaceRequest
	if err := json.Unmarshal(data, &reqs); err != nil {
		return 0, fmt.Errorf("%w: seed file %s: %v", utils.ErrInvalidInput, path, err)
	}

	ids, err := c.AddPlaces(ctx, reqs)
	return len(ids), err
}

// embed splits texts into batches and runs them on a bounded errgroup.
// Results keep input order.
func (c *PlaceCatalog) embed(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
	out := make([]pgvector.Vector, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.EmbedConcurrency)

	for start := 0; start < len(texts); start += c.opts.EmbedBatchSize {
		end := min(start+c.opts.EmbedBatchSize, len(texts))
		g.Go(func() error {
			began := time.Now()
			vecs, err := c.embedder.GetEmbeddings(gctx, texts[start:end])
			metrics.RecordEmbedding(c.embedder.ModelName(), time.Since(began))
			if err != nil {
				return err
			}
			if len(vecs) != end-start {
				return fmt.Errorf("%w: got %d vectors for %d texts", utils.ErrEmbeddingFailed, len(vecs), end-start)
			}
			copy(out[start:end], vecs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		c.logger.Error().Err(err).Int("texts", len(texts)).Msg("embedding failed")
		return nil, err
	}

	if want := c.embedder.Dimensions(); want > 0 {
		for _, v := range out {
			if got := len(v.Slice()); got != want {
				return nil, &index.DimensionMismatchError{Expected: want, Got: got}
			}
		}
	}
	return out, nil
}

func (c *PlaceCatalog) store(ctx context.Context, req request_models.CreatePlaceRequest, vec pgvector.Vector, hasEmbedding bool) (uuid.UUID, error) {
	place := toPlaceModel(req)
	id, err := c.placeRepo.CreatePlace(ctx, place)
	if err != nil {
		if errors.Is(err, utils.ErrPlaceAlreadyExists) {
			return uuid.Nil, err
		}
		c.logger.Error().Err(err).Str("name", req.Name).Msg("create place")
		return uuid.Nil, utils.ErrDatabaseError
	}

	if hasEmbedding {
		err := c.embeddingRepo.SaveEmbedding(ctx, &db_models.PlaceEmbedding{
			PlaceID:   id,
			Embedding: vec,
			ModelName: c.embedder.ModelName(),
		})
		if err != nil {
			c.logger.Error().Err(err).Str("place_id", id.String()).Msg("save embedding")
			return uuid.Nil, utils.ErrDatabaseError
		}
	}

	c.logger.Debug().Str("place_id", id.String()).Str("name", req.Name).Bool("embedded", hasEmbedding).Msg("place added")
	return id, nil
}

func toPlaceModel(req request_models.CreatePlaceRequest) *db_models.Place {
	features := make([]string, 0, len(req.Features))
	for _, f := range req.Features {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}

	return &db_models.Place{
		Name:                 req.Name,
		Description:          req.Description,
		Category:             strings.TrimSpace(req.Category),
		Location:             req.Location,
		City:                 strings.TrimSpace(req.City),
		State:                strings.TrimSpace(req.State),
		PopularityScore:      req.PopularityScore,
		AverageRating:        req.AverageRating,
		NumReviews:           req.NumReviews,
		TypicalDurationHours: req.TypicalDurationHours,
		OpeningHours:         strings.TrimSpace(req.OpeningHours),
		PeakHours:            req.PeakHours,
		CrowdLevel:           req.CrowdLevel,
		PriceRange:           req.PriceRange,
		Features:             features,
		Tags:                 request_models.NormalizeTags(req.Tags),
	}
}

func toPlaceResponse(p *db_models.Place) response_models.Place {
	return response_models.Place{
		ID:                   p.ID.String(),
		Name:                 p.Name,
		Description:          p.Description,
		Category:             p.Category,
		City:                 p.City,
		State:                p.State,
		PopularityScore:      p.PopularityScore,
		AverageRating:        p.AverageRating,
		NumReviews:           p.NumReviews,
		TypicalDurationHours: p.TypicalDurationHours,
		OpeningHours:         p.OpeningHours,
		PeakHours:            p.PeakHours,
		CrowdLevel:           p.CrowdLevel,
		PriceRange:           p.PriceRange,
		Features:             p.Features,
		Tags:                 p.Tags,
	}
}
