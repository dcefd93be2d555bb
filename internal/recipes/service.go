package recipes

import (
	"context"
	"log/slog"

	"github.com/mmcdole/mealbook/internal/domain"
	"golang.org/x/sync/errgroup"
)

const defaultMaxConcurrentLookups = 8

// Service orchestrates catalog reads for the views.
// Nothing is cached: every call is a fresh round trip.
type Service struct {
	client        domain.CatalogClient
	logger        *slog.Logger
	maxConcurrent int
}

// NewService creates a new recipe service.
// maxConcurrent bounds the favorites lookup fan-out; <= 0 uses the default.
func NewService(client domain.CatalogClient, maxConcurrent int, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrentLookups
	}
	return &Service{client: client, logger: logger, maxConcurrent: maxConcurrent}
}

// ListRecipes returns catalog entries matching query ("" = full catalog).
func (s *Service) ListRecipes(ctx context.Context, query string) ([]domain.RecipeSummary, error) {
	recipes, err := s.client.Search(ctx, query)
	if err != nil {
		s.logger.Error("failed to list recipes", "query", query, "error", err)
		return nil, err
	}
	s.logger.Debug("listed recipes", "query", query, "count", len(recipes))
	return recipes, nil
}

// GetRecipeDetail returns one recipe or an error wrapping domain.ErrRecipeNotFound.
func (s *Service) GetRecipeDetail(ctx context.Context, id string) (*domain.RecipeDetail, error) {
	if id == "" {
		return nil, domain.ErrInvalidRecipeID
	}
	detail, err := s.client.Lookup(ctx, id)
	if err != nil {
		s.logger.Error("failed to fetch recipe", "id", id, "error", err)
		return nil, err
	}
	s.logger.Debug("fetched recipe", "id", id, "ingredients", len(detail.Ingredients))
	return detail, nil
}

// ResolveFavorites looks up every id concurrently and returns the details in
// the order of ids. The batch fails as a whole if any single lookup fails,
// including a favorite the catalog no longer knows.
func (s *Service) ResolveFavorites(ctx context.Context, ids []string) ([]*domain.RecipeDetail, error) {
	details := make([]*domain.RecipeDetail, len(ids))
	if len(ids) == 0 {
		return details, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for i, id := range ids {
		g.Go(func() error {
			detail, err := s.client.Lookup(ctx, id)
			if err != nil {
				return &LookupError{ID: id, Err: err}
			}
			details[i] = detail
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("failed to resolve favorites", "count", len(ids), "error", err)
		return nil, err
	}

	s.logger.Debug("resolved favorites", "count", len(details))
	return details, nil
}

// LookupError identifies which favorite failed to resolve
type LookupError struct {
	ID  string
	Err error
}

func (e *LookupError) Error() string {
	return "recipe " + e.ID + ": " + e.Err.Error()
}

func (e *LookupError) Unwrap() error { return e.Err }
