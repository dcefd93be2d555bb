package domain

import "context"

// CatalogClient provides the two read operations of the remote recipe catalog.
// Every call is a fresh round trip; implementations do not cache.
type CatalogClient interface {
	// Search returns recipes matching the text query. An empty query returns
	// the full catalog; no matches yields an empty slice, not an error.
	Search(ctx context.Context, query string) ([]RecipeSummary, error)

	// Lookup returns a single recipe's full detail, or ErrRecipeNotFound.
	Lookup(ctx context.Context, id string) (*RecipeDetail, error)
}
