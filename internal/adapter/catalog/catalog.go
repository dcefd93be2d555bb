package catalog

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mmcdole/mealbook/internal/adapter"
	"github.com/mmcdole/mealbook/internal/adapter/catalog/mealdb"
	"github.com/mmcdole/mealbook/internal/domain"
)

// NewClient creates a CatalogClient for the configured provider.
func NewClient(cfg *adapter.CatalogConfig, logger *slog.Logger) (domain.CatalogClient, error) {
	if cfg == nil {
		return nil, fmt.Errorf("catalog config is nil")
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("catalog base URL is required")
	}

	switch cfg.Provider {
	case adapter.CatalogProviderMealDB, "":
		httpClient := &http.Client{Timeout: cfg.Timeout}
		return mealdb.NewClient(cfg.BaseURL, logger, mealdb.WithHTTPClient(httpClient)), nil

	default:
		return nil, fmt.Errorf("unknown catalog provider: %s", cfg.Provider)
	}
}
