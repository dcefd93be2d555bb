package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmcdole/mealbook/internal/adapter"
	"github.com/mmcdole/mealbook/internal/adapter/catalog"
	"github.com/mmcdole/mealbook/internal/domain"
	"github.com/mmcdole/mealbook/internal/favorites"
	"github.com/mmcdole/mealbook/internal/recipes"
	"github.com/mmcdole/mealbook/internal/store"
)

// App holds the wired services shared by every command
type App struct {
	Config    *adapter.Config
	Logger    *slog.Logger
	Store     domain.KeyValueStore
	Favorites *favorites.Service
	Recipes   *recipes.Service
	Launcher  *adapter.Launcher

	closeLog func() error
}

// Bootstrap loads configuration and wires storage, favorites, and the catalog.
// Favorites are loaded before returning so every command can toggle.
func Bootstrap(configFile, version string) (*App, error) {
	cfg, err := adapter.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, closeLog, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
		closeLog = func() error { return nil }
	}
	slog.SetDefault(logger)
	logger.Info("starting mealbook", "version", version, "storage", cfg.Storage.Driver)

	app := &App{Config: cfg, Logger: logger, closeLog: closeLog}

	client, err := catalog.NewClient(&cfg.Catalog, logger)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to create catalog client: %w", err)
	}
	app.Recipes = recipes.NewService(client, cfg.Catalog.MaxConcurrentLookups, logger)

	// Partitioned by catalog URL; ids are catalog-specific
	kv, err := store.Open(cfg.Storage, cfg.Catalog.BaseURL)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to open favorites storage: %w", err)
	}
	app.Store = kv

	app.Favorites = favorites.NewService(kv, logger)
	if _, err := app.Favorites.Load(); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	logger.Info("favorites ready", "state", app.Favorites.State(), "count", app.Favorites.Count())

	app.Launcher = adapter.NewLauncher(cfg.Opener, logger)
	return app, nil
}

// Close releases the store and the log file
func (a *App) Close() error {
	var errs []error
	if a.Store != nil {
		errs = append(errs, a.Store.Close())
	}
	if a.closeLog != nil {
		a.Logger.Info("shutting down")
		errs = append(errs, a.closeLog())
	}
	return errors.Join(errs...)
}
