package tui

import (
	"github.com/mmcdole/mealbook/internal/domain"
)

// Message types for the TUI.
// Load results carry the request token of the screen that asked for them;
// a result whose token no longer matches the active screen is dropped.

// RecipesLoadedMsg carries the catalog listing
type RecipesLoadedMsg struct {
	Token   uint64
	Recipes []domain.RecipeSummary
	Err     error
}

// RecipeDetailLoadedMsg carries one recipe
type RecipeDetailLoadedMsg struct {
	Token  uint64
	ID     string
	Detail *domain.RecipeDetail
	Err    error
}

// FavoritesResolvedMsg carries every favorite resolved to its detail
type FavoritesResolvedMsg struct {
	Token   uint64
	Recipes []*domain.RecipeDetail
	Err     error
}

// FavoriteToggledMsg reports the outcome of a toggle
type FavoriteToggledMsg struct {
	ID         string
	Name       string
	IsFavorite bool
	Err        error
}

// FavoritesChangedMsg delivers a new favorites snapshot from the store
type FavoritesChangedMsg struct {
	IDs []string
}

// LinkOpenedMsg reports the outcome of launching a video link
type LinkOpenedMsg struct {
	URL string
	Err error
}

// ShoppingListCopiedMsg reports the outcome of a clipboard copy
type ShoppingListCopiedMsg struct {
	Lines int
	Err   error
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct {
	Seq int
}
