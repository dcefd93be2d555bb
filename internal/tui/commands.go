package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/mealbook/internal/domain"
	"github.com/mmcdole/mealbook/internal/recipes"
)

// Command factories for async operations

const (
	loadTimeout    = 30 * time.Second
	resolveTimeout = 60 * time.Second // one lookup per favorite
)

// LoadRecipesCmd fetches the full catalog listing
func LoadRecipesCmd(svc *recipes.Service, token uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		list, err := svc.ListRecipes(ctx, "")
		return RecipesLoadedMsg{Token: token, Recipes: list, Err: err}
	}
}

// LoadRecipeDetailCmd fetches a single recipe
func LoadRecipeDetailCmd(svc *recipes.Service, token uint64, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		detail, err := svc.GetRecipeDetail(ctx, id)
		return RecipeDetailLoadedMsg{Token: token, ID: id, Detail: detail, Err: err}
	}
}

// ResolveFavoritesCmd resolves a favorites snapshot to recipe details
func ResolveFavoritesCmd(svc *recipes.Service, token uint64, ids []string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), resolveTimeout)
		defer cancel()

		details, err := svc.ResolveFavorites(ctx, ids)
		return FavoritesResolvedMsg{Token: token, Recipes: details, Err: err}
	}
}

// ToggleFavoriteCmd flips membership of a recipe in the favorites store
func ToggleFavoriteCmd(store FavoritesStore, id, name string) tea.Cmd {
	return func() tea.Msg {
		isFav, err := store.Toggle(id)
		return FavoriteToggledMsg{ID: id, Name: name, IsFavorite: isFav, Err: err}
	}
}

// OpenLinkCmd launches link with the configured opener
func OpenLinkCmd(opener LinkOpener, link string) tea.Cmd {
	return func() tea.Msg {
		return LinkOpenedMsg{URL: link, Err: opener.Open(link)}
	}
}

// CopyShoppingListCmd writes the recipe's ingredient lines to the clipboard
func CopyShoppingListCmd(write ClipboardWriter, d *domain.RecipeDetail) tea.Cmd {
	lines := d.ShoppingList()
	return func() tea.Msg {
		err := write(strings.Join(lines, "\n"))
		return ShoppingListCopiedMsg{Lines: len(lines), Err: err}
	}
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration, seq int) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}
