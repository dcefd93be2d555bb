package components

import (
	"testing"

	"github.com/mmcdole/mealbook/internal/domain"
	"github.com/mmcdole/mealbook/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeList_RendersDetailDescriptions(t *testing.T) {
	list := NewRecipeList("Favorites", search.ModeContains)
	list.SetSize(80, 20)
	list.SetDetails([]*domain.RecipeDetail{
		{ID: "52771", Name: "Spicy Arrabiata Penne", Area: "Italian", Category: "Vegetarian"},
		{ID: "52772", Name: "Teriyaki Chicken Casserole", Area: "Japanese", Category: "Chicken"},
	})
	list.SetFavorites([]string{"52772"})

	view := list.View()
	assert.Contains(t, view, "Spicy Arrabiata Penne")
	assert.Contains(t, view, "Italian · Vegetarian")
	assert.Contains(t, view, "Japanese · Chicken")

	r, ok := list.SelectedRecipe()
	require.True(t, ok)
	assert.Equal(t, "52771", r.ID)
}

func TestRecipeList_SummariesHaveNoDescription(t *testing.T) {
	list := NewRecipeList("Recipes", search.ModeContains)
	list.SetSize(80, 20)
	list.SetRecipes([]domain.RecipeSummary{{ID: "52773", Name: "Honey Teriyaki Salmon"}})

	view := list.View()
	assert.Contains(t, view, "Honey Teriyaki Salmon")
	assert.NotContains(t, view, "·")
	assert.Equal(t, 1, list.ItemCount())
}

func TestHighlightName_MultiByte(t *testing.T) {
	parts := highlightName("Crème Brûlée", []int{7, 11})

	var highlighted []string
	text := ""
	for _, p := range parts {
		text += p.Text
		if p.Foreground != nil {
			highlighted = append(highlighted, p.Text)
		}
	}
	assert.Equal(t, "Crème Brûlée", text)
	assert.Equal(t, []string{"B", "l"}, highlighted)
}

func TestHighlightName_NoMatches(t *testing.T) {
	parts := highlightName("Crème Brûlée", nil)
	require.Len(t, parts, 1)
	assert.Equal(t, "Crème Brûlée", parts[0].Text)
}
