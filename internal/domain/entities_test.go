package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIngredientLine_String(t *testing.T) {
	tests := []struct {
		name string
		line IngredientLine
		want string
	}{
		{"measure and ingredient", IngredientLine{Ingredient: "penne rigate", Measure: "1 pound"}, "1 pound penne rigate"},
		{"no measure", IngredientLine{Ingredient: "salt"}, "salt"},
		{"blank measure", IngredientLine{Ingredient: "pepper", Measure: "  "}, "pepper"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.line.String())
		})
	}
}

func TestRecipeDetail(t *testing.T) {
	d := &RecipeDetail{
		ID:           "52771",
		Name:         "Spicy Arrabiata Penne",
		Category:     "Vegetarian",
		Area:         "Italian",
		ThumbnailURL: "https://example.com/a.jpg",
		Ingredients: []IngredientLine{
			{Ingredient: "penne rigate", Measure: "1 pound"},
			{Ingredient: "olive oil", Measure: "1/4 cup"},
		},
	}

	assert.False(t, d.HasVideo())
	d.VideoURL = "https://www.youtube.com/watch?v=1IszT_guI08"
	assert.True(t, d.HasVideo())

	assert.Equal(t, RecipeSummary{ID: "52771", Name: "Spicy Arrabiata Penne", ThumbnailURL: "https://example.com/a.jpg"}, d.Summary())
	assert.Equal(t, []string{"1 pound penne rigate", "1/4 cup olive oil"}, d.ShoppingList())
	assert.Equal(t, "Italian · Vegetarian", d.GetDescription())

	d.Area = ""
	assert.Equal(t, "Vegetarian", d.GetDescription())
	d.Category, d.Area = "", "Italian"
	assert.Equal(t, "Italian", d.GetDescription())
}

func TestRecipeDetail_EmptyShoppingList(t *testing.T) {
	d := &RecipeDetail{ID: "1"}
	assert.Empty(t, d.ShoppingList())
	assert.NotNil(t, d.ShoppingList())
}

func TestListItem(t *testing.T) {
	items := []ListItem{
		&RecipeSummary{ID: "52772", Name: "Teriyaki Chicken Casserole"},
		&RecipeDetail{ID: "52771", Name: "Spicy Arrabiata Penne", Area: "Italian", Category: "Vegetarian"},
	}

	assert.Equal(t, "52772", items[0].GetID())
	assert.Equal(t, "Teriyaki Chicken Casserole", items[0].GetTitle())
	assert.Empty(t, items[0].GetDescription())

	assert.Equal(t, "52771", items[1].GetID())
	assert.Equal(t, "Spicy Arrabiata Penne", items[1].GetTitle())
	assert.Equal(t, "Italian · Vegetarian", items[1].GetDescription())
}
