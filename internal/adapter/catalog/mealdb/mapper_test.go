package mealdb

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/mmcdole/mealbook/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeMeal(t *testing.T, body string) Meal {
	t.Helper()
	var resp MealsResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.Len(t, resp.Meals, 1)
	return resp.Meals[0]
}

func TestIngredientColumns(t *testing.T) {
	require.Len(t, ingredientColumns, domain.MaxIngredientFields)
	assert.Equal(t, ingredientColumn{"strIngredient1", "strMeasure1"}, ingredientColumns[0])
	assert.Equal(t, ingredientColumn{"strIngredient20", "strMeasure20"}, ingredientColumns[19])
}

func TestMapDetail(t *testing.T) {
	d := MapDetail(decodeMeal(t, arrabiataJSON))

	assert.Equal(t, "52771", d.ID)
	assert.Equal(t, "Spicy Arrabiata Penne", d.Name)
	assert.Equal(t, "Vegetarian", d.Category)
	assert.Equal(t, "Italian", d.Area)
	assert.Equal(t, []string{"Pasta", "Curry"}, d.Tags)
	assert.Equal(t, "https://www.youtube.com/watch?v=1IszT_guI08", d.VideoURL)
	assert.True(t, d.HasVideo())
	assert.Empty(t, d.SourceURL)

	// blank, empty and null ingredients are dropped, order preserved
	assert.Equal(t, []domain.IngredientLine{
		{Ingredient: "penne rigate", Measure: "1 pound"},
		{Ingredient: "olive oil", Measure: "1/4 cup"},
		{Ingredient: "garlic", Measure: "3 cloves"},
		{Ingredient: "chopped tomatoes", Measure: "1 tin"},
		{Ingredient: "Parmigiano-Reggiano", Measure: ""},
	}, d.Ingredients)

	assert.Equal(t, []string{
		"1 pound penne rigate",
		"1/4 cup olive oil",
		"3 cloves garlic",
		"1 tin chopped tomatoes",
		"Parmigiano-Reggiano",
	}, d.ShoppingList())
}

func TestMapDetail_IgnoresSlotsPastTwenty(t *testing.T) {
	fields := []string{`"idMeal":"1"`, `"strMeal":"Everything Stew"`}
	for i := 1; i <= domain.MaxIngredientFields+1; i++ {
		fields = append(fields,
			fmt.Sprintf(`"strIngredient%d":"item %d"`, i, i),
			fmt.Sprintf(`"strMeasure%d":"%d g"`, i, i))
	}
	m := decodeMeal(t, `{"meals":[{`+strings.Join(fields, ",")+`}]}`)
	assert.NotContains(t, m.Fields, "strIngredient21")

	d := MapDetail(m)
	require.Len(t, d.Ingredients, domain.MaxIngredientFields)
	assert.Equal(t, domain.IngredientLine{Ingredient: "item 1", Measure: "1 g"}, d.Ingredients[0])
	assert.Equal(t, domain.IngredientLine{Ingredient: "item 20", Measure: "20 g"}, d.Ingredients[19])
	assert.NotContains(t, d.ShoppingList(), "21 g item 21")
}

func TestMapDetail_NoVideoNoTags(t *testing.T) {
	d := MapDetail(decodeMeal(t, `{"meals":[{"idMeal":"1","strMeal":"Toast","strYoutube":"","strTags":null}]}`))

	assert.False(t, d.HasVideo())
	assert.Nil(t, d.Tags)
	assert.Nil(t, d.Ingredients)
}

func TestMeal_NumericID(t *testing.T) {
	m := decodeMeal(t, `{"meals":[{"idMeal":52772,"strMeal":"Teriyaki"}]}`)
	assert.Equal(t, "52772", m.ID)
}

func TestMapSummaries(t *testing.T) {
	var resp MealsResponse
	require.NoError(t, json.Unmarshal([]byte(searchJSON), &resp))

	got := MapSummaries(resp.Meals)
	require.Len(t, got, 3)
	assert.Equal(t, domain.RecipeSummary{
		ID:           "52772",
		Name:         "Teriyaki Chicken Casserole",
		ThumbnailURL: "https://img/52772.jpg",
	}, got[1])

	assert.Empty(t, MapSummaries(nil))
}
