package mealdb

import (
	"strings"

	"github.com/mmcdole/mealbook/internal/domain"
)

// MapSummaries converts catalog meals to listing summaries
func MapSummaries(meals []Meal) []domain.RecipeSummary {
	summaries := make([]domain.RecipeSummary, 0, len(meals))
	for _, m := range meals {
		summaries = append(summaries, domain.RecipeSummary{
			ID:           m.ID,
			Name:         m.Name,
			ThumbnailURL: m.Thumbnail,
		})
	}
	return summaries
}

// MapDetail converts a catalog meal to a full recipe detail
func MapDetail(m Meal) *domain.RecipeDetail {
	return &domain.RecipeDetail{
		ID:           m.ID,
		Name:         m.Name,
		Category:     strings.TrimSpace(m.Category),
		Area:         strings.TrimSpace(m.Area),
		Tags:         splitTags(m.Tags),
		Instructions: strings.TrimSpace(m.Instructions),
		ThumbnailURL: m.Thumbnail,
		VideoURL:     strings.TrimSpace(m.Youtube),
		SourceURL:    strings.TrimSpace(m.Source),
		Ingredients:  MapIngredients(m),
	}
}

// MapIngredients walks the indexed ingredient slots in order, dropping slots
// whose ingredient is blank. A measure without an ingredient is ignored.
func MapIngredients(m Meal) []domain.IngredientLine {
	var lines []domain.IngredientLine
	for _, col := range ingredientColumns {
		ingredient := strings.TrimSpace(m.Fields[col.Ingredient])
		if ingredient == "" {
			continue
		}
		lines = append(lines, domain.IngredientLine{
			Ingredient: ingredient,
			Measure:    strings.TrimSpace(m.Fields[col.Measure]),
		})
	}
	return lines
}

// splitTags parses the catalog's comma separated tag list
func splitTags(tags string) []string {
	var out []string
	for _, tag := range strings.Split(tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
