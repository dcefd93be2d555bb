package domain

import "strings"

// MaxIngredientFields is the number of indexed ingredient/measure slots the
// catalog schema exposes per recipe (strIngredient1..20, strMeasure1..20).
const MaxIngredientFields = 20

// RecipeSummary is the lightweight listing representation of a recipe
type RecipeSummary struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	ThumbnailURL string `json:"thumbnail" yaml:"thumbnail"`
}

// RecipeDetail is the full representation of a single recipe
type RecipeDetail struct {
	ID           string           `json:"id" yaml:"id"`
	Name         string           `json:"name" yaml:"name"`
	Category     string           `json:"category,omitempty" yaml:"category,omitempty"`
	Area         string           `json:"area,omitempty" yaml:"area,omitempty"`
	Tags         []string         `json:"tags,omitempty" yaml:"tags,omitempty"`
	Instructions string           `json:"instructions" yaml:"instructions"`
	ThumbnailURL string           `json:"thumbnail" yaml:"thumbnail"`
	VideoURL     string           `json:"video,omitempty" yaml:"video,omitempty"` // Optional
	SourceURL    string           `json:"source,omitempty" yaml:"source,omitempty"`
	Ingredients  []IngredientLine `json:"ingredients" yaml:"ingredients"`
}

// IngredientLine pairs an ingredient with its measure, in catalog order
type IngredientLine struct {
	Ingredient string `json:"ingredient" yaml:"ingredient"`
	Measure    string `json:"measure,omitempty" yaml:"measure,omitempty"`
}

// String renders the line as "<measure> <ingredient>"
func (l IngredientLine) String() string {
	return strings.TrimSpace(l.Measure + " " + l.Ingredient)
}

// HasVideo reports whether the catalog supplied a video link
func (d *RecipeDetail) HasVideo() bool {
	return d.VideoURL != ""
}

// Summary projects the detail down to its listing representation
func (d *RecipeDetail) Summary() RecipeSummary {
	return RecipeSummary{ID: d.ID, Name: d.Name, ThumbnailURL: d.ThumbnailURL}
}

// ShoppingList returns one rendered line per ingredient
func (d *RecipeDetail) ShoppingList() []string {
	lines := make([]string, len(d.Ingredients))
	for i, ing := range d.Ingredients {
		lines[i] = ing.String()
	}
	return lines
}

var (
	_ ListItem = (*RecipeSummary)(nil)
	_ ListItem = (*RecipeDetail)(nil)
)

// ListItem implementation for RecipeSummary

func (r *RecipeSummary) GetID() string          { return r.ID }
func (r *RecipeSummary) GetTitle() string       { return r.Name }
func (r *RecipeSummary) GetDescription() string { return "" }

// ListItem implementation for RecipeDetail

func (d *RecipeDetail) GetID() string    { return d.ID }
func (d *RecipeDetail) GetTitle() string { return d.Name }

func (d *RecipeDetail) GetDescription() string {
	switch {
	case d.Category != "" && d.Area != "":
		return d.Area + " · " + d.Category
	case d.Category != "":
		return d.Category
	default:
		return d.Area
	}
}
