package mealdb

import (
	"encoding/json"
	"strconv"

	"github.com/mmcdole/mealbook/internal/domain"
)

// MealsResponse is the envelope of both search.php and lookup.php.
// The catalog reports "no results" as {"meals": null}.
type MealsResponse struct {
	Meals []Meal `json:"meals"`
}

// Meal is a single catalog entry. The indexed ingredient/measure columns are
// kept in Fields and read back through the ingredientColumns table.
type Meal struct {
	ID           string `json:"idMeal"`
	Name         string `json:"strMeal"`
	Category     string `json:"strCategory"`
	Area         string `json:"strArea"`
	Instructions string `json:"strInstructions"`
	Thumbnail    string `json:"strMealThumb"`
	Tags         string `json:"strTags"` // comma separated
	Youtube      string `json:"strYoutube"`
	Source       string `json:"strSource"`

	Fields map[string]string `json:"-"`
}

// ingredientColumn names the catalog keys of one ingredient/measure slot
type ingredientColumn struct {
	Ingredient string
	Measure    string
}

// ingredientColumns lists the schema's indexed slots in order
var ingredientColumns = func() []ingredientColumn {
	cols := make([]ingredientColumn, domain.MaxIngredientFields)
	for i := range cols {
		n := strconv.Itoa(i + 1)
		cols[i] = ingredientColumn{Ingredient: "strIngredient" + n, Measure: "strMeasure" + n}
	}
	return cols
}()

// UnmarshalJSON decodes the fixed fields and captures the indexed columns.
// Null or non-string column values are treated as blank.
func (m *Meal) UnmarshalJSON(data []byte) error {
	var p struct {
		ID           json.RawMessage `json:"idMeal"`
		Name         *string         `json:"strMeal"`
		Category     *string         `json:"strCategory"`
		Area         *string         `json:"strArea"`
		Instructions *string         `json:"strInstructions"`
		Thumbnail    *string         `json:"strMealThumb"`
		Tags         *string         `json:"strTags"`
		Youtube      *string         `json:"strYoutube"`
		Source       *string         `json:"strSource"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*m = Meal{
		ID:           rawString(p.ID),
		Name:         deref(p.Name),
		Category:     deref(p.Category),
		Area:         deref(p.Area),
		Instructions: deref(p.Instructions),
		Thumbnail:    deref(p.Thumbnail),
		Tags:         deref(p.Tags),
		Youtube:      deref(p.Youtube),
		Source:       deref(p.Source),
		Fields:       make(map[string]string, 2*len(ingredientColumns)),
	}

	for _, col := range ingredientColumns {
		if v := rawString(raw[col.Ingredient]); v != "" {
			m.Fields[col.Ingredient] = v
		}
		if v := rawString(raw[col.Measure]); v != "" {
			m.Fields[col.Measure] = v
		}
	}
	return nil
}

// rawString decodes a JSON string or number, returning "" for anything else
func rawString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
