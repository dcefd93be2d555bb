package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/mealbook/internal/domain"
	sfuzzy "github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
)

// Mode selects how a query is matched against recipe names
type Mode string

const (
	ModeContains   Mode = "contains"   // case-folded substring, catalog order
	ModeFuzzy      Mode = "fuzzy"      // subsequence match ranked by score
	ModeNormalized Mode = "normalized" // accent-insensitive, ranked by distance
)

// Result is one filtered recipe with match metadata for highlighting
type Result struct {
	Item           domain.RecipeSummary
	Index          int   // Position in the unfiltered slice
	MatchedIndexes []int // Byte offsets in Item.Name that matched (fuzzy mode only)
}

// nameIndex implements sahilm/fuzzy.Source over recipe names. Matching folds
// case itself, so names are passed through untouched to keep offsets valid.
type nameIndex []domain.RecipeSummary

func (n nameIndex) String(i int) string { return n[i].Name }
func (n nameIndex) Len() int            { return len(n) }

// Filter returns the recipes whose name matches query.
// An empty or blank query keeps every recipe in order.
func Filter(items []domain.RecipeSummary, query string, mode Mode) []Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return all(items)
	}

	switch mode {
	case ModeFuzzy:
		return filterFuzzy(items, query)
	case ModeNormalized:
		return filterNormalized(items, query)
	default:
		return filterContains(items, query)
	}
}

func all(items []domain.RecipeSummary) []Result {
	out := make([]Result, len(items))
	for i, item := range items {
		out[i] = Result{Item: item, Index: i}
	}
	return out
}

func filterContains(items []domain.RecipeSummary, query string) []Result {
	folder := cases.Fold() // Casers are stateful, one per call
	needle := folder.String(query)
	out := []Result{}
	for i, item := range items {
		if strings.Contains(folder.String(item.Name), needle) {
			out = append(out, Result{Item: item, Index: i})
		}
	}
	return out
}

func filterFuzzy(items []domain.RecipeSummary, query string) []Result {
	matches := sfuzzy.FindFrom(query, nameIndex(items))
	out := make([]Result, len(matches))
	for i, m := range matches {
		out[i] = Result{Item: items[m.Index], Index: m.Index, MatchedIndexes: m.MatchedIndexes}
	}
	return out
}

func filterNormalized(items []domain.RecipeSummary, query string) []Result {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	out := make([]Result, len(ranks))
	for i, r := range ranks {
		out[i] = Result{Item: items[r.OriginalIndex], Index: r.OriginalIndex}
	}
	return out
}

// ParseMode maps a configured mode name, falling back to ModeContains
func ParseMode(s string) Mode {
	switch Mode(strings.ToLower(s)) {
	case ModeFuzzy:
		return ModeFuzzy
	case ModeNormalized:
		return ModeNormalized
	default:
		return ModeContains
	}
}
