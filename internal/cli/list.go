package cli

import (
	"fmt"

	"github.com/mmcdole/mealbook/internal/domain"
	"github.com/mmcdole/mealbook/internal/search"
	"github.com/spf13/cobra"
)

// ListOptions holds options for the list command.
type ListOptions struct {
	Filter string
	Output string
}

// recipeRow is a listing entry as written by -o json|yaml
type recipeRow struct {
	domain.RecipeSummary `json:",inline" yaml:",inline"`
	Favorite             bool `json:"favorite" yaml:"favorite"`
}

func newListCommand(g *globalOptions) *cobra.Command {
	opts := &ListOptions{}

	cmd := &cobra.Command{
		Use:   "list [query]",
		Short: "List recipes whose name matches query",
		Long:  "List catalog recipes. Without a query the full catalog is listed; --filter narrows the result locally.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return runList(cmd, g, query, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "Filter names client-side using the configured filter mode")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", FormatTable, "Output format: table, json, yaml")

	return cmd
}

func runList(cmd *cobra.Command, g *globalOptions, query string, opts *ListOptions) error {
	if err := validateFormat(opts.Output, FormatTable, FormatJSON, FormatYAML); err != nil {
		return err
	}

	app, err := g.bootstrap()
	if err != nil {
		return err
	}
	defer app.Close()

	list, err := app.Recipes.ListRecipes(cmd.Context(), query)
	if err != nil {
		return err
	}

	if opts.Filter != "" {
		results := search.Filter(list, opts.Filter, search.ParseMode(string(app.Config.UI.FilterMode)))
		list = make([]domain.RecipeSummary, len(results))
		for i, r := range results {
			list[i] = r.Item
		}
	}

	rows := make([]recipeRow, len(list))
	for i, r := range list {
		rows[i] = recipeRow{RecipeSummary: r, Favorite: app.Favorites.IsFavorite(r.ID)}
	}

	out := cmd.OutOrStdout()
	if opts.Output != FormatTable {
		return writeStructured(out, opts.Output, rows)
	}

	if len(rows) == 0 {
		_, err := fmt.Fprintln(out, "No recipes found.")
		return err
	}
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{favoriteMark(r.Favorite), r.ID, r.Name}
	}
	return writeTable(out, []string{"", "ID", "NAME"}, cells)
}
