package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newFavoritesCommand(g *globalOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "List favorite recipes",
		Long:    "Resolve every favorite against the catalog. Fails if any favorite cannot be fetched.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFavorites(cmd, g, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", FormatTable, "Output format: table, json, yaml")

	cmd.AddCommand(newFavoriteIDsCommand(g))
	cmd.AddCommand(newFavoriteToggleCommand(g))
	cmd.AddCommand(newFavoriteClearCommand(g))

	return cmd
}

func runFavorites(cmd *cobra.Command, g *globalOptions, output string) error {
	if err := validateFormat(output, FormatTable, FormatJSON, FormatYAML); err != nil {
		return err
	}

	app, err := g.bootstrap()
	if err != nil {
		return err
	}
	defer app.Close()

	details, err := app.Recipes.ResolveFavorites(cmd.Context(), app.Favorites.IDs())
	if err != nil {
		return fmt.Errorf("failed to load favorites: %w", err)
	}

	out := cmd.OutOrStdout()
	if output != FormatTable {
		rows := make([]detailRow, len(details))
		for i, d := range details {
			rows[i] = detailRow{RecipeDetail: *d, Favorite: true}
		}
		return writeStructured(out, output, rows)
	}

	if len(details) == 0 {
		_, err := fmt.Fprintln(out, "No favorite recipes yet.")
		return err
	}
	cells := make([][]string, len(details))
	for i, d := range details {
		cells[i] = []string{d.ID, d.Name, d.Area, d.Category}
	}
	return writeTable(out, []string{"ID", "NAME", "AREA", "CATEGORY"}, cells)
}

func newFavoriteIDsCommand(g *globalOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "ids",
		Short: "Print favorite recipe ids in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(output, FormatText, FormatJSON, FormatYAML); err != nil {
				return err
			}

			app, err := g.bootstrap()
			if err != nil {
				return err
			}
			defer app.Close()

			ids := app.Favorites.IDs()
			out := cmd.OutOrStdout()
			if output != FormatText {
				return writeStructured(out, output, ids)
			}
			if len(ids) == 0 {
				return nil
			}
			_, err = fmt.Fprintln(out, strings.Join(ids, "\n"))
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", FormatText, "Output format: text, json, yaml")

	return cmd
}

func newFavoriteToggleCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle ID",
		Short: "Add a recipe to favorites, or remove it if present",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := g.bootstrap()
			if err != nil {
				return err
			}
			defer app.Close()

			id := args[0]
			isFav, err := app.Favorites.Toggle(id)
			if err != nil {
				return err
			}

			verb := "Removed"
			if isFav {
				verb = "Added"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d favorites)\n", verb, id, app.Favorites.Count())
			return err
		},
	}
}

func newFavoriteClearCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every favorite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := g.bootstrap()
			if err != nil {
				return err
			}
			defer app.Close()

			n, err := app.Favorites.Clear()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d favorites\n", n)
			return err
		},
	}
}
