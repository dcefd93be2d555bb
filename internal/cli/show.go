package cli

import (
	"fmt"

	"github.com/mmcdole/mealbook/internal/domain"
	"github.com/mmcdole/mealbook/internal/tui/components"
	"github.com/spf13/cobra"
)

// detailRow is a recipe as written by -o json|yaml
type detailRow struct {
	domain.RecipeDetail `json:",inline" yaml:",inline"`
	Favorite            bool `json:"favorite" yaml:"favorite"`
}

func newShowCommand(g *globalOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show a single recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, g, args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", FormatText, "Output format: text, json, yaml")

	return cmd
}

func runShow(cmd *cobra.Command, g *globalOptions, id, output string) error {
	if err := validateFormat(output, FormatText, FormatJSON, FormatYAML); err != nil {
		return err
	}

	app, err := g.bootstrap()
	if err != nil {
		return err
	}
	defer app.Close()

	d, err := app.Recipes.GetRecipeDetail(cmd.Context(), id)
	if err != nil {
		return err
	}
	isFav := app.Favorites.IsFavorite(d.ID)

	out := cmd.OutOrStdout()
	if output != FormatText {
		return writeStructured(out, output, detailRow{RecipeDetail: *d, Favorite: isFav})
	}
	_, err = fmt.Fprint(out, components.RenderRecipe(d, isFav, terminalWidth()))
	return err
}
