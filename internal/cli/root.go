package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/mealbook/internal/search"
	"github.com/mmcdole/mealbook/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ErrNotInteractive is returned when the TUI is started without a terminal
var ErrNotInteractive = errors.New("the browser needs an interactive terminal; try 'mealbook list'")

// globalOptions holds flags shared by every command
type globalOptions struct {
	configFile string
	version    string
}

func (o *globalOptions) bootstrap() (*App, error) {
	return Bootstrap(o.configFile, o.version)
}

// NewRootCommand creates the root command.
func NewRootCommand(version string) *cobra.Command {
	opts := &globalOptions{version: version}

	cmd := &cobra.Command{
		Use:           "mealbook",
		Short:         "mealbook - browse recipes and keep favorites",
		Long:          "mealbook is a terminal browser for an online recipe catalog with a persistent favorites list.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default ~/.config/mealbook/config.yaml)")

	// Add subcommands
	cmd.AddCommand(newListCommand(opts))
	cmd.AddCommand(newShowCommand(opts))
	cmd.AddCommand(newFavoritesCommand(opts))

	return cmd
}

func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// runTUI starts the TUI application
func runTUI(opts *globalOptions) error {
	if !isInteractive() {
		return ErrNotInteractive
	}

	app, err := opts.bootstrap()
	if err != nil {
		return err
	}
	defer app.Close()

	model := tui.NewModel(app.Recipes, app.Favorites, tui.Options{
		FilterMode: search.ParseMode(string(app.Config.UI.FilterMode)),
		Opener:     app.Launcher,
		Clipboard:  clipboard.WriteAll,
		Logger:     app.Logger,
	})
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())

	app.Logger.Info("starting TUI")
	if _, err := p.Run(); err != nil {
		app.Logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
