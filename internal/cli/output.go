package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mmcdole/mealbook/internal/tui/styles"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by -o
const (
	FormatTable = "table"
	FormatText  = "text"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

const defaultTableWidth = 100

func validateFormat(format string, allowed ...string) error {
	for _, f := range allowed {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("unsupported output format %q (want one of %v)", format, allowed)
}

// writeStructured encodes v as JSON or YAML
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// terminalWidth returns the stdout width, or a default when not a terminal
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultTableWidth
}

// writeTable renders rows under headers with a rounded border
func writeTable(w io.Writer, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.DimStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.AccentStyle.Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	if width := terminalWidth(); width < defaultTableWidth {
		t = t.Width(width)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func favoriteMark(isFavorite bool) string {
	if isFavorite {
		return styles.FavoriteChar
	}
	return ""
}
