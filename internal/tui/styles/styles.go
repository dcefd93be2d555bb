package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	Saffron    = lipgloss.Color("#E5A00D")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
)

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Saffron)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Saffron)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	SectionStyle = lipgloss.NewStyle().
			Foreground(Saffron).
			Bold(true).
			MarginTop(1)
)

// Favorite marker characters (unstyled)
const (
	FavoriteChar    = "★"
	NotFavoriteChar = " "
)

// FavoriteStar is the pre-rendered favorite marker
var FavoriteStar = lipgloss.NewStyle().Foreground(Saffron).Render(FavoriteChar)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Saffron)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

var SpinnerStyle = lipgloss.NewStyle().Foreground(Saffron)

// Filter styles
var (
	FilterStyle = lipgloss.NewStyle().
			Foreground(Saffron)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(Saffron).
				Bold(true)
)

// Match highlight styles for fuzzy filter results
var (
	MatchHighlightStyle = lipgloss.NewStyle().
				Foreground(Saffron).
				Bold(true)

	MatchHighlightSelectedStyle = lipgloss.NewStyle().
					Foreground(Saffron).
					Background(SlateLight).
					Bold(true)
)

// Truncate shortens s to width cells, ending with an ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width <= 3 {
		return string(runes[:min(width, len(runes))])
	}
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

// RowPart is a piece of a list row with an optional foreground color
type RowPart struct {
	Text       string
	Foreground *lipgloss.Color
}

// RenderListRow renders a list row with a uniform background when selected.
// Each part is styled separately so ANSI resets don't break the background.
func RenderListRow(parts []RowPart, selected bool, width int) string {
	var b strings.Builder
	visibleLen := 0

	for _, part := range parts {
		style := lipgloss.NewStyle()
		switch {
		case part.Foreground != nil:
			style = style.Foreground(*part.Foreground)
		case selected:
			style = style.Foreground(White)
		default:
			style = style.Foreground(LightGray)
		}
		if selected {
			style = style.Background(SlateLight)
		}
		b.WriteString(style.Render(part.Text))
		visibleLen += lipgloss.Width(part.Text)
	}

	pad := lipgloss.NewStyle()
	if selected {
		pad = pad.Background(SlateLight)
	}
	// 2 = left/right margin
	if fill := width - visibleLen - 2; fill > 0 {
		b.WriteString(pad.Render(strings.Repeat(" ", fill)))
	}

	margin := pad.Render(" ")
	return margin + b.String() + margin
}

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Saffron).
			Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true).
			MarginBottom(1)
)
