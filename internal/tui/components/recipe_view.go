package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/mealbook/internal/domain"
	"github.com/mmcdole/mealbook/internal/tui/styles"
)

// NotFoundMessage is shown when the catalog has no entry for the id
const NotFoundMessage = "Recipe not found."

// RecipeView renders a single recipe in a scrollable viewport
type RecipeView struct {
	viewport viewport.Model
	detail   *domain.RecipeDetail
	favorite bool

	width  int
	height int

	loading bool
	errMsg  string
}

func NewRecipeView() *RecipeView {
	vp := viewport.New(0, 0)
	// "f" and "y" are recipe actions here
	vp.KeyMap.PageDown = key.NewBinding(key.WithKeys("pgdown", " "))
	return &RecipeView{viewport: vp, loading: true}
}

// Update scrolls the viewport
func (v *RecipeView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return cmd
}

func (v *RecipeView) SetSize(width, height int) {
	v.width = width
	v.height = height
	frameW, frameH := styles.ActiveBorder.GetFrameSize()
	v.viewport.Width = max(width-frameW, 0)
	v.viewport.Height = max(height-frameH, 0)
	v.refresh()
}

func (v *RecipeView) SetLoading(loading bool) {
	v.loading = loading
	if loading {
		v.errMsg = ""
	}
}

func (v *RecipeView) IsLoading() bool { return v.loading }

// SetDetail shows a loaded recipe
func (v *RecipeView) SetDetail(d *domain.RecipeDetail) {
	v.loading = false
	v.errMsg = ""
	v.detail = d
	v.refresh()
	v.viewport.GotoTop()
}

// SetError replaces the recipe with a failure message
func (v *RecipeView) SetError(msg string) {
	v.loading = false
	v.detail = nil
	v.errMsg = msg
	v.refresh()
}

func (v *RecipeView) Error() string { return v.errMsg }

// Detail returns the loaded recipe, nil while loading or on failure
func (v *RecipeView) Detail() *domain.RecipeDetail { return v.detail }

// SetFavorite updates the star next to the title
func (v *RecipeView) SetFavorite(favorite bool) {
	if v.favorite == favorite {
		return
	}
	v.favorite = favorite
	v.refresh()
}

func (v *RecipeView) View() string {
	return styles.ActiveBorder.Render(v.viewport.View())
}

// ViewLoading renders the pane with an animated spinner line
func (v *RecipeView) ViewLoading(spin string) string {
	frameW, frameH := styles.ActiveBorder.GetFrameSize()
	return styles.ActiveBorder.
		Width(max(v.width-frameW, 0)).
		Height(max(v.height-frameH, 0)).
		Render(styles.DimStyle.Render(spin + " Loading..."))
}

func (v *RecipeView) refresh() {
	switch {
	case v.errMsg != "":
		v.viewport.SetContent(styles.ErrorStyle.Render(v.errMsg))
	case v.detail != nil:
		v.viewport.SetContent(RenderRecipe(v.detail, v.favorite, v.viewport.Width))
	default:
		v.viewport.SetContent("")
	}
}

// RenderRecipe lays out a recipe as styled text wrapped to width
func RenderRecipe(d *domain.RecipeDetail, favorite bool, width int) string {
	wrap := lipgloss.NewStyle().Width(max(width, 20))
	var b strings.Builder

	title := styles.TitleStyle.Render(d.Name)
	if favorite {
		title = styles.FavoriteStar + " " + title
	}
	b.WriteString(title + "\n")

	if desc := d.GetDescription(); desc != "" {
		b.WriteString(styles.SubtitleStyle.Render(desc) + "\n")
	}
	if len(d.Tags) > 0 {
		b.WriteString(styles.DimStyle.Render("Tags: "+strings.Join(d.Tags, ", ")) + "\n")
	}

	b.WriteString(styles.SectionStyle.Render("Ingredients") + "\n")
	if len(d.Ingredients) == 0 {
		b.WriteString(styles.DimStyle.Render("None listed") + "\n")
	}
	for _, line := range d.ShoppingList() {
		b.WriteString(wrap.Render("• "+line) + "\n")
	}

	b.WriteString(styles.SectionStyle.Render("Instructions") + "\n")
	b.WriteString(wrap.Render(strings.TrimSpace(d.Instructions)) + "\n")

	if d.HasVideo() {
		b.WriteString(styles.SectionStyle.Render("Video") + "\n")
		b.WriteString(styles.AccentStyle.Render(d.VideoURL) + "\n")
	}
	if d.SourceURL != "" {
		b.WriteString(styles.SectionStyle.Render("Source") + "\n")
		b.WriteString(styles.DimStyle.Render(d.SourceURL) + "\n")
	}
	return b.String()
}
