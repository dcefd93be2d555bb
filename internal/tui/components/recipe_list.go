package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/mealbook/internal/domain"
	"github.com/mmcdole/mealbook/internal/search"
	"github.com/mmcdole/mealbook/internal/tui/styles"
)

// Layout constants for list panes
const (
	// Border adds 1 char on each side
	BorderWidth  = 2
	BorderHeight = 2

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2
)

// SpinnerFrames drive the loading animation
var SpinnerFrames = spinner.Spinner{
	Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	FPS:    spinner.Dot.FPS,
}

// RecipeList is a scrollable, filterable list of recipes
type RecipeList struct {
	recipes   []domain.RecipeSummary
	items     []domain.ListItem // Rendered rows, parallel to recipes
	favorites map[string]bool

	// Selection
	cursor     int
	offset     int
	maxVisible int

	// Dimensions
	width   int
	height  int
	focused bool

	title        string
	emptyMessage string

	// Loading / failure state
	loading bool
	errMsg  string

	// Filter state
	mode         search.Mode
	filterActive bool
	filterInput  textinput.Model
	filterQuery  string
	results      []search.Result // nil when no filter is applied
}

// NewRecipeList creates a list pane with the given title and filter mode
func NewRecipeList(title string, mode search.Mode) *RecipeList {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return &RecipeList{
		title:        title,
		emptyMessage: "No recipes found.",
		mode:         mode,
		filterInput:  ti,
		favorites:    make(map[string]bool),
	}
}

// Update handles navigation and filter keys
func (c *RecipeList) Update(msg tea.Msg) tea.Cmd {
	if !c.focused {
		return nil
	}

	// Typing mode: keys go to the filter input
	if c.filterActive && c.filterInput.Focused() {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "esc":
				c.clearFilter()
				return nil
			case "enter":
				// Accept filter, blur input to allow navigation
				c.filterInput.Blur()
				return nil
			case "backspace":
				if c.filterInput.Value() == "" {
					c.clearFilter()
					return nil
				}
			}
		}

		var cmd tea.Cmd
		c.filterInput, cmd = c.filterInput.Update(msg)
		c.applyFilter()
		return cmd
	}

	// Filter applied but blurred
	if c.filterActive {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "esc":
				c.clearFilter()
				return nil
			case "/":
				c.filterInput.Focus()
				return nil
			}
		}
	}

	count := c.ItemCount()
	if count == 0 {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "j", "down":
			if c.cursor < count-1 {
				c.cursor++
				c.ensureVisible()
			}
		case "k", "up":
			if c.cursor > 0 {
				c.cursor--
				c.ensureVisible()
			}
		case "g", "home":
			c.cursor = 0
			c.offset = 0
		case "G", "end":
			c.cursor = count - 1
			c.ensureVisible()
		case "ctrl+d", "pgdown":
			c.cursor = min(c.cursor+max(c.maxVisible/2, 1), count-1)
			c.ensureVisible()
		case "ctrl+u", "pgup":
			c.cursor = max(c.cursor-max(c.maxVisible/2, 1), 0)
			c.ensureVisible()
		}
	}
	return nil
}

func (c *RecipeList) View() string {
	style := styles.InactiveBorder
	if c.focused {
		style = styles.ActiveBorder
	}

	frameW, frameH := style.GetFrameSize()
	return style.
		Width(max(c.width-frameW, 0)).
		Height(max(c.height-frameH, 0)).
		Render(c.renderContent(""))
}

// ViewLoading renders the pane with an animated spinner line
func (c *RecipeList) ViewLoading(spin string) string {
	style := styles.ActiveBorder
	frameW, frameH := style.GetFrameSize()
	return style.
		Width(max(c.width-frameW, 0)).
		Height(max(c.height-frameH, 0)).
		Render(c.renderContent(spin))
}

func (c *RecipeList) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.recalcMaxVisible()
	c.ensureVisible()
}

func (c *RecipeList) SetFocused(focused bool) { c.focused = focused }

// SetEmptyMessage sets the text shown when there are no recipes
func (c *RecipeList) SetEmptyMessage(msg string) { c.emptyMessage = msg }

// SetLoading marks the pane as waiting for data
func (c *RecipeList) SetLoading(loading bool) {
	c.loading = loading
	if loading {
		c.errMsg = ""
	}
}

func (c *RecipeList) IsLoading() bool { return c.loading }

// SetError replaces the contents with a failure message
func (c *RecipeList) SetError(msg string) {
	c.loading = false
	c.errMsg = msg
	c.recipes = nil
	c.items = nil
	c.results = nil
	c.cursor, c.offset = 0, 0
}

func (c *RecipeList) Error() string { return c.errMsg }

// SetRecipes replaces the contents with listing entries
func (c *RecipeList) SetRecipes(recipes []domain.RecipeSummary) {
	c.loading = false
	c.errMsg = ""
	c.recipes = recipes
	c.items = make([]domain.ListItem, len(recipes))
	for i := range recipes {
		c.items[i] = &recipes[i]
	}
	c.reset()
}

// SetDetails replaces the contents with resolved recipes, keeping area and
// category as secondary text
func (c *RecipeList) SetDetails(details []*domain.RecipeDetail) {
	recipes := make([]domain.RecipeSummary, len(details))
	for i, d := range details {
		recipes[i] = d.Summary()
	}
	c.SetRecipes(recipes)
	for i, d := range details {
		c.items[i] = d
	}
}

// SetFavorites replaces the set of ids rendered with a star
func (c *RecipeList) SetFavorites(ids []string) {
	c.favorites = make(map[string]bool, len(ids))
	for _, id := range ids {
		c.favorites[id] = true
	}
}

// SelectedRecipe returns the highlighted recipe
func (c *RecipeList) SelectedRecipe() (domain.RecipeSummary, bool) {
	if c.cursor < 0 || c.cursor >= c.ItemCount() {
		return domain.RecipeSummary{}, false
	}
	return c.recipes[c.mapIndex(c.cursor)], true
}

// ItemCount returns the number of visible (filtered) recipes
func (c *RecipeList) ItemCount() int {
	if c.results != nil {
		return len(c.results)
	}
	return len(c.recipes)
}

// ToggleFilter activates the filter input
func (c *RecipeList) ToggleFilter() {
	c.filterActive = true
	c.filterInput.Focus()
	c.recalcMaxVisible()
}

func (c *RecipeList) IsFiltering() bool { return c.filterActive }

// IsFilterTyping returns true if filter is active AND input is focused
func (c *RecipeList) IsFilterTyping() bool {
	return c.filterActive && c.filterInput.Focused()
}

func (c *RecipeList) reset() {
	c.cursor, c.offset = 0, 0
	if c.filterActive {
		c.applyFilter()
	} else {
		c.results = nil
	}
}

func (c *RecipeList) recalcMaxVisible() {
	// title line + scroll indicators
	c.maxVisible = c.height - BorderHeight - ScrollIndicatorLines - 1
	if c.filterActive {
		c.maxVisible--
	}
	if c.maxVisible < 1 {
		c.maxVisible = 1
	}
}

func (c *RecipeList) ensureVisible() {
	if c.maxVisible <= 0 {
		return
	}
	if c.cursor < c.offset {
		c.offset = c.cursor
	}
	if c.cursor >= c.offset+c.maxVisible {
		c.offset = c.cursor - c.maxVisible + 1
	}
}

func (c *RecipeList) clearFilter() {
	c.filterActive = false
	c.filterQuery = ""
	c.results = nil
	c.filterInput.SetValue("")
	c.filterInput.Blur()
	c.recalcMaxVisible()
}

func (c *RecipeList) applyFilter() {
	c.filterQuery = c.filterInput.Value()
	if strings.TrimSpace(c.filterQuery) == "" {
		c.results = nil
		return
	}
	c.results = search.Filter(c.recipes, c.filterQuery, c.mode)
	c.cursor = 0
	c.offset = 0
}

func (c *RecipeList) mapIndex(i int) int {
	if c.results != nil && i < len(c.results) {
		return c.results[i].Index
	}
	return i
}

func (c *RecipeList) matchedIndexes(i int) []int {
	if c.results != nil && i < len(c.results) {
		return c.results[i].MatchedIndexes
	}
	return nil
}

// Rendering

func (c *RecipeList) renderContent(spin string) string {
	itemWidth := max(c.width-BorderWidth, 10)
	titleLine := styles.AccentStyle.Render(styles.Truncate(c.title, itemWidth))

	if c.loading {
		return titleLine + "\n \n" + styles.DimStyle.Render(spin+" Loading...") + "\n "
	}
	if c.errMsg != "" {
		return titleLine + "\n \n" + styles.ErrorStyle.Render(styles.Truncate(c.errMsg, itemWidth)) + "\n "
	}

	count := c.ItemCount()
	if count == 0 {
		emptyMsg := c.emptyMessage
		if c.filterActive && c.filterQuery != "" {
			emptyMsg = "No matches"
		}
		content := titleLine + "\n \n" + styles.DimStyle.Render(emptyMsg) + "\n "
		if c.filterActive {
			content += "\n" + c.renderFilterBar()
		}
		return content
	}

	end := min(c.offset+c.maxVisible, count)
	lines := make([]string, 0, end-c.offset)
	for i := c.offset; i < end; i++ {
		lines = append(lines, c.renderItem(c.items[c.mapIndex(i)], c.matchedIndexes(i), i == c.cursor, itemWidth))
	}

	// Always reserve header/footer lines to prevent layout shifts
	header := " "
	if c.offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := " "
	if end < count {
		footer = styles.DimStyle.Render("↓ more")
	}

	content := titleLine + "\n" + header + "\n" + strings.Join(lines, "\n") + "\n" + footer
	if c.filterActive {
		content += "\n" + c.renderFilterBar()
	}
	return content
}

func (c *RecipeList) renderItem(item domain.ListItem, matched []int, selected bool, width int) string {
	star := styles.NotFavoriteChar
	var starColor *lipgloss.Color
	if c.favorites[item.GetID()] {
		star = styles.FavoriteChar
		color := styles.Saffron
		starColor = &color
	}

	desc := item.GetDescription()
	nameWidth := width - 4 // margins + star + space
	if desc != "" {
		nameWidth -= lipgloss.Width(desc) + 2
	}
	name := styles.Truncate(item.GetTitle(), max(nameWidth, 3))

	parts := []styles.RowPart{{Text: star, Foreground: starColor}, {Text: " "}}
	parts = append(parts, highlightName(name, matched)...)
	if desc != "" {
		dim := styles.DimGray
		parts = append(parts, styles.RowPart{Text: "  " + desc, Foreground: &dim})
	}
	return styles.RenderListRow(parts, selected, width)
}

// highlightName splits name into row parts, coloring fuzzy-matched bytes
func highlightName(name string, matched []int) []styles.RowPart {
	if len(matched) == 0 {
		return []styles.RowPart{{Text: name}}
	}
	set := make(map[int]bool, len(matched))
	for _, i := range matched {
		set[i] = true
	}

	accent := styles.Saffron
	var parts []styles.RowPart
	for i, r := range name {
		part := styles.RowPart{Text: string(r)}
		if set[i] {
			part.Foreground = &accent
		}
		parts = append(parts, part)
	}
	return parts
}

func (c *RecipeList) renderFilterBar() string {
	input := c.filterInput.View()
	if c.filterQuery == "" {
		return input
	}
	return input + styles.DimStyle.Render(fmt.Sprintf(" [%d/%d]", c.ItemCount(), len(c.recipes)))
}
