package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/mealbook/internal/domain"
	"github.com/mmcdole/mealbook/internal/recipes"
	"github.com/mmcdole/mealbook/internal/search"
	"github.com/mmcdole/mealbook/internal/tui/components"
	"github.com/mmcdole/mealbook/internal/tui/styles"
)

const (
	// Vertical layout: single footer line
	ChromeHeight = 1

	statusTimeout = 4 * time.Second

	emptyFavoritesMessage = "No favorite recipes yet."
)

// FavoritesStore is the slice of the favorites service the views use
type FavoritesStore interface {
	IsFavorite(id string) bool
	IDs() []string
	Toggle(id string) (bool, error)
	Subscribe(o domain.FavoritesObserver) func()
}

// LinkOpener launches a URL in an external program
type LinkOpener interface {
	Open(link string) error
}

// ClipboardWriter places text on the system clipboard
type ClipboardWriter func(text string) error

// Options configures the optional collaborators of the Model
type Options struct {
	FilterMode search.Mode
	Opener     LinkOpener
	Clipboard  ClipboardWriter
	Logger     *slog.Logger
}

// Model is the main Bubble Tea model for the application
type Model struct {
	Ready bool

	// Services
	RecipeSvc *recipes.Service
	Favorites FavoritesStore

	opener     LinkOpener
	clipboard  ClipboardWriter
	filterMode search.Mode
	logger     *slog.Logger

	// UI
	Stack    *ScreenStack
	spinner  spinner.Model
	help     help.Model
	keys     KeyMap
	showHelp bool

	// Favorites change feed
	favCh       chan []string
	unsubscribe func()

	// Dimensions
	Width  int
	Height int

	// Status bar
	StatusMsg   string
	StatusIsErr bool
	statusSeq   int

	nextToken uint64
}

// NewModel creates the application model with the Listing screen active
func NewModel(svc *recipes.Service, favorites FavoritesStore, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = func(string) error { return errors.New("clipboard unavailable") }
	}

	favCh := make(chan []string, 16)
	m := Model{
		RecipeSvc:   svc,
		Favorites:   favorites,
		opener:      opts.Opener,
		clipboard:   clip,
		filterMode:  opts.FilterMode,
		logger:      logger,
		Stack:       NewScreenStack(),
		spinner:     spinner.New(spinner.WithSpinner(components.SpinnerFrames), spinner.WithStyle(styles.SpinnerStyle)),
		help:        help.New(),
		keys:        Keys,
		favCh:       favCh,
		unsubscribe: favorites.Subscribe(NewChannelObserver(favCh)),
	}

	list := components.NewRecipeList("Recipes", m.filterMode)
	list.SetLoading(true)
	m.Stack.Push(&Screen{Kind: ScreenListing, Title: "Recipes", List: list, token: m.newToken()})
	return m
}

// Init starts the listing load, the spinner, and the favorites feed
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadRecipesCmd(m.RecipeSvc, m.Stack.Top().token),
		m.spinner.Tick,
		WaitForFavoritesCmd(m.favCh),
	)
}

// Close detaches the model from the favorites store
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Active returns the screen on top of the navigation stack
func (m Model) Active() *Screen {
	return m.Stack.Top()
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.help.Width = msg.Width
		m.Stack.SetSizes(m.Width, m.Height-ChromeHeight)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case RecipesLoadedMsg:
		s := m.activeFor(msg.Token, ScreenListing)
		if s == nil {
			m.logger.Debug("dropping stale listing result", "token", msg.Token)
			return m, nil
		}
		if msg.Err != nil {
			s.List.SetError("Could not load recipes: " + msg.Err.Error())
			return m, nil
		}
		s.List.SetRecipes(msg.Recipes)
		s.List.SetFavorites(m.Favorites.IDs())
		return m, nil

	case RecipeDetailLoadedMsg:
		s := m.activeFor(msg.Token, ScreenDetail)
		if s == nil {
			m.logger.Debug("dropping stale detail result", "id", msg.ID, "token", msg.Token)
			return m, nil
		}
		switch {
		case errors.Is(msg.Err, domain.ErrRecipeNotFound):
			s.View.SetError(components.NotFoundMessage)
		case msg.Err != nil:
			s.View.SetError("Could not load recipe: " + msg.Err.Error())
		default:
			s.Title = msg.Detail.Name
			s.View.SetFavorite(m.Favorites.IsFavorite(msg.Detail.ID))
			s.View.SetDetail(msg.Detail)
		}
		return m, nil

	case FavoritesResolvedMsg:
		s := m.activeFor(msg.Token, ScreenFavorites)
		if s == nil {
			m.logger.Debug("dropping stale favorites result", "token", msg.Token)
			return m, nil
		}
		if msg.Err != nil {
			s.List.SetError("Could not load favorites: " + msg.Err.Error())
			return m, nil
		}
		s.List.SetDetails(msg.Recipes)
		s.List.SetFavorites(m.Favorites.IDs())
		return m, nil

	case FavoritesChangedMsg:
		cmd := m.applyFavorites()
		return m, tea.Batch(cmd, WaitForFavoritesCmd(m.favCh))

	case FavoriteToggledMsg:
		if msg.Err != nil {
			cmd := m.setStatus("Could not save favorite: "+msg.Err.Error(), true)
			return m, cmd
		}
		verb := "Removed from"
		if msg.IsFavorite {
			verb = "Added to"
		}
		cmd := m.setStatus(fmt.Sprintf("%s favorites: %s", verb, msg.Name), false)
		return m, cmd

	case LinkOpenedMsg:
		if msg.Err != nil {
			cmd := m.setStatus("Could not open video: "+msg.Err.Error(), true)
			return m, cmd
		}
		cmd := m.setStatus("Opened "+msg.URL, false)
		return m, cmd

	case ShoppingListCopiedMsg:
		if msg.Err != nil {
			cmd := m.setStatus("Could not copy shopping list: "+msg.Err.Error(), true)
			return m, cmd
		}
		cmd := m.setStatus(fmt.Sprintf("Copied %d ingredients to clipboard", msg.Lines), false)
		return m, cmd

	case ClearStatusMsg:
		if msg.Seq == m.statusSeq {
			m.StatusMsg = ""
			m.StatusIsErr = false
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key returns from help
		m.showHelp = false
		return m, nil
	}

	top := m.Stack.Top()

	// Typing into the filter: everything but ctrl+c goes to the input
	if top.List != nil && top.List.IsFilterTyping() {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, top.List.Update(msg)
	}
	// esc clears an applied filter before it means back
	if top.List != nil && top.List.IsFiltering() && msg.String() == "esc" {
		return m, top.List.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Back):
		cmd := m.goBack()
		return m, cmd

	case key.Matches(msg, m.keys.Favorites):
		if top.Kind == ScreenFavorites {
			return m, nil
		}
		cmd := m.openFavorites()
		return m, cmd

	case key.Matches(msg, m.keys.Filter):
		if top.List != nil && !top.Loading() && top.List.Error() == "" {
			top.List.ToggleFilter()
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleFavorite):
		cmd := m.toggleSelected()
		return m, cmd

	case key.Matches(msg, m.keys.Enter):
		if top.List == nil {
			return m, nil
		}
		r, ok := top.List.SelectedRecipe()
		if !ok {
			return m, nil
		}
		cmd := m.openDetail(r)
		return m, cmd

	case key.Matches(msg, m.keys.OpenVideo):
		cmd := m.openVideo()
		return m, cmd

	case key.Matches(msg, m.keys.CopyList):
		cmd := m.copyShoppingList()
		return m, cmd

	case key.Matches(msg, m.keys.Refresh):
		cmd := m.load(top)
		return m, cmd
	}

	// Navigation within the screen
	if top.List != nil {
		return m, top.List.Update(msg)
	}
	return m, top.View.Update(msg)
}

// activeFor returns the active screen if it is of kind and still waiting on token
func (m Model) activeFor(token uint64, kind ScreenKind) *Screen {
	top := m.Stack.Top()
	if top == nil || top.Kind != kind || top.token != token {
		return nil
	}
	return top
}

func (m *Model) newToken() uint64 {
	m.nextToken++
	return m.nextToken
}

// load (re)issues the fetch for s under a fresh token
func (m *Model) load(s *Screen) tea.Cmd {
	s.token = m.newToken()
	s.stale = false

	switch s.Kind {
	case ScreenListing:
		s.List.SetLoading(true)
		return LoadRecipesCmd(m.RecipeSvc, s.token)
	case ScreenDetail:
		s.View.SetLoading(true)
		return LoadRecipeDetailCmd(m.RecipeSvc, s.token, s.RecipeID)
	case ScreenFavorites:
		s.List.SetLoading(true)
		return ResolveFavoritesCmd(m.RecipeSvc, s.token, m.Favorites.IDs())
	}
	return nil
}

func (m *Model) push(s *Screen) tea.Cmd {
	s.setSize(m.Width, m.Height-ChromeHeight)
	m.Stack.Push(s)
	return m.load(s)
}

func (m *Model) openDetail(r domain.RecipeSummary) tea.Cmd {
	return m.push(&Screen{
		Kind:     ScreenDetail,
		Title:    r.Name,
		RecipeID: r.ID,
		View:     components.NewRecipeView(),
	})
}

func (m *Model) openFavorites() tea.Cmd {
	list := components.NewRecipeList("Favorites", m.filterMode)
	list.SetEmptyMessage(emptyFavoritesMessage)
	return m.push(&Screen{Kind: ScreenFavorites, Title: "Favorites", List: list})
}

// goBack pops the active screen. The resumed screen reloads only if its own
// load was dropped while covered, or its favorites went stale.
func (m *Model) goBack() tea.Cmd {
	if m.Stack.Pop() == nil {
		return nil
	}
	top := m.Stack.Top()
	if top.Loading() || top.stale {
		return m.load(top)
	}
	return nil
}

// applyFavorites pushes the store's current set to every screen. The store is
// re-read so a snapshot dropped by the observer channel is never lost.
func (m *Model) applyFavorites() tea.Cmd {
	ids := m.Favorites.IDs()
	top := m.Stack.Top()

	var cmd tea.Cmd
	for _, s := range m.Stack.All() {
		switch s.Kind {
		case ScreenListing:
			s.List.SetFavorites(ids)
		case ScreenDetail:
			s.View.SetFavorite(slices.Contains(ids, s.RecipeID))
		case ScreenFavorites:
			s.List.SetFavorites(ids)
			if s == top {
				cmd = m.load(s)
			} else {
				s.stale = true
			}
		}
	}
	return cmd
}

func (m *Model) toggleSelected() tea.Cmd {
	top := m.Stack.Top()
	switch {
	case top.List != nil:
		r, ok := top.List.SelectedRecipe()
		if !ok {
			return nil
		}
		return ToggleFavoriteCmd(m.Favorites, r.ID, r.Name)
	case top.View != nil:
		// Only a loaded recipe can be favorited; a missing one could never resolve again.
		d := top.View.Detail()
		if d == nil {
			return nil
		}
		return ToggleFavoriteCmd(m.Favorites, d.ID, d.Name)
	}
	return nil
}

func (m *Model) openVideo() tea.Cmd {
	top := m.Stack.Top()
	if top.Kind != ScreenDetail || top.View.Detail() == nil {
		return nil
	}
	d := top.View.Detail()
	if !d.HasVideo() {
		return m.setStatus("No video for this recipe", true)
	}
	if m.opener == nil {
		return m.setStatus("No opener configured", true)
	}
	return OpenLinkCmd(m.opener, d.VideoURL)
}

func (m *Model) copyShoppingList() tea.Cmd {
	top := m.Stack.Top()
	if top.Kind != ScreenDetail || top.View.Detail() == nil {
		return nil
	}
	return CopyShoppingListCmd(m.clipboard, top.View.Detail())
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.StatusMsg = text
	m.StatusIsErr = isErr
	if isErr {
		m.logger.Warn("status", "message", text)
	}
	return ClearStatusCmd(statusTimeout, m.statusSeq)
}

// View renders the active screen and footer
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	top := m.Stack.Top()
	var body string
	switch {
	case top.List != nil && top.Loading():
		body = top.List.ViewLoading(m.spinner.View())
	case top.List != nil:
		body = top.List.View()
	case top.Loading():
		body = top.View.ViewLoading(m.spinner.View())
	default:
		body = top.View.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter())
}

// renderFooter renders a single-line footer: status or breadcrumb, then help hint
func (m Model) renderFooter() string {
	var left string
	switch {
	case m.StatusMsg != "" && m.StatusIsErr:
		left = styles.ErrorStyle.Render(m.StatusMsg)
	case m.StatusMsg != "":
		left = styles.SuccessStyle.Render(m.StatusMsg)
	default:
		left = styles.DimStyle.Render(m.breadcrumb())
	}

	right := styles.HelpKeyStyle.Render("?") + styles.HelpDescStyle.Render(" help")

	gap := max(m.Width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) breadcrumb() string {
	titles := make([]string, 0, m.Stack.Len())
	for _, s := range m.Stack.All() {
		titles = append(titles, s.Title)
	}
	return strings.Join(titles, " › ")
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	h := m.help
	h.ShowAll = true
	body := styles.ModalTitleStyle.Render("Keys") + "\n" + h.View(m.keys) +
		"\n\n" + styles.DimStyle.Render("Press any key to return...")

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(body))
}
