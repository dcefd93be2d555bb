package tui

import (
	"github.com/mmcdole/mealbook/internal/tui/components"
)

// ScreenKind identifies what a screen shows
type ScreenKind int

const (
	ScreenListing ScreenKind = iota
	ScreenDetail
	ScreenFavorites
)

func (k ScreenKind) String() string {
	switch k {
	case ScreenListing:
		return "listing"
	case ScreenDetail:
		return "detail"
	case ScreenFavorites:
		return "favorites"
	default:
		return "unknown"
	}
}

// Screen is one entry of the navigation stack.
// Listing and Favorites use List; Detail uses View.
type Screen struct {
	Kind     ScreenKind
	Title    string
	RecipeID string // Detail only

	List *components.RecipeList
	View *components.RecipeView

	// token of the outstanding load; results carrying another token are stale
	token uint64
	// stale marks a Favorites screen whose set changed while it was covered
	stale bool
}

// Loading reports whether the screen is waiting for a load
func (s *Screen) Loading() bool {
	if s.List != nil {
		return s.List.IsLoading()
	}
	return s.View != nil && s.View.IsLoading()
}

func (s *Screen) setSize(width, height int) {
	if s.List != nil {
		s.List.SetSize(width, height)
	}
	if s.View != nil {
		s.View.SetSize(width, height)
	}
}

func (s *Screen) setFocused(focused bool) {
	if s.List != nil {
		s.List.SetFocused(focused)
	}
}

// ScreenStack is the navigation history. The top screen is active; going
// back pops it and the screen below resumes with its own state intact.
type ScreenStack struct {
	screens []*Screen
}

// NewScreenStack creates a new empty screen stack
func NewScreenStack() *ScreenStack {
	return &ScreenStack{}
}

// Len returns the number of screens in the stack
func (ss *ScreenStack) Len() int {
	return len(ss.screens)
}

// Top returns the active screen
func (ss *ScreenStack) Top() *Screen {
	if len(ss.screens) == 0 {
		return nil
	}
	return ss.screens[len(ss.screens)-1]
}

// Push makes s the active screen
func (ss *ScreenStack) Push(s *Screen) {
	if top := ss.Top(); top != nil {
		top.setFocused(false)
	}
	s.setFocused(true)
	ss.screens = append(ss.screens, s)
}

// Pop removes the active screen. The root screen is never popped.
func (ss *ScreenStack) Pop() *Screen {
	if !ss.CanGoBack() {
		return nil
	}
	popped := ss.screens[len(ss.screens)-1]
	popped.setFocused(false)
	ss.screens = ss.screens[:len(ss.screens)-1]

	if top := ss.Top(); top != nil {
		top.setFocused(true)
	}
	return popped
}

// CanGoBack returns true if we can navigate back (not at root)
func (ss *ScreenStack) CanGoBack() bool {
	return len(ss.screens) > 1
}

// All returns the screens bottom to top
func (ss *ScreenStack) All() []*Screen {
	return ss.screens
}

// SetSizes updates the size of all screens
func (ss *ScreenStack) SetSizes(width, height int) {
	for _, s := range ss.screens {
		s.setSize(width, height)
	}
}
