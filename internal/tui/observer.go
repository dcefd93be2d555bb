package tui

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

// ChannelObserver adapts domain.FavoritesObserver to a channel for Bubble Tea.
type ChannelObserver struct {
	ch chan<- []string
}

// NewChannelObserver creates a new channel-based observer.
func NewChannelObserver(ch chan<- []string) *ChannelObserver {
	return &ChannelObserver{ch: ch}
}

// OnFavoritesChanged sends the snapshot to the channel (non-blocking if full).
// A dropped snapshot is superseded by the next one.
func (o *ChannelObserver) OnFavoritesChanged(ids []string) {
	select {
	case o.ch <- slices.Clone(ids):
	default:
	}
}

// WaitForFavoritesCmd blocks until the store reports a change
func WaitForFavoritesCmd(ch <-chan []string) tea.Cmd {
	return func() tea.Msg {
		ids, ok := <-ch
		if !ok {
			return nil
		}
		return FavoritesChangedMsg{IDs: ids}
	}
}
