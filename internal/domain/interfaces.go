package domain

// ListItem is the polymorphic interface for items that can be displayed in lists.
// Both recipe representations implement it so list components can render either.
type ListItem interface {
	// GetID returns the catalog identifier for this item
	GetID() string

	// GetTitle returns the display title
	GetTitle() string

	// GetDescription returns secondary info for display (e.g., "Italian · Pasta")
	GetDescription() string
}
