package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrNetwork indicates a transport or decoding failure talking to the catalog
	ErrNetwork = errors.New("recipe catalog request failed")

	// ErrRecipeNotFound indicates the catalog has no entry for the requested id
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrStorage indicates a favorites persistence read or write failure
	ErrStorage = errors.New("favorites storage failure")

	// ErrStoreNotLoaded indicates a mutation was attempted before Load
	ErrStoreNotLoaded = errors.New("favorites not loaded")

	// ErrStoreClosed indicates the key-value store has been closed
	ErrStoreClosed = errors.New("store is closed")

	// ErrInvalidRecipeID indicates an empty recipe identifier
	ErrInvalidRecipeID = errors.New("invalid recipe id")
)
