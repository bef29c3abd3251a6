package services

import "errors"

// Sentinel errors shared across services. The messages are the exact
// payloads clients see, so they are kept in one place.
var (
	// ErrUserNotFound is returned when a username or user ID cannot be resolved.
	ErrUserNotFound = errors.New("User not found")
	// ErrItemNotFound is returned when a catalog item cannot be resolved.
	ErrItemNotFound = errors.New("Item not found")
	// ErrCartEmpty is returned when submitting an order for an empty cart.
	ErrCartEmpty = errors.New("Cannot submit order because the user's cart is empty")
)
