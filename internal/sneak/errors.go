package sneak

import "errors"

// Construction errors.
var (
	// ErrUnknownTrigger indicates the first key does not start a sneak.
	ErrUnknownTrigger = errors.New("sneak: unknown trigger key")

	// ErrIncompleteKeys indicates the key sequence lacks a query character.
	ErrIncompleteKeys = errors.New("sneak: key sequence needs a trigger and at least one character")
)
