package execctx

import "errors"

// Context validation errors.
var (
	// ErrMissingEngine indicates the engine is required but not set.
	ErrMissingEngine = errors.New("execution context: engine is required")

	// ErrMissingCursor indicates the cursor is required but not set.
	ErrMissingCursor = errors.New("execution context: cursor is required")

	// ErrMissingSession indicates the sneak session is required but not set.
	ErrMissingSession = errors.New("execution context: sneak session is required")
)
