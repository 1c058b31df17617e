package reactdict

import "context"

// SeedStore persists the static set of preloaded definitions.
type SeedStore interface {
	// LoadDefinitions returns all seed definitions.
	// A missing store yields no definitions and no error.
	LoadDefinitions(ctx context.Context) ([]*Definition, error)

	// SaveDefinitions atomically replaces the stored definitions.
	SaveDefinitions(ctx context.Context, defs []*Definition) error
}
