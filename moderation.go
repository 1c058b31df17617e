package reactdict

import "context"

// SuggestionService accepts user suggestions for missing terms.
type SuggestionService interface {
	// Suggest records term for review with optional free-text details.
	// Returns EINVALID if term is blank and ECONFLICT if the term already
	// has an approved definition.
	Suggest(ctx context.Context, term, details string) (*Definition, error)
}

// ModerationService lets an admin review stored definitions.
type ModerationService interface {
	// Review lists definitions matching filter, suggested first.
	Review(ctx context.Context, filter ReviewFilter) ([]*Definition, error)

	// Approve marks a definition as moderated, generating its content first
	// if it has none. Returns ENOTFOUND if the definition does not exist.
	Approve(ctx context.Context, id string) (*Definition, error)

	// Reject clears the moderated and suggested flags of a definition.
	// Returns ENOTFOUND if the definition does not exist.
	Reject(ctx context.Context, id string) (*Definition, error)

	// Delete permanently removes a definition.
	// Returns ENOTFOUND if the definition does not exist.
	Delete(ctx context.Context, id string) error
}
