package reactdict

import "context"

// DefineRequest holds the input for generating a definition.
type DefineRequest struct {
	Term string

	// Details is optional context supplied with a user suggestion.
	Details string

	// Reference is optional official documentation used to ground the answer.
	Reference *Reference
}

// Definer generates definitions using a language model.
type Definer interface {
	// Define generates a definition for the requested term.
	// Returns EINVALID if the term is blank, ENOTIMPLEMENTED if no model is
	// configured and EINTERNAL if the model response cannot be parsed.
	Define(ctx context.Context, req DefineRequest) (*Definition, error)
}

// Lookup resolves a term to its definition, consulting caches before
// generating a new one.
type Lookup interface {
	Lookup(ctx context.Context, term string) (*Definition, error)
}
