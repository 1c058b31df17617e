package reactdict

import (
	"context"
	"strings"
	"time"
)

// DefinitionSource records how a definition entered the dictionary.
type DefinitionSource string

// DefinitionSource constants.
const (
	SourceSeed      DefinitionSource = "seed"
	SourceGenerated DefinitionSource = "generated"
	SourceSuggested DefinitionSource = "suggested"
)

// Definition is the structured explanation of a React term.
type Definition struct {
	ID          string           `json:"id"`
	Term        string           `json:"term"`
	Purpose     string           `json:"purpose"`
	Why         []string         `json:"why"`
	Example     string           `json:"example"`
	Code        string           `json:"code"`
	Summary     string           `json:"summary"`
	Details     string           `json:"details,omitempty"`
	Source      DefinitionSource `json:"source,omitempty"`
	ContentHash string           `json:"contentHash,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt,omitzero"`

	// Moderated is set once an admin approved the definition.
	Moderated bool `json:"moderated"`

	// Suggested marks a user-suggested term that still awaits review.
	Suggested bool `json:"suggested"`
}

// Validate returns an error if the definition contains invalid fields.
func (d *Definition) Validate() error {
	if strings.TrimSpace(d.Term) == "" {
		return Errorf(EINVALID, "definition term required")
	}
	if d.ID != "" && d.ID != TermID(d.Term) {
		return Errorf(EINVALID, "definition ID %q does not match term %q", d.ID, d.Term)
	}
	return nil
}

// IsComplete reports whether the definition carries generated content.
// Records created from a suggestion stay incomplete until generated.
func (d *Definition) IsComplete() bool {
	return d.Purpose != "" &&
		len(d.Why) > 0 &&
		d.Example != "" &&
		d.Code != "" &&
		d.Summary != ""
}

// SetContent copies the generated content fields from src.
func (d *Definition) SetContent(src *Definition) {
	d.Purpose = src.Purpose
	d.Why = append([]string(nil), src.Why...)
	d.Example = src.Example
	d.Code = src.Code
	d.Summary = src.Summary
}

// DefinitionService represents a service for managing stored definitions.
type DefinitionService interface {
	// CreateDefinition creates a new definition. The ID is derived from the term.
	// Returns ECONFLICT if a definition for the term already exists.
	CreateDefinition(ctx context.Context, def *Definition) error

	// FindDefinitionByID retrieves a definition by ID.
	// Returns ENOTFOUND if the definition does not exist.
	FindDefinitionByID(ctx context.Context, id string) (*Definition, error)

	// FindDefinitions retrieves definitions matching the filter.
	FindDefinitions(ctx context.Context, filter DefinitionFilter) ([]*Definition, error)

	// UpdateDefinition updates an existing definition.
	// Returns ENOTFOUND if the definition does not exist.
	UpdateDefinition(ctx context.Context, id string, upd DefinitionUpdate) (*Definition, error)

	// DeleteDefinition permanently removes a definition.
	// Returns ENOTFOUND if the definition does not exist.
	DeleteDefinition(ctx context.Context, id string) error
}

// DefinitionSortOrder represents the sort order for definition queries.
type DefinitionSortOrder string

// DefinitionSortOrder constants for DefinitionFilter.
const (
	SortByCreatedAt DefinitionSortOrder = "created_at"
	SortByTerm      DefinitionSortOrder = "term"
	SortForReview   DefinitionSortOrder = "review"
)

// DefinitionFilter represents a filter for FindDefinitions.
type DefinitionFilter struct {
	ID        *string `json:"id"`
	Term      *string `json:"term"`
	Moderated *bool   `json:"moderated"`
	Suggested *bool   `json:"suggested"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy DefinitionSortOrder `json:"sortBy"`
}

// DefinitionUpdate represents fields that can be updated on a definition.
type DefinitionUpdate struct {
	Purpose   *string           `json:"purpose"`
	Why       *[]string         `json:"why"`
	Example   *string           `json:"example"`
	Code      *string           `json:"code"`
	Summary   *string           `json:"summary"`
	Details   *string           `json:"details"`
	Source    *DefinitionSource `json:"source"`
	Moderated *bool             `json:"moderated"`
	Suggested *bool             `json:"suggested"`
}

// ReviewFilter selects which definitions an admin reviews.
type ReviewFilter string

// ReviewFilter constants.
const (
	ReviewAll       ReviewFilter = "all"
	ReviewSuggested ReviewFilter = "suggested"
	ReviewModerated ReviewFilter = "moderated"
)

// ParseReviewFilter parses s into a ReviewFilter. An empty string means all.
func ParseReviewFilter(s string) (ReviewFilter, error) {
	switch f := ReviewFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return ReviewAll, nil
	case ReviewAll, ReviewSuggested, ReviewModerated:
		return f, nil
	default:
		return "", Errorf(EINVALID, "unknown review filter %q", s)
	}
}

// DefinitionFilter returns the storage filter for the review filter,
// ordered suggested first and then newest first.
func (f ReviewFilter) DefinitionFilter() DefinitionFilter {
	filter := DefinitionFilter{SortBy: SortForReview}
	yes := true
	switch f {
	case ReviewSuggested:
		filter.Suggested = &yes
	case ReviewModerated:
		filter.Moderated = &yes
	}
	return filter
}
