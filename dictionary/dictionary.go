// Package dictionary resolves React terms to definitions. It layers an
// in-memory cache over stored definitions and falls back to a language
// model for terms it has never seen, and it implements the moderation
// workflow for user-suggested terms.
package dictionary

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/reactdict"
	"golang.org/x/sync/singleflight"
)

var (
	_ reactdict.Lookup            = (*Dictionary)(nil)
	_ reactdict.SuggestionService = (*Dictionary)(nil)
	_ reactdict.ModerationService = (*Dictionary)(nil)
)

// Dictionary coordinates the cache, storage and model for term lookups.
type Dictionary struct {
	Definitions reactdict.DefinitionService
	Definer     reactdict.Definer

	// References, if set, grounds generated definitions in official docs.
	References reactdict.ReferenceFinder

	Cache *Cache
	Now   func() time.Time

	group singleflight.Group
}

// lookupTimeout bounds a shared lookup once it no longer follows the
// context of the caller that started it.
const lookupTimeout = 2 * time.Minute

// New creates a Dictionary with an empty cache.
func New(defs reactdict.DefinitionService, definer reactdict.Definer) *Dictionary {
	return &Dictionary{
		Definitions: defs,
		Definer:     definer,
		Cache:       NewCache(),
		Now:         time.Now,
	}
}

// Lookup returns the definition of term. Cached and stored definitions are
// returned as-is; otherwise a definition is generated and persisted.
// Concurrent lookups of the same term share one generation, which keeps
// running when the caller that started it goes away.
func (d *Dictionary) Lookup(ctx context.Context, term string) (*reactdict.Definition, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, reactdict.Errorf(reactdict.EINVALID, "term required")
	}

	if def, ok := d.Cache.Get(term); ok {
		return def, nil
	}

	id := reactdict.TermID(term)
	ch := d.group.DoChan(id, func() (any, error) {
		shared, cancel := context.WithTimeout(context.WithoutCancel(ctx), lookupTimeout)
		defer cancel()
		return d.lookup(shared, id, term)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*reactdict.Definition), nil
	}
}

func (d *Dictionary) lookup(ctx context.Context, id, term string) (*reactdict.Definition, error) {
	existing, err := d.Definitions.FindDefinitionByID(ctx, id)
	switch {
	case err == nil && existing.IsComplete():
		d.Cache.Put(existing)
		return existing, nil
	case err != nil && reactdict.ErrorCode(err) != reactdict.ENOTFOUND:
		return nil, err
	}

	req := reactdict.DefineRequest{Term: term}
	if existing != nil {
		req.Details = existing.Details
	}
	def, err := d.generate(ctx, req)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		def.ID = id
		def.CreatedAt = d.now()
		def.Source = reactdict.SourceGenerated
		err := d.Definitions.CreateDefinition(ctx, def)
		if err == nil {
			d.Cache.Put(def)
			return def, nil
		}
		if reactdict.ErrorCode(err) != reactdict.ECONFLICT {
			return nil, err
		}
	}

	// The record exists, so only the content is written. Moderation flags
	// changed while the model was generating are kept.
	stored, err := d.Definitions.UpdateDefinition(ctx, id, contentUpdate(def))
	if err != nil {
		return nil, err
	}
	d.Cache.Put(stored)
	return stored, nil
}

// contentUpdate returns an update writing the generated content of def.
func contentUpdate(def *reactdict.Definition) reactdict.DefinitionUpdate {
	source := reactdict.SourceGenerated
	return reactdict.DefinitionUpdate{
		Purpose: &def.Purpose,
		Why:     &def.Why,
		Example: &def.Example,
		Code:    &def.Code,
		Summary: &def.Summary,
		Source:  &source,
	}
}

// generate asks the model for a definition, attaching reference docs when
// they can be found. Reference failures never fail the generation.
func (d *Dictionary) generate(ctx context.Context, req reactdict.DefineRequest) (*reactdict.Definition, error) {
	if d.References != nil {
		if ref, err := d.References.FindReference(ctx, req.Term); err == nil {
			req.Reference = ref
		}
	}
	return d.Definer.Define(ctx, req)
}

// Suggest records a user-suggested term for review.
// Returns ECONFLICT if the term already has an approved definition.
func (d *Dictionary) Suggest(ctx context.Context, term, details string) (*reactdict.Definition, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, reactdict.Errorf(reactdict.EINVALID, "Term is required")
	}
	details = strings.TrimSpace(details)
	id := reactdict.TermID(term)

	existing, err := d.Definitions.FindDefinitionByID(ctx, id)
	if err != nil && reactdict.ErrorCode(err) != reactdict.ENOTFOUND {
		return nil, err
	}

	if existing == nil {
		def := &reactdict.Definition{
			ID:        id,
			Term:      term,
			Details:   details,
			Source:    reactdict.SourceSuggested,
			Suggested: true,
			CreatedAt: d.now(),
		}
		if err := d.Definitions.CreateDefinition(ctx, def); err != nil {
			return nil, err
		}
		return def, nil
	}

	if existing.Moderated && existing.IsComplete() {
		return nil, reactdict.Errorf(reactdict.ECONFLICT, "%q is already in the dictionary", existing.Term)
	}

	suggested := true
	upd := reactdict.DefinitionUpdate{Suggested: &suggested}
	if details != "" {
		upd.Details = &details
	}
	def, err := d.Definitions.UpdateDefinition(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if def.IsComplete() {
		d.Cache.Put(def)
	} else {
		d.Cache.Delete(def.Term)
	}
	return def, nil
}

// Approve marks a definition as moderated, generating its content first
// when it was created from a suggestion.
func (d *Dictionary) Approve(ctx context.Context, id string) (*reactdict.Definition, error) {
	def, err := d.Definitions.FindDefinitionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var upd reactdict.DefinitionUpdate
	if !def.IsComplete() {
		generated, err := d.generate(ctx, reactdict.DefineRequest{Term: def.Term, Details: def.Details})
		if err != nil {
			return nil, err
		}
		upd = contentUpdate(generated)
	}
	yes, no := true, false
	upd.Moderated = &yes
	upd.Suggested = &no

	def, err = d.Definitions.UpdateDefinition(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	d.Cache.Put(def)
	return def, nil
}

// Reject clears the moderation flags of a definition.
func (d *Dictionary) Reject(ctx context.Context, id string) (*reactdict.Definition, error) {
	no := false
	def, err := d.Definitions.UpdateDefinition(ctx, id, reactdict.DefinitionUpdate{
		Moderated: &no,
		Suggested: &no,
	})
	if err != nil {
		return nil, err
	}
	d.Cache.Delete(def.Term)
	return def, nil
}

// Delete removes a definition from storage and the cache.
func (d *Dictionary) Delete(ctx context.Context, id string) error {
	if err := d.Definitions.DeleteDefinition(ctx, id); err != nil {
		return err
	}
	d.Cache.Delete(id)
	return nil
}

// Review lists definitions for moderation, suggested first then newest first.
func (d *Dictionary) Review(ctx context.Context, filter reactdict.ReviewFilter) ([]*reactdict.Definition, error) {
	return d.Definitions.FindDefinitions(ctx, filter.DefinitionFilter())
}

// Import stores seed definitions that are not yet known and warms the cache
// with them. Existing definitions are never overwritten. It returns the
// number of definitions imported.
func (d *Dictionary) Import(ctx context.Context, defs []*reactdict.Definition) (int, error) {
	var imported int
	for _, def := range defs {
		if def == nil || strings.TrimSpace(def.Term) == "" || !def.IsComplete() {
			continue
		}

		seed := *def
		seed.ID = reactdict.TermID(seed.Term)
		seed.Source = reactdict.SourceSeed
		seed.Moderated = true
		seed.Suggested = false

		err := d.Definitions.CreateDefinition(ctx, &seed)
		if reactdict.ErrorCode(err) == reactdict.ECONFLICT {
			continue
		}
		if err != nil {
			return imported, err
		}

		d.Cache.Put(&seed)
		imported++
	}
	return imported, nil
}

// Terms returns the names of all known terms in alphabetical order.
func (d *Dictionary) Terms(ctx context.Context) ([]string, error) {
	defs, err := d.Definitions.FindDefinitions(ctx, reactdict.DefinitionFilter{SortBy: reactdict.SortByTerm})
	if err != nil {
		return nil, err
	}

	terms := make([]string, len(defs))
	for i, def := range defs {
		terms[i] = def.Term
	}
	return terms, nil
}

func (d *Dictionary) now() time.Time {
	if d.Now == nil {
		return time.Now().UTC()
	}
	return d.Now().UTC()
}
