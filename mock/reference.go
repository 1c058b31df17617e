package mock

import (
	"context"

	"github.com/fwojciec/reactdict"
)

var (
	_ reactdict.ReferenceFinder = (*ReferenceFinder)(nil)
	_ reactdict.ReferenceIndex  = (*ReferenceIndex)(nil)
)

// ReferenceFinder is a mock implementation of reactdict.ReferenceFinder.
type ReferenceFinder struct {
	FindReferenceFn func(ctx context.Context, term string) (*reactdict.Reference, error)
}

func (f *ReferenceFinder) FindReference(ctx context.Context, term string) (*reactdict.Reference, error) {
	return f.FindReferenceFn(ctx, term)
}

// ReferenceIndex is a mock implementation of reactdict.ReferenceIndex.
type ReferenceIndex struct {
	LocateFn func(html, baseURL, term string) (string, error)
}

func (i *ReferenceIndex) Locate(html, baseURL, term string) (string, error) {
	return i.LocateFn(html, baseURL, term)
}
