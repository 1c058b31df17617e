package mock

import (
	"context"

	"github.com/fwojciec/reactdict"
)

var (
	_ reactdict.Definer = (*Definer)(nil)
	_ reactdict.Lookup  = (*Lookup)(nil)
)

// Definer is a mock implementation of reactdict.Definer.
type Definer struct {
	DefineFn func(ctx context.Context, req reactdict.DefineRequest) (*reactdict.Definition, error)
}

func (d *Definer) Define(ctx context.Context, req reactdict.DefineRequest) (*reactdict.Definition, error) {
	return d.DefineFn(ctx, req)
}

// Lookup is a mock implementation of reactdict.Lookup.
type Lookup struct {
	LookupFn func(ctx context.Context, term string) (*reactdict.Definition, error)
}

func (l *Lookup) Lookup(ctx context.Context, term string) (*reactdict.Definition, error) {
	return l.LookupFn(ctx, term)
}
