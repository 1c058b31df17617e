package mock

import (
	"context"

	"github.com/fwojciec/reactdict"
)

var _ reactdict.SeedStore = (*SeedStore)(nil)

// SeedStore is a mock implementation of reactdict.SeedStore.
type SeedStore struct {
	LoadDefinitionsFn func(ctx context.Context) ([]*reactdict.Definition, error)
	SaveDefinitionsFn func(ctx context.Context, defs []*reactdict.Definition) error
}

func (s *SeedStore) LoadDefinitions(ctx context.Context) ([]*reactdict.Definition, error) {
	return s.LoadDefinitionsFn(ctx)
}

func (s *SeedStore) SaveDefinitions(ctx context.Context, defs []*reactdict.Definition) error {
	return s.SaveDefinitionsFn(ctx, defs)
}
