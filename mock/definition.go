package mock

import (
	"context"

	"github.com/fwojciec/reactdict"
)

var _ reactdict.DefinitionService = (*DefinitionService)(nil)

// DefinitionService is a mock implementation of reactdict.DefinitionService.
type DefinitionService struct {
	CreateDefinitionFn   func(ctx context.Context, def *reactdict.Definition) error
	FindDefinitionByIDFn func(ctx context.Context, id string) (*reactdict.Definition, error)
	FindDefinitionsFn    func(ctx context.Context, filter reactdict.DefinitionFilter) ([]*reactdict.Definition, error)
	UpdateDefinitionFn   func(ctx context.Context, id string, upd reactdict.DefinitionUpdate) (*reactdict.Definition, error)
	DeleteDefinitionFn   func(ctx context.Context, id string) error
}

func (s *DefinitionService) CreateDefinition(ctx context.Context, def *reactdict.Definition) error {
	return s.CreateDefinitionFn(ctx, def)
}

func (s *DefinitionService) FindDefinitionByID(ctx context.Context, id string) (*reactdict.Definition, error) {
	return s.FindDefinitionByIDFn(ctx, id)
}

func (s *DefinitionService) FindDefinitions(ctx context.Context, filter reactdict.DefinitionFilter) ([]*reactdict.Definition, error) {
	return s.FindDefinitionsFn(ctx, filter)
}

func (s *DefinitionService) UpdateDefinition(ctx context.Context, id string, upd reactdict.DefinitionUpdate) (*reactdict.Definition, error) {
	return s.UpdateDefinitionFn(ctx, id, upd)
}

func (s *DefinitionService) DeleteDefinition(ctx context.Context, id string) error {
	return s.DeleteDefinitionFn(ctx, id)
}
