package mock

import (
	"context"

	"github.com/fwojciec/reactdict"
)

var (
	_ reactdict.SuggestionService = (*SuggestionService)(nil)
	_ reactdict.ModerationService = (*ModerationService)(nil)
)

// SuggestionService is a mock implementation of reactdict.SuggestionService.
type SuggestionService struct {
	SuggestFn func(ctx context.Context, term, details string) (*reactdict.Definition, error)
}

func (s *SuggestionService) Suggest(ctx context.Context, term, details string) (*reactdict.Definition, error) {
	return s.SuggestFn(ctx, term, details)
}

// ModerationService is a mock implementation of reactdict.ModerationService.
type ModerationService struct {
	ReviewFn  func(ctx context.Context, filter reactdict.ReviewFilter) ([]*reactdict.Definition, error)
	ApproveFn func(ctx context.Context, id string) (*reactdict.Definition, error)
	RejectFn  func(ctx context.Context, id string) (*reactdict.Definition, error)
	DeleteFn  func(ctx context.Context, id string) error
}

func (s *ModerationService) Review(ctx context.Context, filter reactdict.ReviewFilter) ([]*reactdict.Definition, error) {
	return s.ReviewFn(ctx, filter)
}

func (s *ModerationService) Approve(ctx context.Context, id string) (*reactdict.Definition, error) {
	return s.ApproveFn(ctx, id)
}

func (s *ModerationService) Reject(ctx context.Context, id string) (*reactdict.Definition, error) {
	return s.RejectFn(ctx, id)
}

func (s *ModerationService) Delete(ctx context.Context, id string) error {
	return s.DeleteFn(ctx, id)
}
