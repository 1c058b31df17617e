package mock

import (
	"context"

	"github.com/fwojciec/reactdict"
)

var _ reactdict.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of reactdict.SearchService.
type SearchService struct {
	RecordSearchFn   func(ctx context.Context, term string) error
	RecentSearchesFn func(ctx context.Context, n int) ([]*reactdict.Search, error)
	ClearSearchesFn  func(ctx context.Context) error
}

func (s *SearchService) RecordSearch(ctx context.Context, term string) error {
	return s.RecordSearchFn(ctx, term)
}

func (s *SearchService) RecentSearches(ctx context.Context, n int) ([]*reactdict.Search, error) {
	return s.RecentSearchesFn(ctx, n)
}

func (s *SearchService) ClearSearches(ctx context.Context) error {
	return s.ClearSearchesFn(ctx)
}
