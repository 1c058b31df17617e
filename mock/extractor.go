package mock

import "github.com/fwojciec/reactdict"

var _ reactdict.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of reactdict.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*reactdict.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*reactdict.ExtractResult, error) {
	return e.ExtractFn(html)
}
