package mock

import "github.com/fwojciec/reactdict"

var _ reactdict.Converter = (*Converter)(nil)

// Converter is a mock implementation of reactdict.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
