package mock

import "github.com/fwojciec/wikiscraper"

var _ wikiscraper.Converter = (*Converter)(nil)

// Converter is a mock implementation of wikiscraper.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
