package mock

import "github.com/fwojciec/wikiscraper"

var _ wikiscraper.TableWriter = (*TableWriter)(nil)

// TableWriter is a mock implementation of wikiscraper.TableWriter.
type TableWriter struct {
	WriteTableFn func(t *wikiscraper.Table) (string, error)
	ClearFn      func() error
}

func (w *TableWriter) WriteTable(t *wikiscraper.Table) (string, error) {
	return w.WriteTableFn(t)
}

func (w *TableWriter) Clear() error {
	return w.ClearFn()
}
