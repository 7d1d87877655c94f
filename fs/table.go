package fs

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"

	"github.com/fwojciec/wikiscraper"
)

// Ensure TableWriter implements wikiscraper.TableWriter at compile time.
var _ wikiscraper.TableWriter = (*TableWriter)(nil)

const tableExt = ".csv"

// TableWriter writes tables as {identifier}_{ordinal}.csv files.
type TableWriter struct {
	dir string
}

// NewTableWriter creates a TableWriter that writes into dir.
func NewTableWriter(dir string) *TableWriter {
	return &TableWriter{dir: dir}
}

// TablePath returns the file a table is written to.
func (w *TableWriter) TablePath(t *wikiscraper.Table) string {
	return filepath.Join(w.dir, fmt.Sprintf("%s_%d%s", t.Identifier, t.Ordinal, tableExt))
}

// WriteTable writes the header row followed by every data row.
// Missing values are written as empty fields.
func (w *TableWriter) WriteTable(t *wikiscraper.Table) (string, error) {
	if err := validateName(t.Identifier); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(t.Columns); err != nil {
		return "", err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return "", err
	}

	path := w.TablePath(t)
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return "", err
	}
	return path, nil
}

// Clear removes every written table.
func (w *TableWriter) Clear() error {
	return removeMatching(w.dir, tableExt)
}
