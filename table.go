package wikiscraper

import "sort"

// Table is a genuine data table materialized as named columns.
// An empty string cell is a missing value.
type Table struct {
	// Identifier is the sanitized name of the page the table came from.
	Identifier string

	// Ordinal is the 1-based position among genuine tables on the page.
	Ordinal int

	Columns []string
	Rows    [][]string

	// HTML is the source markup of the table.
	HTML string
}

// ValueCount is one entry of a value tally.
type ValueCount struct {
	Value string
	Count int
}

// ValueCounts tallies every non-missing cell across all rows and columns.
// Results are sorted by descending count; ties keep first-encountered order.
func (t *Table) ValueCounts() []ValueCount {
	index := make(map[string]int)
	var counts []ValueCount
	for _, row := range t.Rows {
		for _, v := range row {
			if v == "" {
				continue
			}
			if i, ok := index[v]; ok {
				counts[i].Count++
				continue
			}
			index[v] = len(counts)
			counts = append(counts, ValueCount{Value: v, Count: 1})
		}
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// TableWriter persists extracted tables.
type TableWriter interface {
	// WriteTable stores the table and returns the location it was written to.
	WriteTable(t *Table) (string, error)

	// Clear removes every stored table.
	Clear() error
}
