package goquery

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wikiscraper"
)

const (
	maxColspan = 1000
	maxRowspan = 65534
)

// SelectTable returns the n-th genuine table (1-based) of content.
// Scanning stops at the first table that reaches ordinal n.
// Returns EOUTOFRANGE reporting the number of genuine tables found
// if there are fewer than n.
func SelectTable(content *goquery.Selection, n int) (*goquery.Selection, error) {
	var selected *goquery.Selection
	found := 0
	if content != nil {
		content.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
			if !IsRealTable(table) {
				return true
			}
			found++
			if found == n {
				selected = table
				return false
			}
			return true
		})
	}
	if selected == nil {
		return nil, wikiscraper.Errorf(wikiscraper.EOUTOFRANGE,
			"found %d real tables, but table %d was requested", found, n)
	}
	return selected, nil
}

// gridCell is one position of a table after span expansion.
type gridCell struct {
	text   string
	header bool
}

// gridRow is one expanded row and whether it came from a table head.
type gridRow struct {
	cells  []gridCell
	inHead bool
}

// ParseTable converts table markup into named columns and rows.
//
// When firstRowIsHeader is set, the first row names the columns.
// Otherwise header rows are taken from <thead> or from leading rows made
// only of <th> cells; without either, columns are named by position.
// Several header rows are flattened into one name per column by joining
// their non-placeholder levels with "_".
//
// Returns nil if the table has no rows.
func ParseTable(table *goquery.Selection, firstRowIsHeader bool) *wikiscraper.Table {
	html, _ := goquery.OuterHtml(table)

	grid := expandGrid(visibleOnly(table))
	if len(grid) == 0 {
		return nil
	}

	headerRows, skip := []int{0}, 1
	if !firstRowIsHeader {
		headerRows, skip = inferHeaderRows(grid)
	}

	var columns []string
	width := len(grid[0].cells)
	switch len(headerRows) {
	case 0:
		columns = make([]string, width)
		for i := range columns {
			columns[i] = strconv.Itoa(i)
		}
	case 1:
		columns = singleLevelColumns(grid[headerRows[0]].cells)
	default:
		levels := make([][]gridCell, len(headerRows))
		for j, i := range headerRows {
			levels[j] = grid[i].cells
		}
		columns = multiLevelColumns(levels, width)
	}

	rows := make([][]string, 0, len(grid)-skip)
	for _, r := range grid[skip:] {
		row := make([]string, width)
		for i, c := range r.cells {
			row[i] = c.text
		}
		rows = append(rows, row)
	}

	return &wikiscraper.Table{
		Columns: columns,
		Rows:    rows,
		HTML:    html,
	}
}

// inferHeaderRows returns the indexes of leading head rows that carry
// text, and the number of leading head rows to skip before the data.
// Head rows come from <thead> or consist solely of <th> cells.
func inferHeaderRows(grid []gridRow) (rows []int, skip int) {
	head := 0
	for i, r := range grid {
		if !r.inHead && !allHeaderCells(r.cells) {
			break
		}
		head++
		if rowHasText(r.cells) {
			rows = append(rows, i)
		}
	}
	// A table made only of header rows has no data to name; keep every
	// row as data instead.
	if head == len(grid) {
		return nil, 0
	}
	return rows, head
}

func allHeaderCells(cells []gridCell) bool {
	seen := false
	for _, c := range cells {
		if c.text == "" && !c.header {
			continue
		}
		if !c.header {
			return false
		}
		seen = true
	}
	return seen
}

func rowHasText(cells []gridCell) bool {
	for _, c := range cells {
		if c.text != "" {
			return true
		}
	}
	return false
}

// singleLevelColumns names columns from one header row. Blank names
// become "Unnamed: i" and repeated names gain a ".k" suffix.
func singleLevelColumns(cells []gridCell) []string {
	names := make([]string, len(cells))
	for i, c := range cells {
		names[i] = c.text
		if names[i] == "" {
			names[i] = fmt.Sprintf("Unnamed: %d", i)
		}
	}
	return dedupeNames(names)
}

// multiLevelColumns flattens several header rows into one name per
// column, dropping placeholder levels. A header spanning several levels
// repeats its name once per level.
func multiLevelColumns(levels [][]gridCell, width int) []string {
	names := make([]string, width)
	for i := range width {
		var parts []string
		for j, level := range levels {
			name := level[i].text
			if name == "" {
				name = fmt.Sprintf("Unnamed: %d_level_%d", i, j)
			}
			if strings.Contains(name, "Unnamed") {
				continue
			}
			parts = append(parts, name)
		}
		names[i] = strings.TrimSpace(strings.Join(parts, "_"))
	}
	return names
}

func dedupeNames(names []string) []string {
	seen := make(map[string]int, len(names))
	out := make([]string, len(names))
	for i, name := range names {
		candidate := name
		for {
			k, ok := seen[candidate]
			if !ok {
				break
			}
			seen[candidate] = k + 1
			candidate = fmt.Sprintf("%s.%d", name, k+1)
		}
		seen[candidate] = 0
		out[i] = candidate
	}
	return out
}

// visibleOnly returns a copy of table without elements hidden by an
// inline display:none style.
func visibleOnly(table *goquery.Selection) *goquery.Selection {
	clone := table.Clone()
	clone.Find("[style]").Each(func(_ int, s *goquery.Selection) {
		style := strings.ReplaceAll(strings.ToLower(s.AttrOr("style", "")), " ", "")
		if strings.Contains(style, "display:none") {
			s.Remove()
		}
	})
	return clone
}

// tableRows returns the rows that belong directly to table, excluding
// rows of nested tables.
func tableRows(table *goquery.Selection) []*goquery.Selection {
	var rows []*goquery.Selection
	table.ChildrenFiltered("thead, tbody, tfoot, tr").Each(func(_ int, s *goquery.Selection) {
		if goquery.NodeName(s) == "tr" {
			rows = append(rows, s)
			return
		}
		s.ChildrenFiltered("tr").Each(func(_ int, tr *goquery.Selection) {
			rows = append(rows, tr)
		})
	})
	return rows
}

// pendingSpan is a cell carried down into following rows by rowspan.
type pendingSpan struct {
	cell      gridCell
	remaining int
}

// expandGrid lays out the rows of table on a rectangular grid, copying
// the text of spanning cells into every position they cover.
func expandGrid(table *goquery.Selection) []gridRow {
	var grid []gridRow
	pending := make(map[int]*pendingSpan)
	width := 0

	takePending := func(row *[]gridCell, col int) bool {
		p, ok := pending[col]
		if !ok {
			return false
		}
		*row = append(*row, p.cell)
		p.remaining--
		if p.remaining == 0 {
			delete(pending, col)
		}
		return true
	}

	for _, tr := range tableRows(table) {
		cells := tr.ChildrenFiltered("td, th")
		if cells.Length() == 0 && len(pending) == 0 {
			continue
		}

		var row []gridCell
		cells.Each(func(_ int, td *goquery.Selection) {
			for takePending(&row, len(row)) {
			}
			c := gridCell{text: collapseText(td), header: goquery.NodeName(td) == "th"}
			colspan := spanAttr(td, "colspan", maxColspan)
			rowspan := spanAttr(td, "rowspan", maxRowspan)
			for range colspan {
				if rowspan > 1 {
					pending[len(row)] = &pendingSpan{cell: c, remaining: rowspan - 1}
				}
				row = append(row, c)
			}
		})
		for col := len(row); len(pending) > 0 && col < maxPendingColumn(pending)+1; col = len(row) {
			if !takePending(&row, col) {
				row = append(row, gridCell{})
			}
		}

		grid = append(grid, gridRow{
			cells:  row,
			inHead: goquery.NodeName(tr.Parent()) == "thead",
		})
		width = max(width, len(row))
	}

	for i := range grid {
		for len(grid[i].cells) < width {
			grid[i].cells = append(grid[i].cells, gridCell{})
		}
	}
	return grid
}

func maxPendingColumn(pending map[int]*pendingSpan) int {
	m := -1
	for col := range pending {
		m = max(m, col)
	}
	return m
}

func spanAttr(s *goquery.Selection, name string, limit int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s.AttrOr(name, "1")))
	if err != nil || v < 1 {
		return 1
	}
	return min(v, limit)
}
