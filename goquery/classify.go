package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// disallowedTableClasses mark layout, navigation and metadata tables.
var disallowedTableClasses = []string{
	"navbox",
	"vertical-navbox",
	"infobox",
	"metadata",
	"toc",
	"sisterproject",
	"mbox",
}

// IsRealTable reports whether table carries tabular data rather than
// page chrome. A table is rejected if any class token contains a
// disallowed class name, if it has fewer than two rows, or if no row has
// at least two cells with one of them holding text.
func IsRealTable(table *goquery.Selection) bool {
	for _, class := range strings.Fields(table.AttrOr("class", "")) {
		for _, bad := range disallowedTableClasses {
			if strings.Contains(class, bad) {
				return false
			}
		}
	}

	rows := table.Find("tr")
	if rows.Length() < 2 {
		return false
	}

	found := false
	rows.EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := row.Find("td, th")
		if cells.Length() < 2 {
			return true
		}
		cells.EachWithBreak(func(_ int, cell *goquery.Selection) bool {
			found = strings.TrimSpace(cell.Text()) != ""
			return !found
		})
		return !found
	})
	return found
}

// RealTables returns the genuine tables of content in document order.
func RealTables(content *goquery.Selection) []*goquery.Selection {
	if content == nil {
		return nil
	}
	var tables []*goquery.Selection
	content.Find("table").Each(func(_ int, table *goquery.Selection) {
		if IsRealTable(table) {
			tables = append(tables, table)
		}
	})
	return tables
}
