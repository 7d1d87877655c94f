// Package htmltomarkdown renders table markup as Markdown using
// github.com/JohannesKaufmann/html-to-markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/wikiscraper"
)

// Ensure Converter implements wikiscraper.Converter at compile time.
var _ wikiscraper.Converter = (*Converter)(nil)

// Converter renders HTML fragments, typically a single wiki table, as
// GitHub-flavoured Markdown. Spanning cells are repeated in every column
// and row they cover, matching the CSV export; empty rows are dropped and
// a table without <th> cells has its first row promoted to the header.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(
				table.WithSpanCellBehavior(table.SpanBehaviorMirror),
				table.WithHeaderPromotion(true),
				table.WithSkipEmptyRows(true),
			),
		),
	)
	return &Converter{conv: conv}
}

// Convert renders html as Markdown with surrounding whitespace trimmed.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", wikiscraper.Errorf(wikiscraper.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", wikiscraper.Errorf(wikiscraper.EINVALID, "convert table markup: %s", err)
	}

	return strings.TrimSpace(result), nil
}
