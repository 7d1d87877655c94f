package main

import (
	"fmt"

	"github.com/fwojciec/wikiscraper"
)

// Run executes the table command.
func (c *TableCmd) Run(deps *Dependencies) error {
	page, err := deps.Pages.Page(deps.Ctx, c.Phrase)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiscraper.ErrorMessage(err))
		return err
	}

	table, err := deps.Extractor.Table(page, c.Number, c.FirstRowIsHeader)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiscraper.ErrorMessage(err))
		return err
	}
	if table == nil {
		fmt.Fprintf(deps.Stderr, "No table data found in %q.\n", c.Phrase)
		return nil
	}

	fmt.Fprint(deps.Stdout, wikiscraper.FormatValueCounts(table.ValueCounts()))

	if deps.Converter != nil && table.HTML != "" {
		md, err := deps.Converter.Convert(table.HTML)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "warning: no preview: %s\n", wikiscraper.ErrorMessage(err))
		} else {
			fmt.Fprintf(deps.Stdout, "\n%s\n\n", md)
		}
	}

	path, err := deps.Tables.WriteTable(table)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiscraper.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved table to %s\n", path)
	return nil
}
