package main

import (
	"fmt"

	"github.com/fwojciec/wikiscraper"
)

// Run executes the clear command.
func (c *ClearCmd) Run(deps *Dependencies) error {
	if !c.Cache && !c.Data && !c.Counts && !c.History {
		fmt.Fprintf(deps.Stderr, "error: nothing to clear, use --cache, --data, --counts or --history\n")
		return wikiscraper.Errorf(wikiscraper.EINVALID, "nothing to clear")
	}

	steps := []struct {
		enabled bool
		name    string
		run     func() error
	}{
		{c.Cache, "cache", func() error { return deps.Cache.Clear() }},
		{c.Data, "tables", func() error { return deps.Tables.Clear() }},
		{c.Counts, "word counts", func() error { return deps.Store.Reset(deps.Ctx) }},
		{c.History, "history", func() error { return deps.Visits.DeleteVisits(deps.Ctx) }},
	}
	for _, s := range steps {
		if !s.enabled {
			continue
		}
		if err := s.run(); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wikiscraper.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Cleared %s\n", s.name)
	}
	return nil
}
