package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/wikiscraper"
	main "github.com/fwojciec/wikiscraper/cmd/wikiscraper"
	"github.com/fwojciec/wikiscraper/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists visits with filter", func(t *testing.T) {
		t.Parallel()

		var got wikiscraper.VisitFilter
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Visits: &mock.VisitService{
				FindVisitsFn: func(_ context.Context, filter wikiscraper.VisitFilter) ([]*wikiscraper.Visit, error) {
					got = filter
					return []*wikiscraper.Visit{{
						ID:            "v1",
						Identifier:    "Team_Rocket",
						Depth:         1,
						DistinctWords: 42,
						TotalWords:    100,
						ContentHash:   "abc123",
						VisitedAt:     time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
					}}, nil
				},
			},
		}

		err := (&main.HistoryCmd{Limit: 5, Phrase: "Team Rocket"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 5, got.Limit)
		require.NotNil(t, got.Identifier)
		assert.Equal(t, "Team_Rocket", *got.Identifier)
		assert.Contains(t, stdout.String(), "Team_Rocket")
		assert.Contains(t, stdout.String(), "words=42/100")
	})

	t.Run("shows helpful message when empty", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Visits: &mock.VisitService{
				FindVisitsFn: func(context.Context, wikiscraper.VisitFilter) ([]*wikiscraper.Visit, error) {
					return nil, nil
				},
			},
		}

		err := (&main.HistoryCmd{Limit: 20}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No visits recorded")
	})
}
