package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/wikiscraper"
	"github.com/fwojciec/wikiscraper/mock"
	wsslog "github.com/fwojciec/wikiscraper/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingPageSource_Page(t *testing.T) {
	t.Parallel()

	t.Run("logs identifier and size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PageSource{
			PageFn: func(ctx context.Context, phrase string) (*wikiscraper.Page, error) {
				return &wikiscraper.Page{Identifier: "Team_Rocket", HTML: "<p>hi</p>"}, nil
			},
		}

		source := wsslog.NewLoggingPageSource(inner, logger)
		page, err := source.Page(context.Background(), "Team Rocket")

		require.NoError(t, err)
		assert.Equal(t, "Team_Rocket", page.Identifier)
		output := buf.String()
		assert.Contains(t, output, "msg=page")
		assert.Contains(t, output, `phrase="Team Rocket"`)
		assert.Contains(t, output, "identifier=Team_Rocket")
		assert.Contains(t, output, "bytes=9")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PageSource{
			PageFn: func(ctx context.Context, phrase string) (*wikiscraper.Page, error) {
				return nil, errors.New("not reachable")
			},
		}

		source := wsslog.NewLoggingPageSource(inner, logger)
		_, err := source.Page(context.Background(), "Pikachu")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "bytes=0")
		assert.Contains(t, output, `err="not reachable"`)
	})
}
