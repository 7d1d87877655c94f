package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/fwojciec/wikiscraper"
	"github.com/fwojciec/wikiscraper/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkMerge compares merge performance between rollback journal and WAL modes.
// This simulates a traversal workload: merging the words of many pages.
func BenchmarkMerge(b *testing.B) {
	b.Run("rollback_journal", func(b *testing.B) {
		benchmarkMerge(b, "DELETE")
	})

	b.Run("wal_mode", func(b *testing.B) {
		benchmarkMerge(b, "WAL")
	})
}

func benchmarkMerge(b *testing.B, journalMode string) {
	b.Helper()

	db := sqlite.NewDB(filepath.Join(b.TempDir(), "bench.db"))
	require.NoError(b, db.Open())
	defer db.Close()

	ctx := context.Background()
	_, err := db.ExecContext(ctx, "PRAGMA journal_mode = "+journalMode)
	require.NoError(b, err)

	// A page-sized vocabulary with overlap between consecutive pages.
	pages := make([]wikiscraper.WordCounts, 16)
	for i := range pages {
		pages[i] = make(wikiscraper.WordCounts, 500)
		for j := range 500 {
			pages[i][fmt.Sprintf("word%d", i*100+j)] = j%7 + 1
		}
	}

	store := sqlite.NewFrequencyStore(db)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := store.Merge(ctx, pages[i%len(pages)]); err != nil {
			b.Fatal(err)
		}
	}
}
