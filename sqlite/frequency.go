package sqlite

import (
	"context"
	"fmt"

	"github.com/fwojciec/wikiscraper"
)

// Compile-time interface verification.
var _ wikiscraper.FrequencyStore = (*FrequencyStore)(nil)

// FrequencyStore implements wikiscraper.FrequencyStore on the word_counts table.
// Each merge is applied in a single transaction.
type FrequencyStore struct {
	db *DB
}

// NewFrequencyStore creates a new FrequencyStore.
func NewFrequencyStore(db *DB) *FrequencyStore {
	return &FrequencyStore{db: db}
}

// Load returns every stored count.
func (s *FrequencyStore) Load(ctx context.Context) (wikiscraper.WordCounts, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT word, count FROM word_counts")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(wikiscraper.WordCounts)
	for rows.Next() {
		var word string
		var count int
		if err := rows.Scan(&word, &count); err != nil {
			return nil, err
		}
		counts[word] = count
	}
	return counts, rows.Err()
}

// Merge adds counts to the stored counts.
func (s *FrequencyStore) Merge(ctx context.Context, counts wikiscraper.WordCounts) error {
	for w, n := range counts {
		if n < 0 {
			return wikiscraper.Errorf(wikiscraper.EINVALID, "negative count %d for %q", n, w)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO word_counts (word, count) VALUES (?, ?)
		ON CONFLICT(word) DO UPDATE SET count = count + excluded.count
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for w, n := range counts {
		if _, err := stmt.ExecContext(ctx, w, n); err != nil {
			return fmt.Errorf("merge %q: %w", w, err)
		}
	}

	return tx.Commit()
}

// Reset deletes every stored count.
func (s *FrequencyStore) Reset(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM word_counts")
	return err
}
