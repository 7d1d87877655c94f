package sqlite

import (
	"context"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/wikiscraper"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ wikiscraper.VisitService = (*VisitService)(nil)

// VisitService implements wikiscraper.VisitService using SQLite.
type VisitService struct {
	db  *DB
	now func() time.Time
}

// NewVisitService creates a new VisitService.
func NewVisitService(db *DB) *VisitService {
	return &VisitService{db: db, now: time.Now}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateVisit records a visit of a page with the given HTML.
func (s *VisitService) CreateVisit(ctx context.Context, v *wikiscraper.Visit, html string) error {
	if err := v.Validate(); err != nil {
		return err
	}

	v.ID = uuid.New().String()
	v.VisitedAt = s.now().UTC()
	v.ContentHash = hashContent(html)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visits (id, identifier, depth, distinct_words, total_words, content_hash, visited_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, v.ID, v.Identifier, v.Depth, v.DistinctWords, v.TotalWords, v.ContentHash,
		formatTime(v.VisitedAt))

	return err
}

// FindVisits retrieves visits matching the filter, most recent first.
func (s *VisitService) FindVisits(ctx context.Context, filter wikiscraper.VisitFilter) ([]*wikiscraper.Visit, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, identifier, depth, distinct_words, total_words, content_hash, visited_at FROM visits WHERE 1=1")

	if filter.Identifier != nil {
		query.WriteString(" AND identifier = ?")
		args = append(args, *filter.Identifier)
	}

	query.WriteString(" ORDER BY visited_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var visits []*wikiscraper.Visit
	for rows.Next() {
		var v wikiscraper.Visit
		var visitedAt string

		if err := rows.Scan(&v.ID, &v.Identifier, &v.Depth, &v.DistinctWords, &v.TotalWords,
			&v.ContentHash, &visitedAt); err != nil {
			return nil, err
		}

		if v.VisitedAt, err = parseTime(visitedAt, "visited_at"); err != nil {
			return nil, err
		}

		visits = append(visits, &v)
	}

	return visits, rows.Err()
}

// DeleteVisits removes every recorded visit.
func (s *VisitService) DeleteVisits(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM visits")
	return err
}
