package wikiscraper

import (
	"context"
	"time"
)

// Visit records one page whose words were merged into the frequency store.
type Visit struct {
	ID            string    `json:"id"`
	Identifier    string    `json:"identifier"`
	Depth         int       `json:"depth"`
	DistinctWords int       `json:"distinctWords"`
	TotalWords    int       `json:"totalWords"`
	ContentHash   string    `json:"contentHash"`
	VisitedAt     time.Time `json:"visitedAt"`
}

// Validate returns an error if the visit contains invalid fields.
func (v *Visit) Validate() error {
	if v.Identifier == "" {
		return Errorf(EINVALID, "visit identifier required")
	}
	if v.Depth < 0 {
		return Errorf(EINVALID, "visit depth must not be negative")
	}
	return nil
}

// VisitService represents a service for recording page visits.
type VisitService interface {
	// CreateVisit records a new visit. ID, ContentHash and VisitedAt
	// are assigned by the service.
	CreateVisit(ctx context.Context, v *Visit, html string) error

	// FindVisits retrieves visits matching the filter, most recent first.
	FindVisits(ctx context.Context, filter VisitFilter) ([]*Visit, error)

	// DeleteVisits removes every recorded visit.
	DeleteVisits(ctx context.Context) error
}

// VisitFilter represents a filter for FindVisits.
type VisitFilter struct {
	Identifier *string `json:"identifier"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
