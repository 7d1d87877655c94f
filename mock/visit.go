package mock

import (
	"context"

	"github.com/fwojciec/wikiscraper"
)

var _ wikiscraper.VisitService = (*VisitService)(nil)

// VisitService is a mock implementation of wikiscraper.VisitService.
type VisitService struct {
	CreateVisitFn  func(ctx context.Context, v *wikiscraper.Visit, html string) error
	FindVisitsFn   func(ctx context.Context, filter wikiscraper.VisitFilter) ([]*wikiscraper.Visit, error)
	DeleteVisitsFn func(ctx context.Context) error
}

func (s *VisitService) CreateVisit(ctx context.Context, v *wikiscraper.Visit, html string) error {
	return s.CreateVisitFn(ctx, v, html)
}

func (s *VisitService) FindVisits(ctx context.Context, filter wikiscraper.VisitFilter) ([]*wikiscraper.Visit, error) {
	return s.FindVisitsFn(ctx, filter)
}

func (s *VisitService) DeleteVisits(ctx context.Context) error {
	return s.DeleteVisitsFn(ctx)
}
