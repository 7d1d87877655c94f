package mock

import (
	"context"

	"github.com/fwojciec/wikiscraper"
)

var _ wikiscraper.Frontier = (*Frontier)(nil)

// Frontier is a mock implementation of wikiscraper.Frontier.
type Frontier struct {
	PushFn func(item wikiscraper.FrontierItem) bool
	PopFn  func() (wikiscraper.FrontierItem, bool)
	LenFn  func() int
	SeenFn func(phrase string) bool
}

func (f *Frontier) Push(item wikiscraper.FrontierItem) bool {
	return f.PushFn(item)
}

func (f *Frontier) Pop() (wikiscraper.FrontierItem, bool) {
	return f.PopFn()
}

func (f *Frontier) Len() int {
	return f.LenFn()
}

func (f *Frontier) Seen(phrase string) bool {
	return f.SeenFn(phrase)
}

var _ wikiscraper.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of wikiscraper.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
