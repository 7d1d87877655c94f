package wikiscraper

import "context"

// FrontierItem is a phrase waiting to be visited during traversal.
type FrontierItem struct {
	Phrase string
	Depth  int
}

// Frontier manages a traversal queue with deduplication.
type Frontier interface {
	// Push adds an item to the back of the queue.
	// Returns false if the phrase has already been seen.
	Push(item FrontierItem) bool

	// Pop removes and returns the item at the front of the queue.
	// Returns false if the frontier is empty.
	Pop() (FrontierItem, bool)

	// Len returns the number of queued items.
	Len() int

	// Seen returns true if the phrase has been queued or visited.
	Seen(phrase string) bool
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
