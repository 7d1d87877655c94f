package crawl

import (
	"strings"

	"github.com/fwojciec/wikiscraper"
)

// Compile-time interface verification.
var _ wikiscraper.Frontier = (*Frontier)(nil)

// minFrontierCapacity is the initial size of the ring buffer.
const minFrontierCapacity = 16

// Frontier is a FIFO queue of phrases backed by a ring buffer, with an
// exact set of every page ever pushed. Phrases naming the same page, such
// as "Team Rocket", "Team_Rocket" and "Team_Rocket#History", are pushed
// once. It is not safe for concurrent use.
type Frontier struct {
	buf  []wikiscraper.FrontierItem
	head int
	n    int
	seen map[string]struct{}
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{
		buf:  make([]wikiscraper.FrontierItem, minFrontierCapacity),
		seen: make(map[string]struct{}),
	}
}

// Push appends item to the back of the queue.
// Returns false if the phrase has already been pushed.
func (f *Frontier) Push(item wikiscraper.FrontierItem) bool {
	key := pageKey(item.Phrase)
	if _, ok := f.seen[key]; ok {
		return false
	}
	f.seen[key] = struct{}{}

	if f.n == len(f.buf) {
		f.grow()
	}
	f.buf[(f.head+f.n)%len(f.buf)] = item
	f.n++
	return true
}

// Pop removes and returns the item at the front of the queue.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (wikiscraper.FrontierItem, bool) {
	if f.n == 0 {
		return wikiscraper.FrontierItem{}, false
	}
	item := f.buf[f.head]
	f.buf[f.head] = wikiscraper.FrontierItem{}
	f.head = (f.head + 1) % len(f.buf)
	f.n--
	return item, true
}

// Len returns the number of queued items.
func (f *Frontier) Len() int {
	return f.n
}

// Seen returns true if the phrase has been pushed, whether or not it
// has since been popped.
func (f *Frontier) Seen(phrase string) bool {
	_, ok := f.seen[pageKey(phrase)]
	return ok
}

// pageKey identifies the page a phrase names: the fragment is dropped and
// the rest sanitized. Phrases that cannot be sanitized key as themselves.
func pageKey(phrase string) string {
	if i := strings.Index(phrase, "#"); i != -1 {
		phrase = phrase[:i]
	}
	key, err := wikiscraper.SanitizeIdentifier(phrase)
	if err != nil {
		return phrase
	}
	return key
}

// grow doubles the ring buffer, unrolling it so the head is at index 0.
func (f *Frontier) grow() {
	buf := make([]wikiscraper.FrontierItem, max(minFrontierCapacity, 2*len(f.buf)))
	for i := range f.n {
		buf[i] = f.buf[(f.head+i)%len(f.buf)]
	}
	f.buf = buf
	f.head = 0
}
