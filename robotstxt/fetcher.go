// Package robotstxt enforces robots.txt rules using github.com/temoto/robotstxt.
package robotstxt

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fwojciec/wikiscraper"
	"github.com/temoto/robotstxt"
)

// Ensure Fetcher implements wikiscraper.Fetcher at compile time.
var _ wikiscraper.Fetcher = (*Fetcher)(nil)

// Fetcher refuses to fetch URLs that the site's robots.txt disallows for
// the configured user agent. Rules are fetched once per site through the
// wrapped fetcher. A site without robots.txt allows everything.
type Fetcher struct {
	next   wikiscraper.Fetcher
	agent  string
	groups map[string]*robotstxt.Group
}

// NewFetcher returns a Fetcher checking rules for agent.
func NewFetcher(next wikiscraper.Fetcher, agent string) *Fetcher {
	return &Fetcher{
		next:   next,
		agent:  agent,
		groups: make(map[string]*robotstxt.Group),
	}
}

// Fetch fetches rawURL if robots.txt allows it, and returns EFORBIDDEN otherwise.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "", wikiscraper.Errorf(wikiscraper.EINVALID, "invalid URL %q", rawURL)
	}

	group, err := f.group(ctx, u)
	if err != nil {
		return "", err
	}
	if !group.Test(u.EscapedPath()) {
		return "", wikiscraper.Errorf(wikiscraper.EFORBIDDEN, "%s is disallowed by robots.txt", rawURL)
	}

	return f.next.Fetch(ctx, rawURL)
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}

func (f *Fetcher) group(ctx context.Context, u *url.URL) (*robotstxt.Group, error) {
	site := u.Scheme + "://" + u.Host
	if g, ok := f.groups[site]; ok {
		return g, nil
	}

	var data *robotstxt.RobotsData
	body, err := f.next.Fetch(ctx, site+"/robots.txt")
	switch {
	case wikiscraper.ErrorCode(err) == wikiscraper.ENOTFOUND:
		data, err = robotstxt.FromStatusAndString(404, "")
	case err != nil:
		return nil, fmt.Errorf("robots.txt of %s: %w", u.Host, err)
	default:
		data, err = robotstxt.FromString(body)
	}
	if err != nil {
		return nil, wikiscraper.Errorf(wikiscraper.EINVALID, "parse robots.txt of %s: %s", u.Host, err)
	}

	g := data.FindGroup(f.agent)
	f.groups[site] = g
	return g, nil
}
