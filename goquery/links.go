package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wikiscraper"
)

// LinkRules decide which hrefs point at articles.
type LinkRules struct {
	ArticlePrefix        string
	DisallowedPrefixes   []string
	DisallowedExtensions []string
	DisallowedLinks      []string
}

// LinkRulesFromConfig returns the link rules of cfg.
func LinkRulesFromConfig(cfg wikiscraper.Config) LinkRules {
	return LinkRules{
		ArticlePrefix:        cfg.ArticlePrefix,
		DisallowedPrefixes:   cfg.DisallowedPrefixes,
		DisallowedExtensions: cfg.DisallowedExtensions,
		DisallowedLinks:      cfg.DisallowedLinks,
	}
}

// Identifier returns the article identifier of a decoded href and
// whether the href is an allowed article link.
func (r LinkRules) Identifier(href string) (string, bool) {
	if r.ArticlePrefix == "" || !strings.HasPrefix(href, r.ArticlePrefix) {
		return "", false
	}
	for _, prefix := range r.DisallowedPrefixes {
		if strings.HasPrefix(href, prefix) {
			return "", false
		}
	}
	lower := strings.ToLower(href)
	for _, ext := range r.DisallowedExtensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return "", false
		}
	}
	for _, link := range r.DisallowedLinks {
		if href == link {
			return "", false
		}
	}
	id := strings.TrimPrefix(href, r.ArticlePrefix)
	return id, id != ""
}

// Links returns the distinct article identifiers of anchors in content,
// in first-occurrence order. Returns nil if content is nil.
func Links(content *goquery.Selection, rules LinkRules) []string {
	if content == nil {
		return nil
	}

	seen := make(map[string]struct{})
	var links []string
	content.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if decoded, err := url.PathUnescape(href); err == nil {
			href = decoded
		}
		id, ok := rules.Identifier(href)
		if !ok {
			return
		}
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
		links = append(links, id)
	})
	return links
}
