package wikiscraper

import (
	"net/url"
	"strings"
	"time"
)

// Config holds the site and storage settings shared by every command.
type Config struct {
	// BaseURL is the absolute URL that article phrases are appended to.
	BaseURL string

	// ArticlePrefix is the href path prefix of internal articles.
	ArticlePrefix string

	// DisallowedPrefixes are href prefixes of non-article namespaces.
	DisallowedPrefixes []string

	// DisallowedExtensions are href suffixes of non-article files.
	DisallowedExtensions []string

	// DisallowedLinks are hrefs that are never followed.
	DisallowedLinks []string

	CacheDir       string
	MaxCacheSize   int
	DataDir        string
	WordCountsPath string
	DatabasePath   string

	UserAgent string
	Timeout   time.Duration

	// RespectRobots refuses fetches disallowed by the site's robots.txt.
	RespectRobots bool
}

// DefaultConfig returns the configuration for Bulbapedia.
func DefaultConfig() Config {
	return Config{
		BaseURL:       "https://bulbapedia.bulbagarden.net/wiki/",
		ArticlePrefix: "/wiki/",
		DisallowedPrefixes: []string{
			"/wiki/Special:",
			"/wiki/Help:",
			"/wiki/Category:",
			"/wiki/File:",
			"/wiki/Template:",
			"/wiki/Bulbapedia:",
		},
		DisallowedExtensions: []string{
			".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp", ".bmp", ".tif", ".tiff",
		},
		DisallowedLinks: []string{
			"/wiki/Main_Page",
		},
		CacheDir:       "cache",
		MaxCacheSize:   500,
		DataDir:        "data",
		WordCountsPath: "word-counts.json",
		DatabasePath:   "wikiscraper.db",
		UserAgent:      "wikiscraper/1.0 (+https://github.com/fwojciec/wikiscraper)",
		Timeout:        15 * time.Second,
	}
}

// Validate returns an error if the configuration cannot be used.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return Errorf(EINVALID, "base URL required")
	}
	if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return Errorf(EINVALID, "base URL %q must be absolute", c.BaseURL)
	}
	if c.ArticlePrefix == "" {
		return Errorf(EINVALID, "article prefix required")
	}
	if c.MaxCacheSize < 0 {
		return Errorf(EINVALID, "max cache size must not be negative")
	}
	return nil
}

// ArticleURL returns the remote URL of the article named by phrase.
// Any fragment is dropped, spaces become underscores and the remainder
// is percent-encoded as a path, keeping subpage slashes.
func (c *Config) ArticleURL(phrase string) string {
	if i := strings.Index(phrase, "#"); i != -1 {
		phrase = phrase[:i]
	}
	if decoded, err := url.PathUnescape(phrase); err == nil {
		phrase = decoded
	}
	phrase = strings.ReplaceAll(strings.TrimSpace(phrase), " ", "_")
	phrase = strings.ReplaceAll(url.PathEscape(strings.TrimPrefix(phrase, "/")), "%2F", "/")

	base := c.BaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + phrase
}
