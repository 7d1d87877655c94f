// Package wikiscraper provides a CLI-based research tool for wiki articles.
// It fetches article pages, extracts summaries, data tables and outbound
// links, accumulates word frequencies across pages, and compares article
// vocabulary against general language frequency.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, fs/).
package wikiscraper
