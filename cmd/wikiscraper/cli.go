package main

import (
	"context"
	"io"

	"github.com/fwojciec/wikiscraper"
	"github.com/fwojciec/wikiscraper/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Pages     wikiscraper.PageSource
	Cache     wikiscraper.PageCache
	Extractor wikiscraper.Extractor
	Store     wikiscraper.FrequencyStore
	Tables    wikiscraper.TableWriter
	Converter wikiscraper.Converter
	Language  wikiscraper.LanguageFrequencies
	Charts    wikiscraper.ChartRenderer
	Visits    wikiscraper.VisitService
	Crawler   *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config     string `help:"Path to a YAML configuration file" placeholder:"PATH" env:"WIKISCRAPER_CONFIG"`
	CacheDir   string `name:"cache-dir" help:"Directory of cached HTML pages" placeholder:"DIR" env:"WIKISCRAPER_CACHE_DIR"`
	DataDir    string `name:"data-dir" help:"Directory for extracted CSV tables" placeholder:"DIR" env:"WIKISCRAPER_DATA_DIR"`
	CountsFile string `name:"counts-file" help:"JSON file holding cumulative word counts" placeholder:"PATH" env:"WIKISCRAPER_COUNTS_FILE"`
	DB         string `name:"db" help:"SQLite database for visit history" placeholder:"PATH" env:"WIKISCRAPER_DB"`
	Store      string `enum:"json,sqlite" default:"json" help:"Word count backend (json, sqlite)" env:"WIKISCRAPER_STORE"`
	Wordlist   string `help:"Tab-separated language word list to compare against (default: embedded list of the 199 most common English words)" placeholder:"PATH" env:"WIKISCRAPER_WORDLIST"`
	Robots     bool   `name:"respect-robots" help:"Refuse pages disallowed by the wiki's robots.txt" env:"WIKISCRAPER_RESPECT_ROBOTS"`
	Metrics    string `name:"metrics-file" help:"Write Prometheus metrics of this run to a textfile" placeholder:"PATH" env:"WIKISCRAPER_METRICS_FILE"`
	Verbose    bool   `short:"v" help:"Log every fetch and store operation"`

	Summary        SummaryCmd        `cmd:"" help:"Print the first paragraph of an article"`
	CountWords     CountWordsCmd     `cmd:"" name:"count_words" help:"Add the words of an article to the word counts"`
	Table          TableCmd          `cmd:"" help:"Extract a table from an article to CSV"`
	Analyze        AnalyzeCmd        `cmd:"" name:"analyze_relative_word_frequency" help:"Compare article word counts with the language"`
	AutoCountWords AutoCountWordsCmd `cmd:"" name:"auto_count_words" help:"Count words of an article and the articles it links to"`
	History        HistoryCmd        `cmd:"" help:"List recently counted articles"`
	Clear          ClearCmd          `cmd:"" help:"Remove cached pages, tables, counts or history"`
}

// SummaryCmd is the "summary" subcommand.
type SummaryCmd struct {
	Phrase string `arg:"" help:"Article name"`
}

// CountWordsCmd is the "count_words" subcommand.
type CountWordsCmd struct {
	Phrase string `arg:"" help:"Article name"`
}

// TableCmd is the "table" subcommand.
type TableCmd struct {
	Phrase           string `arg:"" help:"Article name"`
	Number           int    `short:"n" required:"" help:"1-based number of the table among the article's data tables"`
	FirstRowIsHeader bool   `name:"first-row-is-header" help:"Use the first row as column names"`
}

// AnalyzeCmd is the "analyze_relative_word_frequency" subcommand.
type AnalyzeCmd struct {
	Mode  string `enum:"article,language" required:"" help:"Where compared words come from (article, language)"`
	Count int    `required:"" help:"Number of words to compare; fewer are shown when the article or word list has fewer"`
	Chart string `help:"Write a bar chart to this image file (.png, .svg, .pdf, ...)" placeholder:"PATH"`
}

// AutoCountWordsCmd is the "auto_count_words" subcommand.
type AutoCountWordsCmd struct {
	Phrase string  `arg:"" help:"Article to start from"`
	Depth  int     `required:"" help:"Maximum number of links to follow from the start article"`
	Wait   float64 `required:"" help:"Seconds to wait between remote fetches"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit  int    `default:"20" help:"Maximum number of visits to show"`
	Phrase string `help:"Only show visits of this article"`
}

// ClearCmd is the "clear" subcommand.
type ClearCmd struct {
	Cache   bool `help:"Remove cached HTML pages"`
	Data    bool `help:"Remove extracted CSV tables"`
	Counts  bool `help:"Reset the word counts"`
	History bool `help:"Remove visit history"`
}
