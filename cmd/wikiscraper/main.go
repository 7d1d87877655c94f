package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wikiscraper"
	"github.com/fwojciec/wikiscraper/crawl"
	"github.com/fwojciec/wikiscraper/fs"
	"github.com/fwojciec/wikiscraper/goquery"
	"github.com/fwojciec/wikiscraper/htmltomarkdown"
	wshttp "github.com/fwojciec/wikiscraper/http"
	"github.com/fwojciec/wikiscraper/plot"
	"github.com/fwojciec/wikiscraper/prometheus"
	"github.com/fwojciec/wikiscraper/robotstxt"
	wsslog "github.com/fwojciec/wikiscraper/slog"
	"github.com/fwojciec/wikiscraper/sqlite"
	"github.com/fwojciec/wikiscraper/wordfreq"
	"github.com/fwojciec/wikiscraper/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher overrides the HTTP fetcher. Set before calling Run().
	Fetcher wikiscraper.Fetcher

	// SQLite database used by the visit history and the sqlite store.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wikiscraper"),
		kong.Description("Read summaries, tables and word statistics from wiki articles."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		fmt.Fprintln(stderr, "error: no command specified. Run 'wikiscraper --help' to see available commands")
		return wikiscraper.Errorf(wikiscraper.EINVALID, "no command specified")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	cfg, err := loadConfig(cli)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", wikiscraper.ErrorMessage(err))
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Only commands that record or read history, and the sqlite store,
	// need the database.
	needDB := cli.Store == "sqlite" ||
		cmd == "count_words" || cmd == "auto_count_words" || cmd == "history" ||
		(cmd == "clear" && cli.Clear.History)
	if needDB {
		m.DB = sqlite.NewDB(cfg.DatabasePath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "error: cannot open database %s\n", cfg.DatabasePath)
			fmt.Fprintf(stderr, "Hint: Set WIKISCRAPER_DB or --db to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", cfg.DatabasePath, err)
		}
		defer m.Close()
		deps.Visits = sqlite.NewVisitService(m.DB)
	}

	var metrics *prometheus.Metrics
	if cli.Metrics != "" {
		metrics = prometheus.NewMetrics()
	}

	var store wikiscraper.FrequencyStore = fs.NewFrequencyStore(cfg.WordCountsPath)
	if cli.Store == "sqlite" {
		store = sqlite.NewFrequencyStore(m.DB)
	}
	if metrics != nil {
		store = metrics.FrequencyStore(store)
	}
	deps.Store = wsslog.NewLoggingFrequencyStore(store, logger)

	cache := fs.NewPageCache(cfg.CacheDir, cfg.MaxCacheSize)
	deps.Cache = cache
	deps.Extractor = goquery.NewExtractor(cfg)
	deps.Tables = fs.NewTableWriter(cfg.DataDir)
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Charts = plot.NewChartRenderer()

	switch cmd {
	case "summary", "count_words", "table", "auto_count_words":
		fetcher := m.Fetcher
		if fetcher == nil {
			f := wshttp.NewFetcher(wshttp.WithTimeout(cfg.Timeout), wshttp.WithUserAgent(cfg.UserAgent))
			defer f.Close()
			fetcher = f
		}
		if metrics != nil {
			fetcher = metrics.Fetcher(fetcher)
		}
		if cfg.RespectRobots {
			fetcher = robotstxt.NewFetcher(fetcher, cfg.UserAgent)
		}

		source := &crawl.PageSource{
			Config:  cfg,
			Fetcher: wsslog.NewLoggingFetcher(fetcher, logger),
			Cache:   cache,
		}
		if cmd == "auto_count_words" {
			wait := time.Duration(cli.AutoCountWords.Wait * float64(time.Second))
			source.Limiter = crawl.NewWaitLimiter(wait)
		}
		deps.Pages = wsslog.NewLoggingPageSource(source, logger)

		deps.Crawler = &crawl.Crawler{
			Pages:     deps.Pages,
			Extractor: deps.Extractor,
			Store:     deps.Store,
			Visits:    deps.Visits,
		}

	case "analyze_relative_word_frequency":
		lang, err := loadWordlist(cli.Wordlist)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", wikiscraper.ErrorMessage(err))
			return err
		}
		deps.Language = lang
	}

	err = kongCtx.Run(deps)
	if metrics != nil {
		if werr := metrics.WriteTextfile(cli.Metrics); werr != nil {
			fmt.Fprintf(stderr, "warning: write metrics to %s: %s\n", cli.Metrics, werr)
		}
	}
	return err
}

// loadConfig reads the configuration file and applies flag overrides.
// The default file is optional; an explicitly named one must exist.
func loadConfig(cli *CLI) (wikiscraper.Config, error) {
	path := cli.Config
	if path == "" {
		path = yaml.DefaultPath
	}
	cfg, err := yaml.LoadConfig(path)
	if err != nil && (cli.Config != "" || wikiscraper.ErrorCode(err) != wikiscraper.ENOTFOUND) {
		return cfg, err
	}

	if cli.CacheDir != "" {
		cfg.CacheDir = cli.CacheDir
	}
	if cli.DataDir != "" {
		cfg.DataDir = cli.DataDir
	}
	if cli.CountsFile != "" {
		cfg.WordCountsPath = cli.CountsFile
	}
	if cli.DB != "" {
		cfg.DatabasePath = cli.DB
	}
	if cli.Robots {
		cfg.RespectRobots = true
	}
	return cfg, nil
}

// loadWordlist returns the embedded English list unless path names another.
func loadWordlist(path string) (*wordfreq.List, error) {
	if path == "" {
		return wordfreq.English(), nil
	}
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, wikiscraper.Errorf(wikiscraper.ENOTFOUND, "word list %s not found", path)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()
	return wordfreq.Load(f)
}
