package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/lexso"
	"github.com/fwojciec/lexso/bloom"
	"github.com/fwojciec/lexso/config"
	"github.com/fwojciec/lexso/fs"
	"github.com/fwojciec/lexso/goquery"
	"github.com/fwojciec/lexso/htmltomarkdown"
	lexsohttp "github.com/fwojciec/lexso/http"
	"github.com/fwojciec/lexso/pipeline"
	"github.com/fwojciec/lexso/reconcile"
	"github.com/fwojciec/lexso/scrape"
	lexsoslog "github.com/fwojciec/lexso/slog"
	"github.com/fwojciec/lexso/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Loaded configuration. Populated by Run.
	Config *config.Config

	// SQLite database used by the catalog and annotation services.
	DB *sqlite.DB

	// Services for end-to-end testing.
	CatalogService    lexso.CatalogService
	AnnotationService lexso.AnnotationService
}

// NewMain returns a new instance of Main.
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
		kong.Name("lexso"),
		kong.Description("Scrape, extract and reconcile Svenska ordboken entries"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'lexso --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set LEXSO_* variables or pass --config\n")
		return err
	}
	if cli.LogLevel != "" {
		cfg.Log.Level = cli.LogLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	m.Config = cfg
	deps.Config = cfg
	deps.Logger = lexsoslog.NewLogger(stderr, cfg.Log.Level, cfg.Log.Format)

	switch cmd := strings.Fields(kongCtx.Command())[0]; cmd {
	case "fetch":
		deps.Scraper = m.newScraper(deps)

	case "extract":
		deps.Pipeline = m.newPipeline(deps)

	case "show":
		deps.Pages = fs.NewArchive(cfg.Data.HTMLDir())
		deps.Converter = htmltomarkdown.NewConverter()

	case "catalog", "match", "annotations":
		if err := m.openDB(stderr); err != nil {
			return err
		}
		defer m.Close()

		deps.Catalog = m.CatalogService
		deps.Annotations = m.AnnotationService
		if cmd == "match" {
			deps.Reconciler = m.newReconciler(deps)
		}
	}

	return kongCtx.Run(deps)
}

func (m *Main) openDB(stderr io.Writer) error {
	path := m.Config.Data.DBPath
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create database directory %q: %w", dir, err)
		}
	}

	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set LEXSO_DB_PATH to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", path, err)
	}

	m.CatalogService = sqlite.NewCatalogService(m.DB)
	m.AnnotationService = sqlite.NewAnnotationService(m.DB)
	return nil
}

func (m *Main) newScraper(deps *Dependencies) *scrape.Scraper {
	fc := m.Config.Fetch

	opts := []lexsohttp.Option{lexsohttp.WithTimeout(fc.Timeout)}
	if fc.UserAgent != "" {
		opts = append(opts, lexsohttp.WithUserAgent(fc.UserAgent))
	}
	fetcher := lexsoslog.NewLoggingFetcher(lexsohttp.NewFetcher(opts...), deps.Logger)

	return &scrape.Scraper{
		Fetcher:     fetcher,
		Archive:     fs.NewArchive(m.Config.Data.HTMLDir()),
		RateLimiter: scrape.NewDomainLimiter(fc.RequestsPerSecond, scrape.WithBurst(fc.Burst)),
		Concurrency: fc.Concurrency,
		Logger:      deps.Logger,
		Strip:       goquery.ArticleBody,
	}
}

func (m *Main) newPipeline(deps *Dependencies) *pipeline.Pipeline {
	pc := m.Config.Pipeline

	p := &pipeline.Pipeline{
		Source:    fs.NewArchive(m.Config.Data.HTMLDir()),
		Extractor: lexsoslog.NewLoggingExtractor(goquery.NewExtractor(), deps.Logger),
		Store:     fs.NewDumper(m.Config.Data.Dir, pc.Version),
		Logger:    deps.Logger,
	}
	if pc.CrossDocument {
		p.Seen = bloom.NewFilter(pc.BloomCapacity, pc.BloomFPRate)
	}
	return p
}

func (m *Main) newReconciler(deps *Dependencies) *reconcile.Reconciler {
	rc := m.Config.Reconcile

	return &reconcile.Reconciler{
		Catalog:       m.CatalogService,
		Attacher:      lexsoslog.NewLoggingAttacher(m.AnnotationService, deps.Logger),
		Property:      rc.Property,
		SourceItemID:  rc.SourceItemID,
		AddNoValue:    rc.AddNoValue,
		NotFoundPause: rc.NotFoundPause,
		ProgressEvery: rc.ProgressEvery,
		Logger:        deps.Logger,
	}
}
