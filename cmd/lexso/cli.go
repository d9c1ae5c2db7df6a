package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/lexso"
	"github.com/fwojciec/lexso/config"
	"github.com/fwojciec/lexso/pipeline"
	"github.com/fwojciec/lexso/reconcile"
	"github.com/fwojciec/lexso/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Config      *config.Config
	Logger      *slog.Logger
	Scraper     *scrape.Scraper
	Pipeline    *pipeline.Pipeline
	Catalog     lexso.CatalogService
	Annotations lexso.AnnotationService
	Reconciler  *reconcile.Reconciler
	Pages       lexso.DocumentSource
	Converter   lexso.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config   string `short:"c" type:"path" help:"YAML configuration file"`
	LogLevel string `name:"log-level" help:"Override the configured log level (debug, info, warn, error)"`

	Fetch       FetchCmd       `cmd:"" help:"Download dictionary pages listed in an identifier file"`
	Extract     ExtractCmd     `cmd:"" help:"Extract entities from downloaded pages into JSONL files"`
	Catalog     CatalogCmd     `cmd:"" help:"Manage the dictionary word list"`
	Match       MatchCmd       `cmd:"" help:"Match lexemes against the word list and attach identifiers"`
	Annotations AnnotationsCmd `cmd:"" help:"List attached identifiers"`
	Show        ShowCmd        `cmd:"" help:"Render an archived page as Markdown"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	Path        string `arg:"" type:"existingfile" help:"Tab-separated file of page identifiers and entry names"`
	Concurrency int    `help:"Concurrent fetch limit (overrides config)"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Resume bool `short:"r" help:"Skip pages completed by an earlier run"`
}

// CatalogCmd groups the word list subcommands.
type CatalogCmd struct {
	Load CatalogLoadCmd `cmd:"" help:"Replace the word list with the contents of a CSV file"`
	Find CatalogFindCmd `cmd:"" help:"Show word list entries for a lemma"`
}

// CatalogLoadCmd is the "catalog load" subcommand.
type CatalogLoadCmd struct {
	Path string `arg:"" type:"existingfile" help:"Word list CSV file"`
}

// CatalogFindCmd is the "catalog find" subcommand.
type CatalogFindCmd struct {
	Lemma string `arg:"" help:"Lemma to look up"`
}

// MatchCmd is the "match" subcommand.
type MatchCmd struct {
	Path       string        `arg:"" type:"existingfile" help:"Tab-separated file of lexeme ids, lemmas and categories"`
	CountOnly  bool          `name:"count-only" help:"Only count outcomes, attach nothing"`
	AddNoValue bool          `name:"add-no-value" help:"Record a no-value claim for lemmas missing from the word list"`
	Pause      time.Duration `help:"Pause after each lemma missing from the word list (overrides config)"`
}

// AnnotationsCmd is the "annotations" subcommand.
type AnnotationsCmd struct {
	Lexeme string `help:"Only show identifiers attached to this lexeme"`
	Limit  int    `short:"n" default:"50" help:"Maximum number of identifiers to show"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Page identifier"`
}
