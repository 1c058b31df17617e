package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/reactdict"
)

// Importer loads seed definitions into the dictionary.
type Importer interface {
	Import(ctx context.Context, defs []*reactdict.Definition) (int, error)
}

// TermLister lists the names of known terms.
type TermLister interface {
	Terms(ctx context.Context) ([]string, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Definitions reactdict.DefinitionService
	Bookmarks   reactdict.BookmarkService
	Searches    reactdict.SearchService
	Matcher     reactdict.TermMatcher
	Lookup      reactdict.Lookup
	Suggestions reactdict.SuggestionService
	Moderation  reactdict.ModerationService
	Importer    Importer
	Terms       TermLister

	// Seeds is the seed file imported when the server starts. Nil if unset.
	Seeds reactdict.SeedStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB         string `name:"db" env:"REACTDICT_DB" type:"path" help:"SQLite database path (default: ~/.reactdict/reactdict.db)"`
	Seed       string `env:"REACTDICT_SEED" type:"path" help:"Seed definitions file imported on serve"`
	Model      string `env:"REACTDICT_MODEL" default:"${model}" help:"Gemini model used to generate definitions"`
	APIKey     string `name:"api-key" env:"GEMINI_API_KEY" hidden:"" help:"Gemini API key"`
	References bool   `env:"REACTDICT_REFERENCES" help:"Ground generated definitions in react.dev reference pages"`
	LogFormat  string `enum:"text,json" default:"text" help:"Log format (text, json)"`
	LogLevel   string `enum:"debug,info,warn,error" default:"info" help:"Log level (debug, info, warn, error)"`

	Serve    ServeCmd    `cmd:"" help:"Serve the dictionary API and front end"`
	Define   DefineCmd   `cmd:"" help:"Look up or generate the definition of a term"`
	Suggest  SuggestCmd  `cmd:"" help:"Suggest a term for review"`
	Review   ReviewCmd   `cmd:"" help:"List terms awaiting or past moderation"`
	Approve  ApproveCmd  `cmd:"" help:"Approve a term, generating it first if needed"`
	Reject   RejectCmd   `cmd:"" help:"Reject a suggested term"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a term"`
	Bookmark BookmarkCmd `cmd:"" help:"Manage bookmarked terms"`
	History  HistoryCmd  `cmd:"" help:"Show or clear recent searches"`
	Export   ExportCmd   `cmd:"" help:"Export definitions as markdown files"`
	Import   ImportCmd   `cmd:"" help:"Import seed definitions from a JSON file"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr       string  `env:"REACTDICT_ADDR" default:":3001" help:"Listen address"`
	Static     string  `env:"REACTDICT_STATIC" type:"path" help:"Directory with the built front end"`
	AdminToken string  `name:"admin-token" env:"REACTDICT_ADMIN_TOKEN" help:"Bearer token required on admin routes"`
	RPS        float64 `default:"1" help:"Per-client requests per second on model-backed routes"`
	Burst      int     `default:"5" help:"Per-client request burst on model-backed routes"`
}

// DefineCmd is the "define" subcommand.
type DefineCmd struct {
	Term string `arg:"" help:"React term to define"`
	JSON bool   `name:"json" help:"Print the definition as JSON"`
}

// SuggestCmd is the "suggest" subcommand.
type SuggestCmd struct {
	Term    string `arg:"" help:"React term to suggest"`
	Details string `arg:"" optional:"" help:"Additional context for reviewers"`
}

// ReviewCmd is the "review" subcommand.
type ReviewCmd struct {
	Filter string `short:"f" enum:"all,suggested,moderated" default:"all" help:"Which terms to list (all, suggested, moderated)"`
}

// ApproveCmd is the "approve" subcommand.
type ApproveCmd struct {
	ID string `arg:"" help:"Term ID"`
}

// RejectCmd is the "reject" subcommand.
type RejectCmd struct {
	ID string `arg:"" help:"Term ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Term ID"`
	Force bool   `help:"Confirm deletion"`
}

// BookmarkCmd groups the bookmark subcommands.
type BookmarkCmd struct {
	Add BookmarkAddCmd `cmd:"" help:"Bookmark a term"`
	Rm  BookmarkRmCmd  `cmd:"" help:"Remove a bookmark"`
	Ls  BookmarkLsCmd  `cmd:"" default:"1" help:"List bookmarks"`
}

// BookmarkAddCmd is the "bookmark add" subcommand.
type BookmarkAddCmd struct {
	Term string `arg:"" help:"Term to bookmark"`
}

// BookmarkRmCmd is the "bookmark rm" subcommand.
type BookmarkRmCmd struct {
	ID string `arg:"" help:"Bookmark ID"`
}

// BookmarkLsCmd is the "bookmark ls" subcommand.
type BookmarkLsCmd struct{}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Clear bool `help:"Clear the search history"`
	Limit int  `short:"n" default:"5" help:"Number of searches to show"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir string `arg:"" type:"path" help:"Output directory"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	File string `arg:"" type:"existingfile" help:"Seed definitions JSON file"`
}
