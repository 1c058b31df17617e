package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/reactdict"
	"github.com/fwojciec/reactdict/dictionary"
	"github.com/fwojciec/reactdict/fs"
	"github.com/fwojciec/reactdict/fuzzy"
	"github.com/fwojciec/reactdict/gemini"
	"github.com/fwojciec/reactdict/goquery"
	"github.com/fwojciec/reactdict/htmltomarkdown"
	rdhttp "github.com/fwojciec/reactdict/http"
	"github.com/fwojciec/reactdict/readability"
	"github.com/fwojciec/reactdict/reference"
	rdslog "github.com/fwojciec/reactdict/slog"
	"github.com/fwojciec/reactdict/sqlite"
	"github.com/fwojciec/reactdict/trafilatura"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when --db is not given. Set before calling Run().
	DBPath string

	// EnvFile is loaded into the environment before flags are parsed.
	// Missing files are ignored.
	EnvFile string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	closers []io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:  defaultDBPath(),
		EnvFile: ".env",
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	for _, c := range m.closers {
		_ = c.Close()
	}
	m.closers = nil
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if m.EnvFile != "" {
		if err := godotenv.Load(m.EnvFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to load %s: %w", m.EnvFile, err)
		}
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("reactdict"),
		kong.Description("A dictionary of React terms explained for beginners"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"model": gemini.DefaultModel},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'reactdict --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(stderr, cli.LogFormat, cli.LogLevel)
	if err != nil {
		return err
	}
	deps.Logger = logger

	dbPath := cli.DB
	if dbPath == "" {
		dbPath = m.DBPath
	}
	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set REACTDICT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	defer m.Close()

	if err := m.wire(ctx, cli, deps); err != nil {
		return err
	}

	return kongCtx.Run(deps)
}

// wire builds the services shared by all commands.
func (m *Main) wire(ctx context.Context, cli *CLI, deps *Dependencies) error {
	logger := deps.Logger

	definitions := sqlite.NewDefinitionService(m.DB)
	deps.Definitions = definitions
	deps.Bookmarks = sqlite.NewBookmarkService(m.DB)
	deps.Searches = sqlite.NewSearchService(m.DB)
	deps.Matcher = fuzzy.NewMatcher()

	var client *genai.Client
	if cli.APIKey != "" {
		var err error
		client, err = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cli.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
	}

	dict := dictionary.New(definitions, rdslog.NewLoggingDefiner(gemini.NewDefiner(client, cli.Model), logger))

	if cli.References {
		finder, err := m.newReferenceFinder(logger)
		if err != nil {
			return err
		}
		dict.References = rdslog.NewLoggingReferenceFinder(finder, logger)
	}

	deps.Lookup = rdslog.NewLoggingLookup(dict, logger)
	deps.Suggestions = dict
	deps.Moderation = dict
	deps.Importer = dict
	deps.Terms = dict
	if cli.Seed != "" {
		deps.Seeds = fs.NewSeedFile(cli.Seed)
	}
	return nil
}

// newReferenceFinder builds the react.dev reference pipeline.
func (m *Main) newReferenceFinder(logger *slog.Logger) (*reference.Finder, error) {
	tokenCounter, err := gemini.NewTokenCounter(gemini.DefaultModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create token counter: %w", err)
	}

	fetcher := rdslog.NewLoggingFetcher(rdhttp.NewFetcher(), logger)
	m.closers = append(m.closers, fetcher)

	return &reference.Finder{
		Fetcher: fetcher,
		Index:   goquery.NewIndex(),
		Extractors: []reactdict.Extractor{
			trafilatura.NewExtractor(),
			readability.NewExtractor(),
		},
		Converter:    htmltomarkdown.NewConverter("react.dev"),
		TokenCounter: tokenCounter,
		Logger: func(format string, args ...any) {
			logger.Info(fmt.Sprintf(format, args...))
		},
	}, nil
}

// newLogger builds the process logger from the --log-format and
// --log-level flags.
func newLogger(w io.Writer, format, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, reactdict.Errorf(reactdict.EINVALID, "invalid log level %q", level)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, reactdict.Errorf(reactdict.EINVALID, "invalid log format %q", format)
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "reactdict.db"
	}
	dir := filepath.Join(home, ".reactdict")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "reactdict.db")
}
