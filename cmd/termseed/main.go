// Command termseed generates the static seed file of React definitions.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/reactdict"
	"github.com/fwojciec/reactdict/fs"
	"github.com/fwojciec/reactdict/gemini"
	"github.com/fwojciec/reactdict/preload"
	rdslog "github.com/fwojciec/reactdict/slog"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
	"gopkg.in/yaml.v3"
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
	// EnvFile is loaded into the environment before flags are parsed.
	EnvFile string

	// Definer overrides the Gemini definer. Used by tests.
	Definer reactdict.Definer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{EnvFile: ".env"}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Out         string  `short:"o" type:"path" default:"terms.json" help:"Seed file to create or extend"`
	Terms       string  `short:"t" type:"existingfile" help:"YAML file with the terms to preload (default: built-in list)"`
	RPS         float64 `default:"1" help:"Generation requests per second"`
	Concurrency int     `short:"c" default:"1" help:"Concurrent generations"`
	Model       string  `env:"REACTDICT_MODEL" default:"${model}" help:"Gemini model"`
	APIKey      string  `name:"api-key" env:"GEMINI_API_KEY" hidden:"" help:"Gemini API key"`
	LogFormat   string  `enum:"text,json" default:"text" help:"Log format (text, json)"`
	LogLevel    string  `enum:"debug,info,warn,error" default:"warn" help:"Log level (debug, info, warn, error)"`
}

// termList is the YAML format of a custom term list.
type termList struct {
	Terms []string `yaml:"terms"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if m.EnvFile != "" {
		if err := godotenv.Load(m.EnvFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to load %s: %w", m.EnvFile, err)
		}
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("termseed"),
		kong.Description("Generate the seed file of preloaded React definitions"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"model": gemini.DefaultModel},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cli.LogLevel)); err != nil {
		return err
	}
	opts := &slog.HandlerOptions{Level: level}
	logger := slog.New(slog.NewTextHandler(stderr, opts))
	if cli.LogFormat == "json" {
		logger = slog.New(slog.NewJSONHandler(stderr, opts))
	}

	terms := preload.DefaultTerms()
	if cli.Terms != "" {
		if terms, err = loadTerms(cli.Terms); err != nil {
			return err
		}
	}

	definer := m.Definer
	if definer == nil {
		if cli.APIKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cli.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		definer = gemini.NewDefiner(client, cli.Model)
	}

	if cli.RPS <= 0 {
		return reactdict.Errorf(reactdict.EINVALID, "--rps must be positive")
	}

	p := &preload.Preloader{
		Definer:     rdslog.NewLoggingDefiner(definer, logger),
		Seeds:       fs.NewSeedFile(cli.Out),
		Limiter:     rate.NewLimiter(rate.Limit(cli.RPS), 1),
		Concurrency: cli.Concurrency,
		Logger:      logger,
	}

	result, err := p.Run(ctx, terms, func(e preload.ProgressEvent) {
		switch e.Type {
		case preload.ProgressStarted:
			fmt.Fprintf(stdout, "Generating definitions for %d new terms...\n", e.Total)
		case preload.ProgressCompleted:
			fmt.Fprintf(stdout, "[%d/%d] saved %q\n", e.Completed, e.Total, e.Term)
		case preload.ProgressFailed:
			fmt.Fprintf(stdout, "[%d/%d] failed %q: %s\n", e.Completed, e.Total, e.Term, reactdict.ErrorMessage(e.Error))
		}
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Done: %d generated, %d already present, %d failed (%d terms) in %s\n",
		result.Generated, result.Existing, result.Failed, result.Total, cli.Out)
	return nil
}

// loadTerms reads a custom term list. The file holds either a top-level
// "terms" key or a bare YAML sequence.
func loadTerms(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var list termList
	if err := yaml.Unmarshal(data, &list); err == nil && len(list.Terms) > 0 {
		return list.Terms, nil
	}

	var terms []string
	if err := yaml.Unmarshal(data, &terms); err != nil {
		return nil, reactdict.Errorf(reactdict.EINVALID, "invalid term list %s: %v", path, err)
	}
	if len(terms) == 0 {
		return nil, reactdict.Errorf(reactdict.EINVALID, "term list %s is empty", path)
	}
	return terms, nil
}
