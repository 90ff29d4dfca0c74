package main

import (
	"context"
	"fmt"
	"io"
	stdlog "log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
	"github.com/ashton-krac/ibm-carbon-terminal-chatbot/crawl"
	"github.com/ashton-krac/ibm-carbon-terminal-chatbot/fs"
	"github.com/ashton-krac/ibm-carbon-terminal-chatbot/gemini"
	"github.com/ashton-krac/ibm-carbon-terminal-chatbot/goquery"
	"github.com/ashton-krac/ibm-carbon-terminal-chatbot/htmltomarkdown"
	carbonhttp "github.com/ashton-krac/ibm-carbon-terminal-chatbot/http"
	"github.com/ashton-krac/ibm-carbon-terminal-chatbot/openai"
	carbonslog "github.com/ashton-krac/ibm-carbon-terminal-chatbot/slog"
	"github.com/ashton-krac/ibm-carbon-terminal-chatbot/sqlite"
	"github.com/ashton-krac/ibm-carbon-terminal-chatbot/trafilatura"
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
	// Input stream for the interactive chat loop. Defaults to os.Stdin.
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Load API keys from a .env file when one is present.
	_ = godotenv.Load()

	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("carbon"),
		kong.Description("Chat with the IBM Carbon Design System documentation."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'carbon --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := commandName(kongCtx)

	level := stdlog.LevelInfo
	if cli.Verbose {
		level = stdlog.LevelDebug
	}
	logger := stdlog.New(stdlog.NewTextHandler(stderr, &stdlog.HandlerOptions{Level: level}))
	deps.Logger = logger

	// Wire core services into dependencies
	deps.Loader = carbonslog.NewLoggingLoader(fs.NewLoader(), logger)
	deps.NewWriter = func(path string) carbon.DocumentWriter {
		return fs.NewWriter(path)
	}
	deps.NewStore = func(dir string) carbon.IndexStore {
		return sqlite.NewIndexStore(dir)
	}

	// Wire command-specific dependencies based on command
	if cmd == "crawl" {
		fetcher := carbonslog.NewLoggingFetcher(carbonhttp.NewFetcher(), logger)
		defer fetcher.Close()

		deps.Crawler = &crawl.Crawler{
			Sitemaps:    carbonslog.NewLoggingSitemapService(carbonhttp.NewSitemapService(nil), logger),
			Fetcher:     fetcher,
			Extractor:   trafilatura.NewExtractor(),
			Converter:   htmltomarkdown.NewConverter(),
			Selector:    goquery.NewSelector(),
			Concurrency: cli.Crawl.Concurrency,
			MaxPages:    cli.Crawl.MaxPages,
		}
	}

	if cmd == "build" || cmd == "chat" {
		embedder, generator, err := newProvider(ctx, cli.Provider, stderr)
		if err != nil {
			return err
		}
		deps.Embedder = carbonslog.NewLoggingEmbedder(embedder, logger)
		deps.Generator = generator
	}

	return kongCtx.Run(deps)
}

// newProvider builds the embedding and generation services for the
// selected provider, reading the API key from the environment.
func newProvider(ctx context.Context, provider string, stderr io.Writer) (carbon.Embedder, carbon.Generator, error) {
	switch provider {
	case "gemini":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, nil, fmt.Errorf("GEMINI_API_KEY not set")
		}
		client, err := gemini.NewClient(ctx, apiKey)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewEmbedder(client), gemini.NewGenerator(client), nil
	default:
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "OPENAI_API_KEY environment variable not set. Get an API key at https://platform.openai.com/api-keys")
			return nil, nil, fmt.Errorf("OPENAI_API_KEY not set")
		}
		client := openai.NewClient(apiKey)
		return openai.NewEmbedder(client), openai.NewGenerator(client), nil
	}
}

// commandName returns the leading word of the resolved Kong command,
// e.g. "crawl" for "crawl <url>".
func commandName(kongCtx *kong.Context) string {
	name := kongCtx.Command()
	if i := strings.IndexByte(name, ' '); i >= 0 {
		return name[:i]
	}
	return name
}
