package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	insideideo "github.com/niravbeni/inside-ideo"
	"github.com/niravbeni/inside-ideo/clipboard"
	ideohttp "github.com/niravbeni/inside-ideo/http"
	"github.com/niravbeni/inside-ideo/pageload"
	ideoslog "github.com/niravbeni/inside-ideo/slog"
	"github.com/niravbeni/inside-ideo/sqlite"
)

// defaultFetchRPS spaces page fetches so a long session doesn't hammer
// the processing service.
const defaultFetchRPS = 8.0

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
	// Database path. Set before calling Run().
	DBPath string

	// Processing service address. Set before calling Run().
	APIBaseURL string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SessionService insideideo.SessionService
	FieldService   insideideo.FieldService
	PageService    insideideo.PageService
	ImageService   insideideo.ImageService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:     defaultDBPath(),
		APIBaseURL: defaultAPIBaseURL(),
	}
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("inside-ideo"),
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
		return fmt.Errorf("no command specified. Run 'inside-ideo --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set INSIDE_IDEO_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.SessionService = sqlite.NewSessionService(m.DB)
	m.FieldService = sqlite.NewFieldService(m.DB)
	m.PageService = sqlite.NewPageService(m.DB)
	m.ImageService = sqlite.NewImageService(m.DB)
	deps.DB = m.DB
	deps.Sessions = m.SessionService
	deps.Fields = m.FieldService
	deps.Pages = m.PageService
	deps.Images = m.ImageService

	// Wire the processing service client with logging decorators
	client := ideohttp.NewClient(ideohttp.WithBaseURL(m.APIBaseURL))
	deps.Processor = ideoslog.NewLoggingProcessor(client, logger)
	deps.Loader = &pageload.Loader{
		Pages:   m.PageService,
		Fetcher: ideoslog.NewLoggingPageFetcher(client, logger),
		Limiter: pageload.NewLimiter(defaultFetchRPS),
	}
	deps.Clipboard = clipboard.NewWriter()

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("INSIDE_IDEO_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "inside-ideo.db"
	}
	dir := filepath.Join(home, ".inside-ideo")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "inside-ideo.db")
}

func defaultAPIBaseURL() string {
	if url := os.Getenv("INSIDE_IDEO_API"); url != "" {
		return url
	}
	return ideohttp.DefaultBaseURL
}
