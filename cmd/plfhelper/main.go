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

	"github.com/alecthomas/kong"
	"github.com/fwojciec/plfhelper"
	"github.com/fwojciec/plfhelper/catalog"
	"github.com/fwojciec/plfhelper/fs"
	"github.com/fwojciec/plfhelper/goquery"
	plfhttp "github.com/fwojciec/plfhelper/http"
	"github.com/fwojciec/plfhelper/rod"
	plfslog "github.com/fwojciec/plfhelper/slog"
	"github.com/fwojciec/plfhelper/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Browser backing --url watch sessions.
	Browser *rod.BrowserManager

	// Services for end-to-end testing.
	ObservationService plfhelper.ObservationService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Browser != nil {
		_ = m.Browser.Close()
	}
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
		kong.Name("plfhelper"),
		kong.Description("Reads market prices and player ranks from game snapshots."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'plfhelper --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Catalog, err = loadCatalog(cli.Phrases)
	if err != nil {
		return err
	}

	defer m.Close()

	switch cmd {
	case "watch", "batch", "history", "export", "delete":
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set PLF_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		m.ObservationService = sqlite.NewObservationService(m.DB)
		deps.Observations = m.ObservationService
	}

	if cmd == "watch" {
		src, err := m.watchSource(&cli.Watch)
		if err != nil {
			return err
		}
		deps.Source = plfslog.NewLoggingSource(src, cli.Watch.sourceName(), deps.Logger)
	}

	return kongCtx.Run(deps)
}

// watchSource builds the snapshot source selected by the watch flags.
func (m *Main) watchSource(c *WatchCmd) (plfhelper.SnapshotSource, error) {
	extractor := goquery.NewTextExtractor(c.Root)
	switch {
	case c.File != "":
		return fs.NewFileSource(c.File, extractor), nil
	case c.HTTP != "":
		return plfhttp.NewPageSource(c.HTTP, extractor,
			plfhttp.WithCookie(c.Cookie),
			plfhttp.WithTimeout(c.Timeout),
		), nil
	case c.URL != "":
		browser, err := rod.NewBrowserManager(rod.WithHeadless(!c.Show))
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		m.Browser = browser
		var opts []rod.SourceOption
		if c.Root != "" {
			opts = append(opts, rod.WithExtractor(extractor))
		}
		return rod.NewPageSource(browser, c.URL, opts...), nil
	}
	return nil, plfhelper.Errorf(plfhelper.EINVALID, "one of --file, --url or --http is required")
}

// loadCatalog returns the built-in catalog with the overrides in path
// applied. An empty path means no overrides.
func loadCatalog(path string) (*catalog.Catalog, error) {
	base := catalog.New()
	if path == "" {
		return base, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, plfhelper.Errorf(plfhelper.ENOTFOUND, "phrase file %q: %v", path, err)
	}
	defer f.Close()
	return catalog.LoadYAML(f, base)
}

func defaultDBPath() string {
	if path := os.Getenv("PLF_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "plfhelper.db"
	}
	dir := filepath.Join(home, ".plfhelper")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "plfhelper.db")
}
