package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/locfeed"
	"github.com/fwojciec/locfeed/assemble"
	"github.com/fwojciec/locfeed/fs"
	"github.com/fwojciec/locfeed/goquery"
	locslog "github.com/fwojciec/locfeed/slog"
	"github.com/fwojciec/locfeed/sqlite"
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
	// SQLite database used by the record archive, when enabled.
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
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("locfeed"),
		kong.Description("Parse a downloaded facility-locator directory into newline-delimited JSON"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Construction does no I/O, so history can share the parse wiring.
	deps.Writer = locslog.NewLoggingRecordWriter(fs.NewRecordWriter(cli.Parse.Output), logger)
	deps.Assembler = &assemble.Assembler{
		Landing:     goquery.NewLandingParser(),
		Details:     goquery.NewDetailParser(),
		Documents:   locslog.NewLoggingDocumentSource(fs.NewDocumentSource(cli.Parse.Input), logger),
		Resolve:     fs.FileNameForURL,
		Concurrency: cli.Parse.Concurrency,
		Progress: func(p locfeed.Progress) {
			logger.Debug("detail merged", "href", p.Href, "completed", p.Completed, "total", p.Total)
		},
	}

	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set LOCFEED_DB or --db to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()

		deps.Records = locslog.NewLoggingRecordService(sqlite.NewRecordService(m.DB), logger)
	}

	return kongCtx.Run(deps)
}
