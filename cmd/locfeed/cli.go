package main

import (
	"context"
	"io"

	"github.com/fwojciec/locfeed"
	"github.com/fwojciec/locfeed/assemble"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Assembler *assemble.Assembler
	Writer    locfeed.RecordWriter

	// Records is nil unless an archive database was configured.
	Records locfeed.RecordService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Parse   ParseCmd   `cmd:"" default:"withargs" help:"Parse a downloaded directory (default command)"`
	History HistoryCmd `cmd:"" help:"Show archived records for a detail page node id"`

	DB      string `env:"LOCFEED_DB" help:"SQLite archive database"`
	Verbose bool   `short:"v" help:"Log every document load"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Output      string `arg:"" help:"Directory the parsed records are written to"`
	Input       string `arg:"" help:"Directory containing the landing page and downloaded detail pages"`
	Landing     string `default:"locations.html" help:"Landing page file name inside the input directory"`
	Concurrency int    `short:"c" default:"0" help:"Concurrent detail page limit (0 for unlimited)"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	NodeID string `arg:"" name:"node-id" help:"Stable id from the detail page citation metadata"`
	Limit  int    `short:"n" default:"0" help:"Maximum number of records to show (0 for all)"`
}
