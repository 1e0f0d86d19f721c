package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/plfhelper"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	Logger       *slog.Logger
	Catalog      plfhelper.LocaleCatalog
	Observations plfhelper.ObservationService
	Source       plfhelper.SnapshotSource
}

func (d *Dependencies) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Phrases string `env:"PLF_PHRASES" help:"YAML file overriding phrases and product lists"`
	Verbose bool   `short:"v" help:"Log every snapshot and parse"`

	Parse   ParseCmd   `cmd:"" help:"Parse snapshot files and print the resulting values"`
	Watch   WatchCmd   `cmd:"" help:"Poll a snapshot source and record every change"`
	Batch   BatchCmd   `cmd:"" help:"Replay directories of saved snapshots as concurrent sessions"`
	History HistoryCmd `cmd:"" help:"List recorded observations"`
	Export  ExportCmd  `cmd:"" help:"Write a session's latest values as pricelist XML"`
	Delete  DeleteCmd  `cmd:"" help:"Delete the observations of a session"`
	Locales LocalesCmd `cmd:"" help:"List supported locales"`
	Level   LevelCmd   `cmd:"" help:"Show the level reached with a point total"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Files  []string `arg:"" name:"file" help:"Snapshot files (.txt, .html)"`
	Locale string   `short:"l" env:"PLF_LOCALE" help:"Two-letter locale code; detected from HTML snapshots when empty"`
	Root   string   `help:"CSS selector of the element holding the game UI in HTML snapshots"`
	Resume string   `help:"Start from the values in a pricelist XML file"`
	Out    string   `short:"o" help:"Write the final values as pricelist XML"`
}

// WatchCmd is the "watch" subcommand.
type WatchCmd struct {
	File     string        `help:"Poll a snapshot file" xor:"source"`
	URL      string        `name:"url" help:"Poll a page in a headless browser" xor:"source"`
	HTTP     string        `name:"http" help:"Poll a page over plain HTTP" xor:"source"`
	Cookie   string        `env:"PLF_COOKIE" help:"Cookie header sent with --http"`
	Timeout  time.Duration `default:"10s" help:"Request timeout for --http"`
	Show     bool          `help:"Show the browser window for --url"`
	Root     string        `help:"CSS selector of the element holding the game UI"`
	Locale   string        `short:"l" env:"PLF_LOCALE" default:"de" help:"Two-letter locale code"`
	Session  string        `short:"s" env:"PLF_SESSION" default:"default" help:"Session name observations are recorded under"`
	Interval time.Duration `short:"i" default:"5s" help:"Time between snapshots"`
	Count    int           `short:"n" help:"Stop after this many snapshots (0 = until interrupted)"`
	Fresh    bool          `help:"Start from an empty vector instead of the session's last observation"`
}

func (c *WatchCmd) sourceName() string {
	switch {
	case c.File != "":
		return c.File
	case c.HTTP != "":
		return c.HTTP
	}
	return c.URL
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Dirs        []string `arg:"" name:"dir" help:"Directories of saved snapshots, one session each"`
	Locale      string   `short:"l" env:"PLF_LOCALE" default:"de" help:"Two-letter locale code"`
	Root        string   `help:"CSS selector of the element holding the game UI in HTML snapshots"`
	Concurrency int      `short:"c" default:"4" help:"Sessions replayed at once"`
	DryRun      bool     `help:"Parse without recording observations"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Session string `short:"s" env:"PLF_SESSION" help:"Only show this session"`
	Kind    string `help:"Only show this page kind (market, townhall)"`
	Limit   int    `short:"n" default:"20" help:"Maximum number of observations"`
	Values  bool   `help:"Show the value vector of each observation"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Session string `arg:"" help:"Session to export"`
	Out     string `short:"o" help:"Output file (default stdout)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Session string `arg:"" help:"Session name"`
	Force   bool   `help:"Confirm deletion"`
}

// LocalesCmd is the "locales" subcommand.
type LocalesCmd struct{}

// LevelCmd is the "level" subcommand.
type LevelCmd struct {
	Points int64  `arg:"" help:"Point total"`
	Locale string `short:"l" env:"PLF_LOCALE" default:"de" help:"Locale used to format numbers"`
}
