// Package main is the entry point for the sneak editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/aymanbagabas/go-udiff"

	"github.com/dshills/sneak/internal/app"
	"github.com/dshills/sneak/internal/config"
	"github.com/dshills/sneak/internal/engine/buffer"
	"github.com/dshills/sneak/internal/input/vim"
	"github.com/dshills/sneak/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type cliOptions struct {
	app      app.Options
	keys     string
	noConfig bool
	write    bool
	printDoc bool
	diff     bool
	version  bool
}

func run(args []string, stdout, stderr io.Writer) int {
	cli, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if cli.version {
		fmt.Fprintf(stdout, "sneak %s\nCommit: %s\nBuilt: %s\n", version, commit, date)
		return 0
	}

	if cli.keys != "" {
		return runHeadless(cli, stdout, stderr)
	}
	return runInteractive(cli, stderr)
}

// runHeadless feeds the keys and prints the final cursor position as
// zero-based "line col".
func runHeadless(cli cliOptions, stdout, stderr io.Writer) int {
	cli.app.LogOutput = stderr
	application, err := app.New(cli.app)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	before := application.Document().Content()
	if err := application.FeedKeys(cli.keys); err != nil && !errors.Is(err, app.ErrQuit) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if res := application.LastResult(); res.Message != "" {
		fmt.Fprintln(stderr, res.Message)
	}

	if cli.write {
		if err := application.Save(); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	pos := application.Position()
	fmt.Fprintf(stdout, "%d %d\n", pos.Line, pos.Column)
	after := application.Document().Content()
	if cli.printDoc {
		fmt.Fprintln(stdout, after)
	}
	if cli.diff {
		fmt.Fprint(stdout, unifiedDiff(documentName(cli.app.File), before, after))
	}
	return 0
}

// unifiedDiff returns the changes from before to after, or "" when the
// document is unchanged.
func unifiedDiff(name, before, after string) string {
	before = ensureTrailingNewline(before)
	after = ensureTrailingNewline(after)
	if before == after {
		return ""
	}
	return udiff.Unified("a/"+name, "b/"+name, before, after)
}

func ensureTrailingNewline(content string) string {
	if strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}

func documentName(file string) string {
	if file == "" {
		return "scratch"
	}
	return file
}

func runInteractive(cli cliOptions, stderr io.Writer) int {
	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	cli.app.Backend = term
	cli.app.Clipboard = vim.SystemClipboard{}
	cli.app.WatchConfig = cli.app.ConfigPath != ""

	// Log lines would corrupt the screen.
	cli.app.LogOutput = io.Discard

	application, err := app.New(cli.app)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)
	go func() {
		if _, ok := <-signals; ok {
			application.Shutdown()
		}
	}()

	if err := application.Run(); err != nil && !errors.Is(err, app.ErrQuit) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (cliOptions, error) {
	var cli cliOptions
	var line, col uint

	fs := flag.NewFlagSet("sneak", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cli.app.ConfigPath, "config", config.DefaultPath(), "Path to configuration file")
	fs.StringVar(&cli.app.ConfigPath, "c", config.DefaultPath(), "Path to configuration file (shorthand)")
	fs.BoolVar(&cli.noConfig, "no-config", false, "Ignore the configuration file and init.lua")
	fs.StringVar(&cli.keys, "keys", "", "Run these keys headless and print the final position")
	fs.StringVar(&cli.keys, "k", "", "Run these keys headless (shorthand)")
	fs.UintVar(&line, "line", 0, "Initial cursor line (zero-based)")
	fs.UintVar(&col, "col", 0, "Initial cursor column (zero-based)")
	fs.StringVar(&cli.app.Text, "text", "", "Edit this text instead of a file")
	fs.StringVar(&cli.app.LogLevel, "log-level", "", "Log level (debug, info, warn, error); defaults to logging.level")
	fs.BoolVar(&cli.app.NoScripts, "no-scripts", false, "Do not run init.lua")
	fs.BoolVar(&cli.write, "write", false, "Save the file after running -keys")
	fs.BoolVar(&cli.printDoc, "print", false, "Print the document after running -keys")
	fs.BoolVar(&cli.diff, "diff", false, "Print a unified diff of the changes made by -keys")
	clipboard := fs.Bool("clipboard", false, "Back the + and * registers with the system clipboard in -keys runs")
	fs.BoolVar(&cli.version, "version", false, "Show version information")
	fs.BoolVar(&cli.version, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "sneak - two-character search motions\n\n")
		fmt.Fprintf(stderr, "Usage: sneak [options] [file]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  sneak notes.txt                       Edit a file\n")
		fmt.Fprintf(stderr, "  sneak -keys 'fat;' notes.txt          Print where fat; lands\n")
		fmt.Fprintf(stderr, "  sneak -keys 'dfat' -write notes.txt   Delete through \"at\" and save\n")
		fmt.Fprintf(stderr, "  sneak -keys 'dtx' -diff notes.txt     Show what dtx would change\n")
	}

	if err := fs.Parse(args); err != nil {
		return cli, err
	}

	if cli.app.LogLevel != "" {
		if _, ok := app.LookupLogLevel(cli.app.LogLevel); !ok {
			return cli, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", cli.app.LogLevel)
		}
	}

	switch fs.NArg() {
	case 0:
	case 1:
		cli.app.File = fs.Arg(0)
	default:
		return cli, fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}
	if cli.app.File != "" && cli.app.Text != "" {
		return cli, errors.New("-text and a file are mutually exclusive")
	}
	if cli.write && cli.app.File == "" {
		return cli, errors.New("-write needs a file")
	}

	if cli.noConfig {
		cli.app.ConfigPath = ""
	}
	if *clipboard {
		cli.app.Clipboard = vim.SystemClipboard{}
	}
	cli.app.Start = buffer.Point{Line: uint32(line), Column: uint32(col)}
	return cli, nil
}
