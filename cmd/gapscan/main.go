// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package main implements the gapscan CLI, which finds the integer with the
// longest binary gap up to a bound.
//
// Usage:
//
//	gapscan scan [N] [--json]     Largest gap over [1, N]
//	gapscan records [N]           Every candidate that raised the maximum
//	gapscan gap <n>...            Longest gap of individual integers
//	gapscan completion <shell>    Shell completion script
package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/gapscan/internal/config"
	"github.com/kraklabs/gapscan/internal/errors"
	"github.com/kraklabs/gapscan/internal/ui"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// GlobalFlags are the flags accepted before the command name.
type GlobalFlags struct {
	ConfigPath string
	JSON       bool
	Quiet      bool
	NoColor    bool
	Verbose    int
}

// app carries what every command needs.
type app struct {
	globals GlobalFlags
	cfg     *config.Config
	logger  *slog.Logger
	stdout  io.Writer
	stderr  io.Writer
}

const usageText = `gapscan - longest binary gap finder

A binary gap is a run of zero bits with a one-bit on both sides; trailing
zeros do not count. gapscan scans every integer in [1, N] and reports the
first one holding the longest gap.

Usage:
  gapscan [global options] <command> [options]

Commands:
  scan [N]        Longest gap over [1, N] (N defaults to upper_bound, 512)
  records [N]     Every candidate in [1, N] that raised the maximum
  gap <n>...      Longest gap of each integer given
  completion      Generate shell completion script (bash|zsh|fish)

Global Options:
`

const usageFooter = `
Examples:
  gapscan scan 999                 513 (1000000001), gap 8
  gapscan scan 4294967296 -w 16    Parallel scan with 16 workers
  gapscan --json scan 999          Machine-readable output
  gapscan records 1000000
  gapscan gap 529 1041

Configuration:
  Settings are read from ./.gapscan.yaml (or --config). Flags win.

For detailed command help: gapscan <command> --help
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses global flags, dispatches to a command and returns the process
// exit code.
func run(args []string, stdout, stderr io.Writer) int {
	var globals GlobalFlags

	fs := flag.NewFlagSet("gapscan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SetInterspersed(false)
	showVersion := fs.Bool("version", false, "Show version and exit")
	fs.StringVar(&globals.ConfigPath, "config", "", "Path to config file (default: ./.gapscan.yaml)")
	fs.BoolVar(&globals.JSON, "json", false, "Output as JSON (implies --quiet)")
	fs.BoolVarP(&globals.Quiet, "quiet", "q", false, "Suppress progress output")
	fs.BoolVar(&globals.NoColor, "no-color", false, "Disable colored output")
	fs.CountVarP(&globals.Verbose, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")

	fs.Usage = func() {
		fmt.Fprint(stderr, usageText)
		fs.PrintDefaults()
		fmt.Fprint(stderr, usageFooter)
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return errors.ExitSuccess
		}
		return errors.ExitInput
	}

	if *showVersion {
		fmt.Fprintf(stdout, "gapscan version %s\n", version)
		fmt.Fprintf(stdout, "commit: %s\n", commit)
		fmt.Fprintf(stdout, "built: %s\n", date)
		return errors.ExitSuccess
	}

	if globals.JSON {
		globals.Quiet = true
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return errors.ExitInput
	}

	a := &app{globals: globals, stdout: stdout, stderr: stderr}
	a.logger = newLogger(stderr, globals.Verbose)

	// completion needs no configuration
	if rest[0] == "completion" {
		return a.report(runCompletion(rest[1:], stdout))
	}

	cwd, err := os.Getwd()
	if err != nil {
		return a.report(errors.NewInternalError("Cannot determine working directory", err.Error(), "", err))
	}
	cfg, err := config.Load(globals.ConfigPath, cwd)
	if err != nil {
		return a.report(err)
	}
	a.cfg = cfg
	ui.Out = stderr
	if cfg.NoColor {
		a.globals.NoColor = true
	}
	ui.InitColors(a.globals.NoColor)
	a.logger.Debug("config.loaded", "path", cfg.Path, "upper_bound", cfg.UpperBound, "workers", cfg.Workers)

	switch rest[0] {
	case "scan":
		return a.report(a.runScan(rest[1:]))
	case "records":
		return a.report(a.runRecords(rest[1:]))
	case "gap":
		return a.report(a.runGap(rest[1:]))
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", rest[0])
		fs.Usage()
		return errors.ExitInput
	}
}

// errHelp is returned by commands after printing their --help text.
var errHelp = stderrors.New("help requested")

// report prints err (if any) and maps it to an exit code.
func (a *app) report(err error) int {
	if stderrors.Is(err, errHelp) {
		return errors.ExitSuccess
	}
	return errors.Report(a.stderr, err, a.globals.JSON, a.globals.NoColor)
}

// newLogger builds the slog text logger: warnings by default, -v for info,
// -vv for debug.
func newLogger(w io.Writer, verbose int) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbose >= 2:
		level = slog.LevelDebug
	case verbose == 1:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
