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

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	flag "github.com/spf13/pflag"

	"github.com/kraklabs/gapscan/internal/errors"
	"github.com/kraklabs/gapscan/internal/output"
	"github.com/kraklabs/gapscan/internal/ui"
	"github.com/kraklabs/gapscan/pkg/gap"
)

// runScan executes the 'scan' command: the longest binary gap over [1, N].
//
// Flags:
//   - --workers/-w: parallel chunk reducers (0 = one per CPU, 1 = sequential)
//   - --chunk-size: candidates per chunk
//   - --metrics-addr: HTTP address for Prometheus metrics (default: disabled)
//
// Examples:
//
//	gapscan scan            Scan up to upper_bound (512 by default)
//	gapscan scan 999        513 (1000000001), gap 8
//	gapscan scan 999 -w 1   Same result, sequential
func (a *app) runScan(args []string) error {
	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	workers := fs.IntP("workers", "w", a.cfg.Workers, "Parallel workers (0 = one per CPU, 1 = sequential)")
	chunkSize := fs.Int64("chunk-size", a.cfg.ChunkSize, "Candidates per work chunk")
	metricsAddr := fs.String("metrics-addr", a.cfg.MetricsAddr, "HTTP listen address for Prometheus metrics (empty to disable)")

	fs.Usage = func() {
		fmt.Fprintf(a.stderr, `Usage: gapscan scan [N] [options]

Scans every integer in [1, N] and prints the first one holding the longest
binary gap. N defaults to upper_bound from the configuration.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return flagError(err)
	}

	upperBound, err := a.boundArg(fs.Args())
	if err != nil {
		return err
	}
	if *workers < 0 {
		return errors.NewInputError(
			"Invalid worker count",
			fmt.Sprintf("--workers must not be negative, got %d", *workers),
			"Use 0 for one worker per CPU or 1 for a sequential scan",
		)
	}
	if *chunkSize < 1 {
		return errors.NewInputError(
			"Invalid chunk size",
			fmt.Sprintf("--chunk-size must be at least 1, got %d", *chunkSize),
			fmt.Sprintf("Omit the flag to use the default of %d", gap.DefaultChunkSize),
		)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *metricsAddr != "" {
		if _, err := serveMetrics(ctx, *metricsAddr, a.logger); err != nil {
			return errors.NewInputError(
				"Cannot serve metrics",
				fmt.Sprintf("listening on %q failed: %v", *metricsAddr, err),
				"Pass a free host:port to --metrics-addr, or omit it",
			)
		}
	}

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			a.logger.Info("shutdown.signal", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	bar := newScanBar(NewProgressConfig(a.globals), upperBound)
	scfg := gap.ScannerConfig{Workers: *workers, ChunkSize: *chunkSize}
	if bar != nil {
		scfg.Progress = func(n int64) { _ = bar.Add64(n) }
	}
	scanner := gap.NewScanner(scfg, a.logger)
	if scanner.Workers() <= 1 {
		a.warnSequential(upperBound, "--workers 0 uses every CPU")
	}

	start := time.Now()
	res, err := scanner.ScanContext(ctx, upperBound)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return errors.NewInternalError(
			"Scan interrupted",
			fmt.Sprintf("the scan of [1, %d] stopped before completing", upperBound),
			"Run the command again and let it finish",
			err,
		)
	}
	elapsed := time.Since(start)

	if a.globals.JSON {
		rep := output.NewScanReport(upperBound, res, elapsed)
		rep.Workers = scanner.Workers()
		return output.JSONTo(a.stdout, rep)
	}
	a.printScan(upperBound, res)
	return nil
}

// warnSequential warns on stderr before a single-goroutine pass over a range
// of at least minProgressCandidates. Quiet and JSON modes stay silent.
func (a *app) warnSequential(upperBound int64, hint string) {
	if a.globals.Quiet || upperBound < minProgressCandidates {
		return
	}
	ui.Warningf("Sequential scan of %d candidates; %s", upperBound, hint)
}

// serveMetrics exposes the Prometheus registry at /metrics on addr until ctx
// is done. It returns the bound address, so ":0" picks a free port.
func serveMetrics(ctx context.Context, addr string, logger *slog.Logger) (net.Addr, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()
	logger.Info("metrics.http.start", "addr", ln.Addr().String(), "path", "/metrics")
	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			logger.Warn("metrics.http.error", "err", err)
		}
	}()
	return ln.Addr(), nil
}

// printScan writes the human-readable scan result.
func (a *app) printScan(upperBound int64, res gap.Result) {
	fmt.Fprintf(a.stdout, "%s %d\n", ui.Label("Upper bound:"), upperBound)
	if res.MaxGap == 0 {
		fmt.Fprintf(a.stdout, "%s %d\n", ui.Label("Value:      "), res.Value)
		fmt.Fprintf(a.stdout, "%s %d\n", ui.Label("Max gap:    "), res.MaxGap)
		fmt.Fprintln(a.stdout, ui.DimText(fmt.Sprintf("No integer in [1, %d] has a binary gap (the first is 5 = 101).", upperBound)))
		return
	}
	fmt.Fprintf(a.stdout, "%s %d (%s)\n", ui.Label("Value:      "), res.Value, ui.Highlight(res.Value))
	fmt.Fprintf(a.stdout, "%s %s\n", ui.Label("Max gap:    "), ui.CountText(res.MaxGap))
}

// boundArg resolves the optional [N] argument against the configuration.
func (a *app) boundArg(args []string) (int64, error) {
	switch len(args) {
	case 0:
		return a.cfg.UpperBound, nil
	case 1:
		return parseBound(args[0], a.cfg.Limit)
	default:
		return 0, errors.NewInputError(
			"Too many arguments",
			fmt.Sprintf("expected at most one upper bound, got %d arguments", len(args)),
			"Pass a single integer, for example: gapscan scan 999",
		)
	}
}

// parseBound parses an upper bound and checks it lies in [1, limit].
func parseBound(s string, limit int64) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.NewInputError(
			"Invalid upper bound",
			fmt.Sprintf("%q is not a base-10 integer that fits in 64 bits", s),
			"Pass a positive integer, for example: gapscan scan 999",
		)
	}
	if n < 1 {
		return 0, errors.NewInputError(
			"Invalid upper bound",
			fmt.Sprintf("%d is below 1; the scan range [1, N] would be empty", n),
			"Pass a positive integer, for example: gapscan scan 999",
		)
	}
	if n > limit {
		return 0, errors.NewInputError(
			"Upper bound too large",
			fmt.Sprintf("%d exceeds the configured limit of %d", n, limit),
			"Raise limit in .gapscan.yaml if the scan time is acceptable",
		)
	}
	return n, nil
}

// flagError maps a flag parsing failure to an input error. --help is not an
// error for the user, so it is reported as a plain exit.
func flagError(err error) error {
	if err == flag.ErrHelp {
		return errHelp
	}
	return errors.NewInputError("Invalid options", err.Error(), "Run with --help to see accepted options")
}
