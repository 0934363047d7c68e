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

package gap

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultChunkSize is the number of candidates a worker reduces at a time.
const DefaultChunkSize int64 = 1 << 16

// ScannerConfig controls how a Scanner splits and distributes the range.
type ScannerConfig struct {
	// Workers is the number of concurrent chunk reducers. Values <= 1 scan
	// sequentially on the calling goroutine.
	Workers int

	// ChunkSize is the number of candidates per chunk (default DefaultChunkSize).
	ChunkSize int64

	// Progress, if set, is called with the number of candidates finished each
	// time a chunk completes. It may be called from several goroutines.
	Progress func(done int64)
}

// Scanner runs range scans over a worker pool.
type Scanner struct {
	workers  int
	chunk    int64
	progress func(int64)
	logger   *slog.Logger
}

// NewScanner creates a Scanner. A zero Workers uses runtime.NumCPU().
func NewScanner(cfg ScannerConfig, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	return &Scanner{
		workers:  cfg.Workers,
		chunk:    cfg.ChunkSize,
		progress: cfg.Progress,
		logger:   logger,
	}
}

// Workers returns the effective worker count.
func (s *Scanner) Workers() int { return s.workers }

// ScanContext scans [1, upperBound] and returns the same Result as Scan.
// It returns ctx.Err() if the context is cancelled before the scan ends.
func (s *Scanner) ScanContext(ctx context.Context, upperBound int64) (Result, error) {
	start := time.Now()
	s.logger.Info("scan.start", "upper_bound", upperBound, "workers", s.workers, "chunk_size", s.chunk)

	var (
		res Result
		err error
	)
	if s.workers <= 1 {
		res, err = s.scanSequential(ctx, upperBound)
	} else {
		res, err = s.scanParallel(ctx, upperBound)
	}
	if err != nil {
		recordCancelled()
		s.logger.Warn("scan.cancelled", "upper_bound", upperBound, "err", err)
		return Result{}, err
	}

	elapsed := time.Since(start)
	recordScan(res, elapsed.Seconds())
	s.logger.Info("scan.done",
		"upper_bound", upperBound,
		"value", res.Value,
		"max_gap", res.MaxGap,
		"elapsed", elapsed,
	)
	return res, nil
}

// scanSequential walks the chunks in order on the calling goroutine.
func (s *Scanner) scanSequential(ctx context.Context, upperBound int64) (Result, error) {
	var best Result
	err := s.eachChunk(ctx, upperBound, func(lo, hi int64) error {
		if r := s.reduce(lo, hi); r.better(best) {
			best = r
		}
		return nil
	})
	return best, err
}

// scanParallel reduces chunks concurrently. The reduction order is not
// deterministic but better() is a total order, so the result is.
func (s *Scanner) scanParallel(ctx context.Context, upperBound int64) (Result, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	var (
		mu   sync.Mutex
		best Result
	)
	err := s.eachChunk(gctx, upperBound, func(lo, hi int64) error {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r := s.reduce(lo, hi)
			mu.Lock()
			if r.better(best) {
				best = r
			}
			mu.Unlock()
			return nil
		})
		return nil
	})
	if werr := g.Wait(); err == nil {
		err = werr
	}
	return best, err
}

// reduce scans one chunk and reports progress.
func (s *Scanner) reduce(lo, hi int64) Result {
	r := scanRange(lo, hi, nil)
	n := hi - lo + 1
	recordChunk(n)
	if s.progress != nil {
		s.progress(n)
	}
	return r
}

// eachChunk calls fn for consecutive [lo, hi] chunks covering [1, upperBound],
// stopping early when ctx is done or fn fails.
func (s *Scanner) eachChunk(ctx context.Context, upperBound int64, fn func(lo, hi int64) error) error {
	if upperBound < 1 {
		return nil
	}
	for lo := int64(1); ; {
		if err := ctx.Err(); err != nil {
			return err
		}
		hi := upperBound
		if upperBound-lo >= s.chunk {
			hi = lo + s.chunk - 1
		}
		if err := fn(lo, hi); err != nil {
			return err
		}
		if hi == upperBound {
			return nil
		}
		lo = hi + 1
	}
}
