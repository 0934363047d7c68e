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
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// metricsScan holds Prometheus metrics for the scanner.
type metricsScan struct {
	once sync.Once

	scans      prometheus.Counter
	cancelled  prometheus.Counter
	candidates prometheus.Counter
	chunks     prometheus.Counter

	maxGap prometheus.Gauge

	scanDuration prometheus.Histogram
}

var scanMetrics metricsScan

func (m *metricsScan) init() {
	m.once.Do(func() {
		m.scans = prometheus.NewCounter(prometheus.CounterOpts{Name: "gapscan_scans_total", Help: "Completed scans"})
		m.cancelled = prometheus.NewCounter(prometheus.CounterOpts{Name: "gapscan_scans_cancelled_total", Help: "Scans stopped by context cancellation"})
		m.candidates = prometheus.NewCounter(prometheus.CounterOpts{Name: "gapscan_candidates_total", Help: "Candidates examined"})
		m.chunks = prometheus.NewCounter(prometheus.CounterOpts{Name: "gapscan_chunks_total", Help: "Chunks reduced by workers"})

		m.maxGap = prometheus.NewGauge(prometheus.GaugeOpts{Name: "gapscan_max_gap", Help: "Longest gap found by the last completed scan"})

		buckets := []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60}
		m.scanDuration = prometheus.NewHistogram(prometheus.HistogramOpts{Name: "gapscan_scan_seconds", Help: "Duration of a full scan", Buckets: buckets})

		prometheus.MustRegister(
			m.scans, m.cancelled, m.candidates, m.chunks,
			m.maxGap,
			m.scanDuration,
		)
	})
}

func recordChunk(candidates int64) {
	scanMetrics.init()
	scanMetrics.chunks.Inc()
	scanMetrics.candidates.Add(float64(candidates))
}

func recordScan(r Result, seconds float64) {
	scanMetrics.init()
	scanMetrics.scans.Inc()
	scanMetrics.maxGap.Set(float64(r.MaxGap))
	scanMetrics.scanDuration.Observe(seconds)
}

func recordCancelled() { scanMetrics.init(); scanMetrics.cancelled.Inc() }
