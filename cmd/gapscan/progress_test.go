// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"bytes"
	"os"
	"testing"
)

func TestNewProgressConfig(t *testing.T) {
	tests := []struct {
		name            string
		globals         GlobalFlags
		expectedNoColor bool
	}{
		{"default flags", GlobalFlags{}, false},
		{"quiet mode", GlobalFlags{Quiet: true}, false},
		{"JSON mode (quiet auto-set)", GlobalFlags{JSON: true, Quiet: true}, false},
		{"noColor propagates", GlobalFlags{NoColor: true}, true},
		{"all flags combined", GlobalFlags{JSON: true, Quiet: true, NoColor: true, Verbose: 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewProgressConfig(tt.globals)
			// stderr is not a TTY under go test
			if cfg.Enabled {
				t.Error("NewProgressConfig().Enabled = true, want false")
			}
			if cfg.NoColor != tt.expectedNoColor {
				t.Errorf("NewProgressConfig().NoColor = %v, want %v", cfg.NoColor, tt.expectedNoColor)
			}
			if cfg.Writer != os.Stderr {
				t.Error("NewProgressConfig().Writer should be os.Stderr")
			}
		})
	}
}

func TestNewScanBar(t *testing.T) {
	t.Run("disabled config returns nil", func(t *testing.T) {
		if bar := newScanBar(ProgressConfig{Enabled: false}, 1<<30); bar != nil {
			t.Error("newScanBar() should return nil when disabled")
		}
	})

	t.Run("small scans get no bar", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := ProgressConfig{Enabled: true, Writer: &buf}
		if bar := newScanBar(cfg, minProgressCandidates-1); bar != nil {
			t.Error("newScanBar() should return nil below minProgressCandidates")
		}
	})

	t.Run("enabled config returns usable bar", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := ProgressConfig{Enabled: true, Writer: &buf, NoColor: true}
		bar := newScanBar(cfg, minProgressCandidates)
		if bar == nil {
			t.Fatal("newScanBar() should return non-nil when enabled")
		}
		_ = bar.Add64(minProgressCandidates / 2)
		_ = bar.Finish()
	})
}
