// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build unix

package main

import (
	"os"
	"os/signal"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kraklabs/gapscan/internal/errors"
)

func TestScanInterrupted(t *testing.T) {
	// Stays registered for the rest of the binary: a SIGINT that lands
	// before or after runScan's handler must not kill the test process.
	guard := make(chan os.Signal, 1)
	signal.Notify(guard, os.Interrupt)

	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_ = syscall.Kill(os.Getpid(), syscall.SIGINT)
			}
		}
	}()

	code, stdout, stderr := runCLI(t, "scan", "4294967296", "-w", "2")
	close(done)
	<-stopped

	assert.Equal(t, errors.ExitInternal, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Scan interrupted")
	assert.Contains(t, stderr, "stopped before completing")
}
