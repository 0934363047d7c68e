// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package errors

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestUserError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *UserError
		want string
	}{
		{
			name: "with underlying error",
			err:  &UserError{Message: "Cannot read config", Err: fmt.Errorf("permission denied")},
			want: "Cannot read config: permission denied",
		},
		{
			name: "without underlying error",
			err:  &UserError{Message: "Invalid upper bound"},
			want: "Invalid upper bound",
		},
		{
			name: "empty message with underlying error",
			err:  &UserError{Err: fmt.Errorf("boom")},
			want: ": boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("UserError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserError_Unwrap(t *testing.T) {
	underlying := fmt.Errorf("underlying")
	err := NewConfigError("msg", "cause", "fix", underlying)

	if err.Unwrap() != underlying {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), underlying)
	}
	if !errors.Is(err, underlying) {
		t.Error("errors.Is should find the wrapped error")
	}
	if NewInputError("m", "c", "f").Unwrap() != nil {
		t.Error("input errors should not wrap anything")
	}
}

// TestExitCodes_Uniqueness verifies that all exit codes are distinct.
func TestExitCodes_Uniqueness(t *testing.T) {
	codes := []int{ExitSuccess, ExitConfig, ExitInput, ExitNotFound, ExitInternal}
	seen := make(map[int]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate exit code found: %d", code)
		}
		seen[code] = true
	}
}

func TestConstructors(t *testing.T) {
	underlying := fmt.Errorf("underlying")

	tests := []struct {
		name     string
		err      *UserError
		wantCode int
		wantErr  error
	}{
		{"NewConfigError", NewConfigError("msg", "cause", "fix", underlying), ExitConfig, underlying},
		{"NewInputError", NewInputError("msg", "cause", "fix"), ExitInput, nil},
		{"NewNotFoundError", NewNotFoundError("msg", "cause", "fix"), ExitNotFound, nil},
		{"NewInternalError", NewInternalError("msg", "cause", "fix", underlying), ExitInternal, underlying},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Message != "msg" || tt.err.Cause != "cause" || tt.err.Fix != "fix" {
				t.Errorf("fields not set: %+v", tt.err)
			}
			if tt.err.ExitCode != tt.wantCode {
				t.Errorf("ExitCode = %d, want %d", tt.err.ExitCode, tt.wantCode)
			}
			if tt.err.Err != tt.wantErr {
				t.Errorf("Err = %v, want %v", tt.err.Err, tt.wantErr)
			}
		})
	}
}

func TestUserError_Format(t *testing.T) {
	tests := []struct {
		name    string
		err     *UserError
		want    []string
		notWant []string
	}{
		{
			name: "full error",
			err: &UserError{
				Message: "Invalid upper bound",
				Cause:   "-3 is below 1",
				Fix:     "Pass a positive integer",
			},
			want: []string{"Error: Invalid upper bound", "Cause: -3 is below 1", "Fix:   Pass a positive integer"},
		},
		{
			name:    "message only",
			err:     &UserError{Message: "Scan interrupted"},
			want:    []string{"Error: Scan interrupted"},
			notWant: []string{"Cause:", "Fix:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Format(true)
			for _, s := range tt.want {
				if !strings.Contains(got, s) {
					t.Errorf("Format() missing %q\nGot: %s", s, got)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(got, s) {
					t.Errorf("Format() should not contain %q\nGot: %s", s, got)
				}
			}
			if strings.Contains(got, "\x1b[") {
				t.Error("Format(true) output contains ANSI codes")
			}
		})
	}
}

func TestUserError_Format_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	err := NewConfigError("Test error", "Test cause", "Test fix", nil)
	if out := err.Format(false); strings.Contains(out, "\x1b[") {
		t.Error("Format() output contains ANSI codes despite NO_COLOR being set")
	}
}

func TestReport(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		var buf bytes.Buffer
		if code := Report(&buf, nil, false, true); code != ExitSuccess {
			t.Errorf("Report(nil) = %d, want %d", code, ExitSuccess)
		}
		if buf.Len() != 0 {
			t.Errorf("Report(nil) wrote %q", buf.String())
		}
	})

	t.Run("user error text", func(t *testing.T) {
		var buf bytes.Buffer
		code := Report(&buf, NewInputError("Invalid upper bound", "abc", "Pass an integer"), false, true)
		if code != ExitInput {
			t.Errorf("exit code = %d, want %d", code, ExitInput)
		}
		if !strings.Contains(buf.String(), "Error: Invalid upper bound") {
			t.Errorf("unexpected output: %s", buf.String())
		}
	})

	t.Run("wrapped user error json", func(t *testing.T) {
		var buf bytes.Buffer
		wrapped := fmt.Errorf("scan: %w", NewConfigError("Bad config", "workers < 0", "", nil))
		code := Report(&buf, wrapped, true, true)
		if code != ExitConfig {
			t.Errorf("exit code = %d, want %d", code, ExitConfig)
		}
		var got ErrorJSON
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("invalid JSON %q: %v", buf.String(), err)
		}
		if got.Error != "Bad config" || got.Cause != "workers < 0" || got.ExitCode != ExitConfig {
			t.Errorf("unexpected JSON: %+v", got)
		}
	})

	t.Run("plain error is internal", func(t *testing.T) {
		var buf bytes.Buffer
		code := Report(&buf, fmt.Errorf("generic failure"), false, true)
		if code != ExitInternal {
			t.Errorf("exit code = %d, want %d", code, ExitInternal)
		}
		if !strings.Contains(buf.String(), "generic failure") {
			t.Errorf("unexpected output: %s", buf.String())
		}
	})
}
