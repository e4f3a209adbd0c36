package errors

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, 0},
		{"verification failure", ValidationError("broken links found").Build(), 2},
		{"missing root", NotFoundError("project root does not exist").Build(), 3},
		{"bad flags", ConfigError("extension must start with a dot").Build(), 7},
		{"dirty worktree", GitError("worktree has uncommitted changes").Build(), 8},
		{"filesystem", FileSystemError("walk failed").Build(), 11},
		{"internal", InternalError("unexpected").Build(), 10},
		{"unclassified error", &customError{msg: "unknown error"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.ExitCodeFor(tt.err); got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	tests := []struct {
		name     string
		verbose  bool
		err      error
		contains string
	}{
		{"nil error", false, nil, ""},
		{"internal error hidden", false, InternalError("internal issue").Build(), "Internal error occurred (use -v for details)"},
		{"internal error verbose", true, InternalError("internal issue").Build(), "[internal:fatal] internal issue"},
		{"user facing message", false, ValidationError("3 broken links found").Build(), "Error: 3 broken links found"},
		{"user facing with cause", false, WrapError(errors.New("no such file"), CategoryNotFound, "project root").Build(), "project root: no such file"},
		{"unclassified error", false, &customError{msg: "unknown error"}, "Error: unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewCLIErrorAdapter(tt.verbose, slog.Default()).FormatError(tt.err)
			if tt.contains == "" {
				if got != "" {
					t.Errorf("FormatError() = %q, want empty string", got)
				}
				return
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("FormatError() = %q, want to contain %q", got, tt.contains)
			}
		})
	}
}

// customError is a test helper for unclassified errors
type customError struct {
	msg string
}

func (e *customError) Error() string {
	return e.msg
}
