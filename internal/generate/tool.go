package generate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// DiagnosticLimit caps the tool stderr excerpt shown for a failed plant.
const DiagnosticLimit = 200

var (
	// ErrTimeout is recorded when the tool exceeds the per-plant time budget.
	ErrTimeout = errors.New("timeout")

	// ErrMissingOutput is recorded when the tool reports success but the
	// image file does not exist afterwards.
	ErrMissingOutput = errors.New("tool produced no output file")
)

// Request describes a single image generation.
type Request struct {
	Model  string
	Prompt string
	Width  int
	Height int
	Steps  int
	Seed   int64
	Output string
}

// Tool generates one image. Implementations must honor ctx cancellation.
type Tool interface {
	Generate(ctx context.Context, req Request) error
}

// ToolFunc adapts a function to the Tool interface.
type ToolFunc func(ctx context.Context, req Request) error

// Generate implements Tool.
func (f ToolFunc) Generate(ctx context.Context, req Request) error {
	return f(ctx, req)
}

// ToolError reports a tool run that finished with a non-zero exit status.
type ToolError struct {
	ExitCode int
	Stderr   string
}

// Error implements the error interface for ToolError.
func (e *ToolError) Error() string {
	msg := fmt.Sprintf("exit status %d", e.ExitCode)
	if excerpt := truncate(strings.TrimSpace(e.Stderr), DiagnosticLimit); excerpt != "" {
		msg += ": " + excerpt
	}
	return msg
}

// Diagnostic returns the short, human readable reason for a failed plant.
func Diagnostic(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrTimeout) {
		return "Timeout"
	}
	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		if excerpt := truncate(strings.TrimSpace(toolErr.Stderr), DiagnosticLimit); excerpt != "" {
			return excerpt
		}
	}
	return truncate(err.Error(), DiagnosticLimit)
}

// truncate shortens s to at most limit bytes without splitting a rune.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
