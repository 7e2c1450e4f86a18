package generate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/vk/plantgen/internal/ctxlog"
)

// Defaults for the mflux command line generator.
const (
	DefaultCommand   = "mflux-generate"
	DefaultModel     = "schnell"
	DefaultSize      = 512
	DefaultSteps     = 4
	DefaultWaitDelay = 5 * time.Second
)

// ExecTool runs an external command line generator once per image.
type ExecTool struct {
	// Command is the executable name or path.
	Command string
	// Args are placed before the generation flags.
	Args []string
	// Env is appended to the current process environment.
	Env []string
	// WaitDelay bounds how long Generate waits for output pipes after the
	// process has been killed on cancellation.
	WaitDelay time.Duration
}

// NewExecTool creates an ExecTool for command.
func NewExecTool(command string, args ...string) *ExecTool {
	if command == "" {
		command = DefaultCommand
	}
	return &ExecTool{
		Command:   command,
		Args:      args,
		WaitDelay: DefaultWaitDelay,
	}
}

// Argv returns the arguments passed to Command for req.
func (t *ExecTool) Argv(req Request) []string {
	argv := append([]string(nil), t.Args...)
	return append(argv,
		"--model", req.Model,
		"--prompt", req.Prompt,
		"--width", strconv.Itoa(req.Width),
		"--height", strconv.Itoa(req.Height),
		"--steps", strconv.Itoa(req.Steps),
		"--seed", strconv.FormatInt(req.Seed, 10),
		"--output", req.Output,
	)
}

// Generate implements Tool. A non-zero exit is returned as *ToolError; a
// process killed because ctx ended returns ctx.Err().
func (t *ExecTool) Generate(ctx context.Context, req Request) error {
	logger := ctxlog.FromContext(ctx)

	cmd := exec.CommandContext(ctx, t.Command, t.Argv(req)...)
	if len(t.Env) > 0 {
		cmd.Env = append(os.Environ(), t.Env...)
	}
	cmd.WaitDelay = t.WaitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	logger.Debug("Generator process finished.",
		"command", t.Command,
		"duration", time.Since(start),
		"stdout_bytes", stdout.Len(),
		"stderr_bytes", stderr.Len(),
	)

	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ToolError{ExitCode: exitErr.ExitCode(), Stderr: stderr.String()}
	}
	return fmt.Errorf("failed to run %s: %w", t.Command, err)
}
