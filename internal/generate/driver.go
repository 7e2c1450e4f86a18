package generate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/vk/plantgen/internal/catalog"
	"github.com/vk/plantgen/internal/ctxlog"
	"github.com/vk/plantgen/internal/fsutil"
	"github.com/vk/plantgen/internal/prompt"
)

// DefaultTimeout is the per-plant time budget for the external tool.
const DefaultTimeout = 120 * time.Second

// ImageExt is the extension of generated images.
const ImageExt = ".png"

// Settings holds the fixed generation parameters shared by every plant.
type Settings struct {
	Model   string
	Width   int
	Height  int
	Steps   int
	Timeout time.Duration
}

// DefaultSettings returns the parameters used for the wetland catalog.
func DefaultSettings() Settings {
	return Settings{
		Model:   DefaultModel,
		Width:   DefaultSize,
		Height:  DefaultSize,
		Steps:   DefaultSteps,
		Timeout: DefaultTimeout,
	}
}

// Driver generates the image for each catalog entry in turn.
type Driver struct {
	tool      Tool
	outputDir string
	settings  Settings
	reporter  Reporter
}

// NewDriver creates a Driver writing images into outputDir. A nil reporter
// discards progress events.
func NewDriver(tool Tool, outputDir string, settings Settings, reporter Reporter) *Driver {
	if reporter == nil {
		reporter = NopReporter{}
	}
	if settings.Timeout <= 0 {
		settings.Timeout = DefaultTimeout
	}
	return &Driver{
		tool:      tool,
		outputDir: outputDir,
		settings:  settings,
		reporter:  reporter,
	}
}

// OutputPath returns the image path for a plant id.
func (d *Driver) OutputPath(id string) string {
	return ImagePath(d.outputDir, id)
}

// ImagePath returns the image path for a plant id inside dir.
func ImagePath(dir, id string) string {
	return filepath.Join(dir, id+ImageExt)
}

// Run processes every plant sequentially. Per-plant failures are recorded in
// the summary; the returned error is non-nil only when ctx is cancelled, in
// which case the summary covers the plants processed so far.
func (d *Driver) Run(ctx context.Context, plants catalog.Catalog) (*Summary, error) {
	logger := ctxlog.FromContext(ctx)
	summary := &Summary{Total: len(plants)}

	d.reporter.Begin(len(plants), d.outputDir)
	for i, p := range plants {
		if err := ctx.Err(); err != nil {
			logger.Warn("Run interrupted.", "processed", i, "total", len(plants))
			return summary, err
		}
		d.reporter.Start(i+1, len(plants), p)

		outcome, err := d.Process(ctx, p)
		if err != nil {
			logger.Warn("Run interrupted.", "plant", p.ID, "processed", i, "total", len(plants))
			return summary, err
		}
		summary.add(outcome)
		d.reporter.Finish(outcome)
	}
	d.reporter.End(summary)

	logger.Info("🏁 Generation finished.",
		"total", summary.Total,
		"generated", summary.Generated,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
	)
	return summary, nil
}

// Process handles a single plant. The error is non-nil only when the parent
// context was cancelled; every other failure is reported in the Outcome.
func (d *Driver) Process(ctx context.Context, p catalog.Plant) (Outcome, error) {
	ctx = ctxlog.With(ctx, "plant", p.ID)
	logger := ctxlog.FromContext(ctx)
	out := Outcome{Plant: p, Path: d.OutputPath(p.ID)}

	exists, err := fsutil.Exists(out.Path)
	if err != nil {
		out.Status = StatusFailed
		out.Err = fmt.Errorf("failed to check %s: %w", out.Path, err)
		logger.Error("Cannot check existing image.", "path", out.Path, "error", err)
		return out, nil
	}
	if exists {
		logger.Debug("Image already exists, skipping.", "path", out.Path)
		out.Status = StatusSkipped
		return out, nil
	}

	out.Seed = Seed(p.ID)
	req := Request{
		Model:  d.settings.Model,
		Prompt: prompt.Build(p),
		Width:  d.settings.Width,
		Height: d.settings.Height,
		Steps:  d.settings.Steps,
		Seed:   out.Seed,
		Output: out.Path,
	}
	d.reporter.Generating(p)
	logger.Debug("Invoking generator.", "seed", req.Seed, "timeout", d.settings.Timeout)

	itemCtx, cancel := context.WithTimeout(ctx, d.settings.Timeout)
	start := time.Now()
	toolErr := d.tool.Generate(itemCtx, req)
	out.Duration = time.Since(start)
	deadlineHit := errors.Is(itemCtx.Err(), context.DeadlineExceeded)
	cancel()

	if err := ctx.Err(); err != nil {
		d.removePartial(ctx, out.Path)
		return out, err
	}

	switch {
	case toolErr != nil && deadlineHit:
		out.Err = fmt.Errorf("%w after %s", ErrTimeout, d.settings.Timeout)
	case toolErr != nil:
		out.Err = toolErr
	default:
		exists, err := fsutil.Exists(out.Path)
		switch {
		case err != nil:
			out.Err = fmt.Errorf("failed to check %s: %w", out.Path, err)
		case !exists:
			out.Err = fmt.Errorf("%w: %s", ErrMissingOutput, out.Path)
		}
	}

	if out.Err != nil {
		out.Status = StatusFailed
		logger.Error("Image generation failed.", "error", out.Err, "duration", out.Duration)
		d.removePartial(ctx, out.Path)
		return out, nil
	}

	out.Status = StatusGenerated
	logger.Info("✅ Image generated.", "path", out.Path, "duration", out.Duration)
	return out, nil
}

// removePartial deletes whatever a failed run left at path so the next run
// retries the plant instead of skipping it.
func (d *Driver) removePartial(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		ctxlog.FromContext(ctx).Warn("Could not remove partial image.", "path", path, "error", err)
	}
}
