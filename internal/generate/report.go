package generate

import (
	"fmt"
	"io"
	"strings"

	"github.com/vk/plantgen/internal/catalog"
)

// Reporter receives progress events from the Driver.
type Reporter interface {
	Begin(total int, dir string)
	Start(index, total int, p catalog.Plant)
	Generating(p catalog.Plant)
	Finish(o Outcome)
	End(s *Summary)
}

// NopReporter discards all progress events.
type NopReporter struct{}

func (NopReporter) Begin(int, string) {}
func (NopReporter) Start(int, int, catalog.Plant) {}
func (NopReporter) Generating(catalog.Plant) {}
func (NopReporter) Finish(Outcome) {}
func (NopReporter) End(*Summary) {}

var rule = strings.Repeat("-", 50)

// ConsoleReporter prints human readable progress lines.
type ConsoleReporter struct {
	w io.Writer
}

// NewConsoleReporter creates a ConsoleReporter writing to w.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w}
}

func (r *ConsoleReporter) Begin(total int, dir string) {
	fmt.Fprintf(r.w, "Generating %d plant images to %s\n", total, dir)
	fmt.Fprintln(r.w, rule)
}

func (r *ConsoleReporter) Start(index, total int, p catalog.Plant) {
	fmt.Fprintf(r.w, "[%d/%d] %s\n", index, total, p.Name)
}

func (r *ConsoleReporter) Generating(p catalog.Plant) {
	fmt.Fprintf(r.w, "  Generating: %s...\n", p.Name)
}

func (r *ConsoleReporter) Finish(o Outcome) {
	switch o.Status {
	case StatusSkipped:
		fmt.Fprintf(r.w, "  Skipping %s (already exists)\n", o.Plant.ID)
	case StatusGenerated:
		fmt.Fprintf(r.w, "  ✓ %s\n", o.Plant.Name)
	default:
		fmt.Fprintf(r.w, "  ✗ %s: %s\n", o.Plant.Name, Diagnostic(o.Err))
	}
}

func (r *ConsoleReporter) End(s *Summary) {
	fmt.Fprintln(r.w, rule)
	fmt.Fprintf(r.w, "Done! %d/%d images generated\n", s.Succeeded, s.Total)
}
