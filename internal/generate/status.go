package generate

import (
	"time"

	"github.com/vk/plantgen/internal/catalog"
)

// Status is the result of processing one plant.
type Status string

const (
	// StatusSkipped means the image already existed and the tool was not run.
	StatusSkipped Status = "Skipped"

	// StatusGenerated means the tool ran and produced the image.
	StatusGenerated Status = "Generated"

	// StatusFailed means the tool timed out, failed, or produced no image.
	StatusFailed Status = "Failed"
)

// String returns the string representation of Status.
func (s Status) String() string {
	return string(s)
}

// Outcome records what happened to one plant during a run.
type Outcome struct {
	Plant    catalog.Plant
	Path     string
	Status   Status
	Seed     int64 // zero when skipped
	Duration time.Duration
	Err      error
}

// OK reports whether the plant counts towards the success total.
func (o Outcome) OK() bool {
	return o.Status == StatusSkipped || o.Status == StatusGenerated
}

// Summary aggregates the outcomes of a run.
type Summary struct {
	Total     int
	Succeeded int
	Generated int
	Skipped   int
	Failed    int
	Outcomes  []Outcome
}

func (s *Summary) add(o Outcome) {
	s.Outcomes = append(s.Outcomes, o)
	switch o.Status {
	case StatusSkipped:
		s.Skipped++
	case StatusGenerated:
		s.Generated++
	case StatusFailed:
		s.Failed++
	}
	if o.OK() {
		s.Succeeded++
	}
}
