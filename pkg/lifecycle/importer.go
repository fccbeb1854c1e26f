// Package lifecycle declares the stages a catalog goes through: schema
// management and import. Implementations live in internal packages.
package lifecycle

import (
	"context"
	"maps"
	"slices"
	"time"

	"github.com/backwell/horario/pkg/catalog"
)

// Importer loads a catalog export into the normalized store.
type Importer interface {
	// Import reads the file, reconciles its rows into sections and
	// upserts them. A file that cannot be read or does not look like an
	// export aborts the run. Problems with single rows are collected in
	// the summary.
	Import(ctx context.Context, path string) (*Summary, error)
}

// Summary reports the outcome of an import run.
type Summary struct {
	RunID  string `json:"runId"  yaml:"run_id"`
	Source string `json:"source" yaml:"source"`
	Mode   string `json:"mode"   yaml:"mode"`

	// Skipped is true when an insert-only run found existing courses and
	// did nothing.
	Skipped bool `json:"skipped" yaml:"skipped"`

	Rows           int `json:"rows"           yaml:"rows"`
	Groups         int `json:"groups"         yaml:"groups"`
	GroupsFailed   int `json:"groupsFailed"   yaml:"groups_failed"`
	CoursesCreated int `json:"coursesCreated" yaml:"courses_created"`
	CoursesUpdated int `json:"coursesUpdated" yaml:"courses_updated"`
	SlotsCreated   int `json:"slotsCreated"   yaml:"slots_created"`
	SlotsExisting  int `json:"slotsExisting"  yaml:"slots_existing"`

	// Issues lists every skipped row or slot.
	Issues []catalog.Issue `json:"issues" yaml:"issues"`

	StartedAt  time.Time `json:"startedAt"  yaml:"started_at"`
	FinishedAt time.Time `json:"finishedAt" yaml:"finished_at"`
}

// RowsSkipped counts rows that were left out entirely.
func (s *Summary) RowsSkipped() int {
	var res int
	for _, is := range s.Issues {
		if !is.SlotOnly {
			res++
		}
	}
	return res
}

// SlotsSkipped counts rows whose meetings were dropped.
func (s *Summary) SlotsSkipped() int {
	return len(s.Issues) - s.RowsSkipped()
}

// SkipReasons counts issues per reason.
func (s *Summary) SkipReasons() map[string]int {
	res := make(map[string]int)
	for _, is := range s.Issues {
		res[is.Reason]++
	}
	return res
}

// Reasons returns the reasons of SkipReasons in sorted order.
func (s *Summary) Reasons() []string {
	return slices.Sorted(maps.Keys(s.SkipReasons()))
}

// Duration of the run.
func (s *Summary) Duration() time.Duration {
	return s.FinishedAt.Sub(s.StartedAt)
}
