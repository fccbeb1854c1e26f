// Package ioreport renders timetables, conflicts and plans in the output
// formats of the CLI: aligned text, JSON, YAML, CSV, an Excel workbook
// or an iCalendar feed.
package ioreport

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/backwell/horario/pkg/conflict"
	"github.com/backwell/horario/pkg/planner"
	"github.com/backwell/horario/pkg/store"
	"github.com/gnames/gnfmt"
	"gopkg.in/yaml.v3"
)

// Formats lists supported output formats.
var Formats = []string{"table", "json", "yaml", "csv", "xlsx", "ics"}

// Options of a report.
type Options struct {
	Format string
	// Anchor is a day of the first week of calendar exports.
	// Defaults to the current week.
	Anchor time.Time
	// Weeks limits recurrence of calendar events, zero means no limit.
	Weeks int
	// Stamp is the creation time of calendar events. Defaults to now.
	Stamp time.Time
}

// Writer renders reports to an io.Writer.
type Writer struct {
	opts Options
	w    io.Writer
}

// New creates a Writer for the format.
func New(w io.Writer, opts Options) (*Writer, error) {
	if !slices.Contains(Formats, opts.Format) {
		return nil, FormatError(opts.Format)
	}
	if opts.Anchor.IsZero() {
		opts.Anchor = time.Now()
	}
	opts.Anchor = WeekStart(opts.Anchor)
	if opts.Stamp.IsZero() {
		opts.Stamp = time.Now()
	}
	return &Writer{opts: opts, w: w}, nil
}

// WeekStart returns midnight of the Monday of the week of t.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	d := t.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}

// Conflicts renders detected conflicts.
func (r *Writer) Conflicts(cc []conflict.Conflict) error {
	if cc == nil {
		cc = []conflict.Conflict{}
	}
	switch r.opts.Format {
	case "table":
		return r.write(conflictTable(cc))
	case "json":
		return r.json(cc)
	case "yaml":
		return r.yaml(cc)
	case "csv":
		return r.csv(conflictHeader, conflictRows(cc))
	case "xlsx":
		return r.workbook([]sheet{conflictSheet(cc)})
	default:
		return UnsupportedFormatError(r.opts.Format, "conflicts")
	}
}

// Timetable renders meetings as a weekly grid, together with the
// conflicts between grid cells.
func (r *Writer) Timetable(views []store.SlotView) error {
	grid := conflict.BuildGrid(store.ConflictSlots(views))
	cc := grid.Conflicts()
	switch r.opts.Format {
	case "table":
		return r.write(timetableTable(grid, cc))
	case "json":
		return r.json(newTimetable(views, grid, cc))
	case "yaml":
		return r.yaml(newTimetable(views, grid, cc))
	case "csv":
		return r.csv(slotHeader, slotRows(views))
	case "xlsx":
		return r.workbook([]sheet{
			gridSheet(grid),
			slotSheet(views),
			conflictSheet(cc),
		})
	case "ics":
		return r.calendar(views)
	default:
		return UnsupportedFormatError(r.opts.Format, "timetable")
	}
}

// Plans renders compatible schedules.
func (r *Writer) Plans(plans []planner.Plan) error {
	recs := newPlans(plans)
	switch r.opts.Format {
	case "table":
		return r.write(planTable(recs))
	case "json":
		return r.json(recs)
	case "yaml":
		return r.yaml(recs)
	case "csv":
		return r.csv(planHeader, planRows(recs))
	case "xlsx":
		return r.workbook([]sheet{planSheet(recs)})
	default:
		return UnsupportedFormatError(r.opts.Format, "plan")
	}
}

func (r *Writer) write(s string) error {
	if _, err := io.WriteString(r.w, s); err != nil {
		return WriteError(r.opts.Format, err)
	}
	return nil
}

func (r *Writer) json(v any) error {
	enc := gnfmt.GNjson{Pretty: true}
	bs, err := enc.Encode(v)
	if err != nil {
		return WriteError(r.opts.Format, err)
	}
	return r.write(string(bs) + "\n")
}

func (r *Writer) yaml(v any) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return WriteError(r.opts.Format, err)
	}
	if err := enc.Close(); err != nil {
		return WriteError(r.opts.Format, err)
	}
	return nil
}

func (r *Writer) csv(header []string, rows [][]string) error {
	var sb strings.Builder
	sb.WriteString(gnfmt.ToCSV(header, ','))
	sb.WriteString("\n")
	for _, row := range rows {
		sb.WriteString(gnfmt.ToCSV(row, ','))
		sb.WriteString("\n")
	}
	return r.write(sb.String())
}
