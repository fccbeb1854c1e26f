package ioimport

import (
	"log/slog"

	"github.com/backwell/horario/pkg/lifecycle"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
)

func warnSkipped(courses int64) {
	slog.Warn("Insert-only import skipped, courses exist",
		"courses", courses)
	gn.Warn(`Database already has <em>%s</em> courses, nothing is imported.
Use <em>--mode upsert</em> to update existing courses.`,
		humanize.Comma(courses))
}

// PrintSummary shows the outcome of an import run to the user.
func PrintSummary(s *lifecycle.Summary) {
	if s.Skipped {
		gn.Info("Import of <em>%s</em> skipped", s.Source)
		return
	}

	gn.Info(`Import complete
Rows read: <em>%s</em>, sections: <em>%s</em>, failed: %s
Courses created: <em>%s</em>, updated: <em>%s</em>
Meetings created: <em>%s</em>, already present: <em>%s</em>
Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(s.Rows)),
		humanize.Comma(int64(s.Groups)),
		humanize.Comma(int64(s.GroupsFailed)),
		humanize.Comma(int64(s.CoursesCreated)),
		humanize.Comma(int64(s.CoursesUpdated)),
		humanize.Comma(int64(s.SlotsCreated)),
		humanize.Comma(int64(s.SlotsExisting)),
		gnfmt.TimeString(s.Duration().Seconds()),
	)

	if len(s.Issues) == 0 {
		return
	}

	gn.Message("Rows skipped: <em>%s</em>, meetings skipped: <em>%s</em>",
		humanize.Comma(int64(s.RowsSkipped())),
		humanize.Comma(int64(s.SlotsSkipped())),
	)
	counts := s.SkipReasons()
	for _, r := range s.Reasons() {
		gn.Message("  %s: %s", r, humanize.Comma(int64(counts[r])))
	}
}
