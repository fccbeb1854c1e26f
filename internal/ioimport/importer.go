// Package ioimport implements the Importer interface: it reads a catalog
// export, reconciles rows into sections and writes them to the store one
// transaction per section.
// This is an impure I/O package.
package ioimport

import (
	"context"
	"log/slog"
	"time"

	"github.com/backwell/horario/internal/iotable"
	"github.com/backwell/horario/pkg/catalog"
	"github.com/backwell/horario/pkg/config"
	"github.com/backwell/horario/pkg/lifecycle"
	"github.com/backwell/horario/pkg/schema"
	"github.com/backwell/horario/pkg/store"
	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
)

// importer implements the lifecycle.Importer interface.
type importer struct {
	cfg   *config.Config
	store store.Store
}

// New creates a new Importer.
func New(cfg *config.Config, st store.Store) lifecycle.Importer {
	return &importer{cfg: cfg, store: st}
}

// Import reads the file and upserts its sections.
func (im *importer) Import(
	ctx context.Context,
	path string,
) (*lifecycle.Summary, error) {
	res := &lifecycle.Summary{
		RunID:     uuid.NewString(),
		Source:    path,
		Mode:      im.cfg.Import.Mode,
		StartedAt: time.Now(),
	}
	slog.Info("Starting import",
		"run_id", res.RunID,
		"source", path,
		"mode", res.Mode,
		"instructor_key", im.cfg.Import.InstructorKey,
	)

	tbl, err := iotable.Read(path, iotable.Options{
		Sheet:     im.cfg.Import.Sheet,
		HeaderRow: im.cfg.Import.HeaderRow,
	})
	if err != nil {
		return nil, err
	}
	res.Rows = len(tbl.Rows)

	if im.cfg.Import.Mode == config.ModeInsertOnly {
		n, err := im.store.CountCourses(ctx)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			warnSkipped(n)
			res.Skipped = true
			return res, im.finish(ctx, res)
		}
	}

	groups, unkeyed := catalog.GroupRows(tbl.Rows)
	res.Groups = len(groups)
	for _, r := range unkeyed {
		res.Issues = append(res.Issues,
			catalog.Issue{Line: r.Line, Reason: catalog.ReasonNoKey})
		slog.Warn("Skipped row", "row", r.Line, "reason", catalog.ReasonNoKey)
	}

	if err = im.importGroups(ctx, groups, res); err != nil {
		return nil, err
	}

	if err = im.finish(ctx, res); err != nil {
		return nil, err
	}

	attempted := res.CoursesCreated + res.CoursesUpdated + res.GroupsFailed
	if res.GroupsFailed > 0 && res.GroupsFailed == attempted {
		return res, AllGroupsFailedError(res.GroupsFailed)
	}
	return res, nil
}

func (im *importer) importGroups(
	ctx context.Context,
	groups []catalog.Group,
	res *lifecycle.Summary,
) error {
	keyFn := catalog.InstructorKey(im.cfg.Import.InstructorKey)

	bar := pb.Full.Start(len(groups))
	bar.Set("prefix", "Importing courses: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	for _, g := range groups {
		select {
		case <-ctx.Done():
			return CancelledError(ctx.Err())
		default:
		}

		sec := catalog.Reconcile(g, keyFn)
		for _, is := range sec.Issues {
			logIssue(is)
		}
		res.Issues = append(res.Issues, sec.Issues...)

		if !sec.IsValid() {
			// named instructors are kept as reference records
			if err := im.store.SaveInstructors(ctx, sec.Instructors); err != nil {
				slog.Error("Failed to save instructors",
					"course_key", sec.Key,
					"error", err,
				)
			}
			bar.Increment()
			continue
		}

		saved, err := im.store.SaveSection(ctx, sec)
		bar.Increment()
		if err != nil {
			res.GroupsFailed++
			slog.Error("Failed to save course",
				"course_key", sec.Key,
				"error", err,
			)
			// Committed courses stay, continue with the next one
			continue
		}

		if saved.CourseCreated {
			res.CoursesCreated++
		} else {
			res.CoursesUpdated++
		}
		res.SlotsCreated += saved.SlotsCreated
		res.SlotsExisting += saved.SlotsExisting
	}
	return nil
}

func (im *importer) finish(ctx context.Context, res *lifecycle.Summary) error {
	res.FinishedAt = time.Now()
	run := runRecord(res, im.cfg.Import.InstructorKey)
	if err := im.store.SaveRun(ctx, &run); err != nil {
		return err
	}

	slog.Info("Import complete",
		"run_id", res.RunID,
		"groups", res.Groups,
		"groups_failed", res.GroupsFailed,
		"courses_created", res.CoursesCreated,
		"courses_updated", res.CoursesUpdated,
		"slots_created", res.SlotsCreated,
		"slots_existing", res.SlotsExisting,
		"rows_skipped", res.RowsSkipped(),
		"duration", gnfmt.TimeString(res.Duration().Seconds()),
	)
	return nil
}

func logIssue(is catalog.Issue) {
	msg := "Skipped row"
	if is.SlotOnly {
		msg = "Skipped meeting"
	}
	slog.Warn(msg,
		"row", is.Line,
		"course_key", is.Key,
		"reason", is.Reason,
		"detail", is.Detail,
	)
}

func runRecord(s *lifecycle.Summary, instructorKey string) schema.ImportRun {
	return schema.ImportRun{
		ID:             s.RunID,
		Source:         s.Source,
		Mode:           s.Mode,
		InstructorKey:  instructorKey,
		Rows:           s.Rows,
		Groups:         s.Groups,
		CoursesCreated: s.CoursesCreated,
		CoursesUpdated: s.CoursesUpdated,
		SlotsCreated:   s.SlotsCreated,
		SlotsExisting:  s.SlotsExisting,
		RowsSkipped:    s.RowsSkipped(),
		SlotsSkipped:   s.SlotsSkipped(),
		Skipped:        s.Skipped,
		StartedAt:      s.StartedAt,
		FinishedAt:     s.FinishedAt,
	}
}
