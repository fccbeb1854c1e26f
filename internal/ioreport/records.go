package ioreport

import (
	"strconv"
	"strings"

	"github.com/backwell/horario/pkg/catalog"
	"github.com/backwell/horario/pkg/conflict"
	"github.com/backwell/horario/pkg/planner"
	"github.com/backwell/horario/pkg/store"
)

type slotRecord struct {
	Day         string `json:"day"         yaml:"day"`
	Start       string `json:"start"       yaml:"start"`
	End         string `json:"end"         yaml:"end"`
	CourseKey   string `json:"courseKey"   yaml:"course_key"`
	ClassNumber string `json:"classNumber" yaml:"class_number"`
	Subject     string `json:"subject"     yaml:"subject"`
	Instructor  string `json:"instructor"  yaml:"instructor"`
	Room        string `json:"room"        yaml:"room"`
	Cycle       string `json:"cycle"       yaml:"cycle"`
	Session     string `json:"session"     yaml:"session"`
}

var slotHeader = []string{
	"day", "start", "end", "course_key", "class_number", "subject",
	"instructor", "room", "cycle", "session",
}

func newSlotRecord(v store.SlotView) slotRecord {
	return slotRecord{
		Day:         v.Day.String(),
		Start:       v.Start.String(),
		End:         v.End.String(),
		CourseKey:   v.CourseKey,
		ClassNumber: v.ClassNumber,
		Subject:     v.Subject,
		Instructor:  v.Instructor,
		Room:        v.Room,
		Cycle:       v.Cycle,
		Session:     v.Session,
	}
}

func slotRows(views []store.SlotView) [][]string {
	res := make([][]string, len(views))
	for i, v := range views {
		s := newSlotRecord(v)
		res[i] = []string{
			s.Day, s.Start, s.End, s.CourseKey, s.ClassNumber, s.Subject,
			s.Instructor, s.Room, s.Cycle, s.Session,
		}
	}
	return res
}

var conflictHeader = []string{
	"day", "range_a", "label_a", "range_b", "label_b", "resource", "holder",
}

func conflictRows(cc []conflict.Conflict) [][]string {
	res := make([][]string, len(cc))
	for i, c := range cc {
		res[i] = []string{
			c.DayName, c.RangeA, c.LabelA, c.RangeB, c.LabelB,
			string(c.Resource), c.Holder,
		}
	}
	return res
}

type cellRecord struct {
	Range  string   `json:"range"  yaml:"range"`
	Labels []string `json:"labels" yaml:"labels"`
}

type dayRecord struct {
	Day   string       `json:"day"   yaml:"day"`
	Cells []cellRecord `json:"cells" yaml:"cells"`
}

type timetable struct {
	Days      []dayRecord         `json:"days"      yaml:"days"`
	Conflicts []conflict.Conflict `json:"conflicts" yaml:"conflicts"`
	Slots     []slotRecord        `json:"slots"     yaml:"slots"`
}

func newTimetable(
	views []store.SlotView,
	grid conflict.Grid,
	cc []conflict.Conflict,
) timetable {
	res := timetable{
		Days:      make([]dayRecord, 0, len(grid.Days)),
		Conflicts: cc,
		Slots:     make([]slotRecord, len(views)),
	}
	if res.Conflicts == nil {
		res.Conflicts = []conflict.Conflict{}
	}
	for _, d := range grid.Days {
		day := dayRecord{Day: d.Day.String()}
		for _, c := range d.Cells {
			day.Cells = append(day.Cells,
				cellRecord{Range: c.Range.String(), Labels: c.Labels})
		}
		res.Days = append(res.Days, day)
	}
	for i, v := range views {
		res.Slots[i] = newSlotRecord(v)
	}
	return res
}

type optionRecord struct {
	Subject    string   `json:"subject"    yaml:"subject"`
	CourseKey  string   `json:"courseKey"  yaml:"course_key"`
	Instructor string   `json:"instructor" yaml:"instructor"`
	Meetings   []string `json:"meetings"   yaml:"meetings"`
}

type planRecord struct {
	Number  int            `json:"number"  yaml:"number"`
	Options []optionRecord `json:"options" yaml:"options"`
}

func newPlans(plans []planner.Plan) []planRecord {
	res := make([]planRecord, len(plans))
	for i, p := range plans {
		rec := planRecord{Number: i + 1}
		for _, o := range p.Options {
			rec.Options = append(rec.Options, optionRecord{
				Subject:    o.Subject,
				CourseKey:  o.CourseKey,
				Instructor: o.Instructor,
				Meetings:   meetings(o.Slots),
			})
		}
		res[i] = rec
	}
	return res
}

// meetings describes slots as "Lunes 07:00 - 09:00", one per distinct
// day and range.
func meetings(slots []conflict.Slot) []string {
	var res []string
	seen := make(map[string]struct{})
	for _, d := range catalog.Weekdays {
		for _, s := range slots {
			if s.Day != d {
				continue
			}
			m := d.String() + " " + s.Range.String()
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			res = append(res, m)
		}
	}
	return res
}

var planHeader = []string{
	"plan", "subject", "course_key", "instructor", "meetings",
}

func planRows(plans []planRecord) [][]string {
	var res [][]string
	for _, p := range plans {
		for _, o := range p.Options {
			res = append(res, []string{
				strconv.Itoa(p.Number), o.Subject, o.CourseKey, o.Instructor,
				strings.Join(o.Meetings, "; "),
			})
		}
	}
	return res
}
