package ioreport

import (
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/backwell/horario/pkg/catalog"
	"github.com/backwell/horario/pkg/store"
	"github.com/gnames/gnuuid"
)

// ProductID identifies calendars created by horario.
const ProductID = "-//backwell//horario//ES"

const icsTime = "20060102T150405"

// calendar writes meetings as weekly recurring events. Times are floating,
// they follow the local time of whoever imports the calendar.
func (r *Writer) calendar(views []store.SlotView) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ProductID)

	rrule := "FREQ=WEEKLY"
	if r.opts.Weeks > 0 {
		rrule += fmt.Sprintf(";COUNT=%d", r.opts.Weeks)
	}

	for _, v := range views {
		ev := cal.AddEvent(eventUID(v))
		ev.SetDtStampTime(r.opts.Stamp)
		ev.SetProperty(ics.ComponentPropertyDtStart,
			r.occurrence(v.Day, v.Start).Format(icsTime))
		ev.SetProperty(ics.ComponentPropertyDtEnd,
			r.occurrence(v.Day, v.End).Format(icsTime))
		ev.SetProperty(ics.ComponentPropertyRrule, rrule)
		ev.SetSummary(v.Label())
		if v.Room != "" {
			ev.SetLocation(v.Room)
		}
		ev.SetDescription(description(v))
	}

	return r.write(cal.Serialize())
}

// occurrence is the first meeting time on or after the anchor week.
func (r *Writer) occurrence(day catalog.Weekday, c catalog.Clock) time.Time {
	d := r.opts.Anchor.AddDate(0, 0, int(day))
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), 0, 0,
		time.UTC)
}

func eventUID(v store.SlotView) string {
	tuple := strings.Join([]string{
		v.CourseKey, v.Day.String(), v.Start.String(), v.End.String(), v.Room,
		v.Instructor,
	}, "|")
	return gnuuid.New(tuple).String() + "@horario"
}

func description(v store.SlotView) string {
	res := "Curso " + v.CourseKey
	if v.ClassNumber != "" {
		res += ", clase " + v.ClassNumber
	}
	if v.Cycle != "" {
		res += ", ciclo " + v.Cycle
	}
	return res
}
