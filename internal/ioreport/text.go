package ioreport

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/backwell/horario/pkg/conflict"
)

func tabulate(header []string, rows [][]string) string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	tw.Flush()
	return sb.String()
}

func conflictTable(cc []conflict.Conflict) string {
	if len(cc) == 0 {
		return "No conflicts found\n"
	}
	header := []string{
		"DAY", "RANGE A", "CLASS A", "RANGE B", "CLASS B", "RESOURCE",
	}
	rows := make([][]string, len(cc))
	for i, c := range cc {
		res := string(c.Resource)
		if c.Holder != "" {
			res += ": " + c.Holder
		}
		rows[i] = []string{c.DayName, c.RangeA, c.LabelA, c.RangeB, c.LabelB, res}
	}
	return tabulate(header, rows) +
		fmt.Sprintf("\n%d conflicts found\n", len(cc))
}

func timetableTable(grid conflict.Grid, cc []conflict.Conflict) string {
	if len(grid.Days) == 0 {
		return "No meetings found\n"
	}

	header := []string{"TIME"}
	for _, d := range grid.Days {
		header = append(header, d.Day.String())
	}

	var rows [][]string
	for _, rng := range grid.Ranges() {
		row := []string{rng.String()}
		for _, d := range grid.Days {
			text := "-"
			if c, ok := grid.Cell(d.Day, rng); ok {
				text = c.Text()
			}
			row = append(row, text)
		}
		rows = append(rows, row)
	}

	res := tabulate(header, rows)
	if len(cc) > 0 {
		res += "\nConflicts:\n" + conflictTable(cc)
	}
	return res
}

func planTable(plans []planRecord) string {
	if len(plans) == 0 {
		return "No compatible schedules found\n"
	}

	var sb strings.Builder
	for i, p := range plans {
		if i > 0 {
			sb.WriteString("\n")
		}
		subjects := make([]string, len(p.Options))
		rows := make([][]string, len(p.Options))
		for j, o := range p.Options {
			subjects[j] = o.Subject
			rows[j] = []string{
				o.Subject, o.CourseKey, o.Instructor,
				strings.Join(o.Meetings, "; "),
			}
		}
		fmt.Fprintf(&sb, "Plan %d: %s\n", p.Number, strings.Join(subjects, ", "))
		sb.WriteString(tabulate(
			[]string{"SUBJECT", "COURSE", "INSTRUCTOR", "MEETINGS"}, rows))
	}
	return sb.String()
}
