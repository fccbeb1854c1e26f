/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"

	"github.com/backwell/horario/internal/ioreport"
	"github.com/backwell/horario/pkg/store"
	"github.com/spf13/cobra"
)

// getTimetableCmd returns the timetable command.
func getTimetableCmd() *cobra.Command {
	var (
		filter filterFlags
		out    outputFlags
		from   string
		weeks  int
	)

	timetableCmd := &cobra.Command{
		Use:   "timetable",
		Short: "Print or export the weekly timetable",
		Long: `Timetable lays the selected meetings out as a weekly grid: one
column per day, one row per time range. Meetings with the same range on
the same day share a cell. Overlapping cells are listed below the grid.

The xlsx format writes the grid, the meetings and the conflicts into
separate worksheets. The ics format writes one weekly recurring event
per meeting, starting in the week of --from.

Examples:
  horario timetable --subject algebra
  horario timetable --room A-101 -f xlsx -o a101.xlsx
  horario timetable --instructor "ana perez" -f ics --from 2025-08-04 --weeks 16 -o ana.ics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			anchor, err := parseDate(from)
			if err != nil {
				return printError(err)
			}
			ropts := out.options()
			ropts.Anchor = anchor
			ropts.Weeks = weeks
			return runTimetable(filter.filter(), out.output, ropts)
		},
	}

	filter.add(timetableCmd)
	out.add(timetableCmd)
	timetableCmd.Flags().StringVar(&from, "from", "",
		"first week of calendar events, YYYY-MM-DD (default: this week)")
	timetableCmd.Flags().IntVar(&weeks, "weeks", 0,
		"number of weekly repetitions of calendar events (0: no end)")

	return timetableCmd
}

func runTimetable(
	f store.SlotFilter,
	output string,
	ropts ioreport.Options,
) error {
	ctx := context.Background()

	views, ok, err := loadSlots(ctx, f)
	if err != nil {
		return printError(err)
	}
	if !ok {
		return nil
	}

	err = writeReport(output, ropts, func(w *ioreport.Writer) error {
		return w.Timetable(views)
	})
	if err != nil {
		return printError(err)
	}
	return nil
}
