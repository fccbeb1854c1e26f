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
	"github.com/backwell/horario/pkg/conflict"
	"github.com/backwell/horario/pkg/store"
	"github.com/spf13/cobra"
)

// getConflictsCmd returns the conflicts command.
func getConflictsCmd() *cobra.Command {
	var (
		filter       filterFlags
		out          outputFlags
		byRoom       bool
		byInstructor bool
	)

	conflictsCmd := &cobra.Command{
		Use:   "conflicts",
		Short: "List overlapping meetings",
		Long: `Conflicts compares the meetings of every day and lists each pair
whose time ranges overlap. Meetings that only touch (one ends when the
other starts) do not conflict.

By default only time ranges are compared and meetings with exactly the
same range are not reported. With --by-room or --by-instructor only
meetings sharing a room or an instructor are compared, and identical
ranges are reported as well. Online and unassigned rooms are never
compared by room.

Examples:
  horario conflicts
  horario conflicts --by-room --cycle 2025-1
  horario conflicts --by-instructor -f csv -o conflicts.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			copts := conflict.Options{
				ByRoom:       byRoom,
				ByInstructor: byInstructor,
			}
			return runConflicts(filter.filter(), copts, out)
		},
	}

	filter.add(conflictsCmd)
	out.add(conflictsCmd)
	conflictsCmd.Flags().BoolVar(&byRoom, "by-room", false,
		"report meetings that share a room at the same time")
	conflictsCmd.Flags().BoolVar(&byInstructor, "by-instructor", false,
		"report meetings of one instructor at the same time")

	return conflictsCmd
}

func runConflicts(
	f store.SlotFilter,
	copts conflict.Options,
	out outputFlags,
) error {
	ctx := context.Background()

	views, ok, err := loadSlots(ctx, f)
	if err != nil {
		return printError(err)
	}
	if !ok {
		return nil
	}

	cc := conflict.Detect(store.ConflictSlots(views), copts)
	err = writeReport(out.output, out.options(), func(w *ioreport.Writer) error {
		return w.Conflicts(cc)
	})
	if err != nil {
		return printError(err)
	}
	return nil
}
