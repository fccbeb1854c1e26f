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
	"github.com/backwell/horario/internal/iostore"
	"github.com/backwell/horario/pkg/planner"
	"github.com/backwell/horario/pkg/store"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getPlanCmd returns the plan command.
func getPlanCmd() *cobra.Command {
	var (
		out     outputFlags
		cycle   string
		session string
		minSize int
	)

	planCmd := &cobra.Command{
		Use:   "plan SUBJECT [SUBJECT...]",
		Short: "Find compatible schedules for a set of subjects",
		Long: `Plan picks one course section for every requested subject so that
no two meetings overlap, and lists every such combination. Subject names
are compared ignoring case and accents.

When not every subject fits, --min-size accepts partial schedules with
at least that many subjects.

Examples:
  horario plan "Algebra Lineal" "Fisica I" Quimica
  horario plan algebra fisica quimica historia --min-size 3 -f json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := planner.Request{Subjects: args, MinSize: minSize}
			f := store.SlotFilter{Cycle: cycle, Session: session}
			return runPlan(req, f, out)
		},
	}

	out.add(planCmd)
	planCmd.Flags().StringVar(&cycle, "cycle", "", "exact academic cycle")
	planCmd.Flags().StringVar(&session, "session", "", "exact session")
	planCmd.Flags().IntVar(&minSize, "min-size", 0,
		"smallest number of subjects of a partial schedule (0: all)")

	return planCmd
}

func runPlan(req planner.Request, f store.SlotFilter, out outputFlags) error {
	ctx := context.Background()

	op, err := connectSchema(ctx)
	if err != nil {
		return printError(err)
	}
	if op == nil {
		return nil
	}
	defer op.Close()

	st := iostore.New(op)
	known, err := st.Subjects(ctx)
	if err != nil {
		return printError(err)
	}

	if req.Subjects, err = planner.Resolve(req.Subjects, known); err != nil {
		return printError(err)
	}

	f.Subjects = req.Subjects
	views, err := st.Slots(ctx, f)
	if err != nil {
		return printError(err)
	}

	plans := planner.Generate(store.PlanOptions(views), req)
	if len(plans) == 0 {
		gn.Warn("No compatible schedules for the requested subjects")
	}

	err = writeReport(out.output, out.options(), func(w *ioreport.Writer) error {
		return w.Plans(plans)
	})
	if err != nil {
		return printError(err)
	}
	return nil
}
