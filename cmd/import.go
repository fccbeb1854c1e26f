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
	"os"
	"os/signal"

	"github.com/backwell/horario/internal/ioimport"
	"github.com/backwell/horario/internal/iostore"
	"github.com/backwell/horario/pkg/config"
	"github.com/spf13/cobra"
)

// getImportCmd returns the import command.
func getImportCmd() *cobra.Command {
	var (
		sheet         string
		headerRow     int
		mode          string
		instructorKey string
	)

	importCmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a course catalog export",
		Long: `Import reads a catalog export (.xlsx or .csv) and writes its courses,
subjects, instructors, rooms and weekly meetings into the database.

Rows sharing a class number, or the same set of combined classes, form
one course section. Each section is saved in its own transaction; rows
with a missing instructor or subject are skipped and listed in the
summary. Running the same import twice does not create new records.

Modes:
  upsert       create new courses and refresh existing ones (default)
  insert-only  do nothing when the database already has courses

Press Ctrl-C to stop the import between sections.

Examples:
  horario import catalog.xlsx
  horario import catalog.xlsx --sheet Horarios
  horario import catalog.csv --header-row 0 --mode insert-only`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var upd []config.Option
			fl := cmd.Flags()
			if fl.Changed("sheet") {
				upd = append(upd, config.OptImportSheet(sheet))
			}
			if fl.Changed("header-row") {
				upd = append(upd, config.OptImportHeaderRow(headerRow))
			}
			if fl.Changed("mode") {
				upd = append(upd, config.OptImportMode(mode))
			}
			if fl.Changed("instructor-key") {
				upd = append(upd, config.OptImportInstructorKey(instructorKey))
			}
			upd = append(upd, config.OptImportFile(args[0]))
			cfg.Update(upd)
			return runImport()
		},
	}

	fl := importCmd.Flags()
	fl.StringVar(&sheet, "sheet", "",
		"worksheet of an .xlsx file (default: first sheet)")
	fl.IntVar(&headerRow, "header-row", 9,
		"zero-based line of the header row")
	fl.StringVarP(&mode, "mode", "m", config.ModeUpsert,
		"import mode: upsert or insert-only")
	fl.StringVar(&instructorKey, "instructor-key", config.InstructorKeyName,
		"identify instructors by name or external-id")

	return importCmd
}

func runImport() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	op, err := connectSchema(ctx)
	if err != nil {
		return printError(err)
	}
	if op == nil {
		return nil
	}
	defer op.Close()

	im := ioimport.New(cfg, iostore.New(op))
	res, err := im.Import(ctx, cfg.Import.File)
	if res != nil {
		ioimport.PrintSummary(res)
	}
	if err != nil {
		return printError(err)
	}

	return nil
}
