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
	"fmt"
	"strings"
	"time"

	"github.com/backwell/horario/internal/iodb"
	"github.com/backwell/horario/internal/ioreport"
	"github.com/backwell/horario/pkg/config"
	"github.com/backwell/horario/pkg/db"
	"github.com/backwell/horario/pkg/store"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// filterFlags select the meetings a report works with.
type filterFlags struct {
	subject    string
	instructor string
	room       string
	cycle      string
	session    string
}

func (f *filterFlags) add(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.subject, "subject", "s", "",
		"subject name contains the text (case and accents ignored)")
	fl.StringVarP(&f.instructor, "instructor", "i", "",
		"instructor name contains the text (case and accents ignored)")
	fl.StringVarP(&f.room, "room", "r", "", "exact room name")
	fl.StringVar(&f.cycle, "cycle", "", "exact academic cycle")
	fl.StringVar(&f.session, "session", "", "exact session")
}

func (f *filterFlags) filter() store.SlotFilter {
	return store.SlotFilter{
		Subject:    f.subject,
		Instructor: f.instructor,
		Room:       f.room,
		Cycle:      f.cycle,
		Session:    f.session,
	}
}

// outputFlags choose the format and destination of a report.
type outputFlags struct {
	format string
	output string
}

func (o *outputFlags) add(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "format", "f", "",
		"output format: table, json, yaml, csv, xlsx, ics "+
			"(default from config)")
	cmd.Flags().StringVarP(&o.output, "output", "o", "",
		"write the report to a file instead of STDOUT")
}

// options applies the format flag to the config and returns report
// options.
func (o *outputFlags) options() ioreport.Options {
	if o.format != "" {
		cfg.Update([]config.Option{config.OptReportFormat(o.format)})
		if cfg.Report.Format != strings.ToLower(strings.TrimSpace(o.format)) {
			// rejected option, keep the user's value to report the error
			return ioreport.Options{Format: o.format}
		}
	}
	return ioreport.Options{Format: cfg.Report.Format}
}

// connect opens the configured database.
func connect(ctx context.Context) (db.Operator, error) {
	op, err := iodb.New(cfg.Database.Driver)
	if err != nil {
		return nil, err
	}
	if err = op.Connect(ctx, cfg); err != nil {
		return nil, err
	}
	gn.Info("Connected to database: <em>%s</em>", dbLabel(cfg))
	return op, nil
}

// connectSchema opens the database and makes sure the schema exists.
// It returns nil operator and nil error when the database is empty.
func connectSchema(ctx context.Context) (db.Operator, error) {
	op, err := connect(ctx)
	if err != nil {
		return nil, err
	}

	hasTables, err := op.HasTables(ctx)
	if err != nil {
		op.Close()
		return nil, err
	}
	if !hasTables {
		op.Close()
		gn.Warn("Database appears to be empty. " +
			"Run <em>horario create</em> first.")
		return nil, nil
	}
	return op, nil
}

func dbLabel(c *config.Config) string {
	if c.Database.Driver == "sqlite" {
		return c.SQLitePath()
	}
	return fmt.Sprintf("%s@%s:%d/%s",
		c.Database.User, c.Database.Host, c.Database.Port, c.Database.Database)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(time.DateOnly, s, time.Local)
}

func printError(err error) error {
	gn.PrintErrorMessage(err)
	return err
}
