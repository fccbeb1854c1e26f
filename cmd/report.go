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

	"github.com/backwell/horario/internal/iofs"
	"github.com/backwell/horario/internal/ioreport"
	"github.com/backwell/horario/internal/iostore"
	"github.com/backwell/horario/pkg/store"
	"github.com/gnames/gn"
)

// loadSlots reads filtered meetings. It returns ok false when the
// database has no schema yet.
func loadSlots(
	ctx context.Context,
	f store.SlotFilter,
) (views []store.SlotView, ok bool, err error) {
	op, err := connectSchema(ctx)
	if err != nil || op == nil {
		return nil, false, err
	}
	defer op.Close()

	views, err = iostore.New(op).Slots(ctx, f)
	if err != nil {
		return nil, false, err
	}
	if len(views) == 0 {
		gn.Warn("No meetings match the filter")
	}
	return views, true, nil
}

// writeReport opens the destination, renders the report with fn and
// closes the destination.
func writeReport(
	path string,
	opts ioreport.Options,
	fn func(*ioreport.Writer) error,
) error {
	out, err := iofs.Output(path)
	if err != nil {
		return err
	}

	w, err := ioreport.New(out, opts)
	if err != nil {
		out.Close()
		return err
	}

	if err = fn(w); err != nil {
		out.Close()
		return err
	}

	if err = out.Close(); err != nil {
		return iofs.WriteFileError(path, err)
	}
	if path != "" && path != "-" {
		gn.Info("Report saved to <em>%s</em>", path)
	}
	return nil
}
