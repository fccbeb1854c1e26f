// Package iotable reads tabular catalog exports (.xlsx or .csv) into
// catalog rows. It checks that the header looks like an export and
// leaves everything else to the pure catalog package.
package iotable

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/backwell/horario/pkg/catalog"
	"github.com/xuri/excelize/v2"
)

// Options control how the table is located inside the file.
type Options struct {
	// Sheet is the worksheet of a workbook. Empty means the first one.
	Sheet string
	// HeaderRow is the zero-based index of the header line.
	HeaderRow int
}

// Table is a parsed export.
type Table struct {
	Source string
	// Sheet is the worksheet the rows came from, empty for CSV.
	Sheet  string
	Header catalog.Header
	// Rows are the non-blank data lines below the header.
	Rows []catalog.Row
}

type record struct {
	line  int
	cells []string
}

// Read opens the file, finds the header and converts the lines below it
// into rows. The format is chosen by file extension.
func Read(path string, opts Options) (*Table, error) {
	var recs []record
	var sheet string
	var err error

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".xlsx", ".xlsm":
		recs, sheet, err = readXLSX(path, opts.Sheet)
	case ".csv":
		recs, err = readCSV(path)
	default:
		return nil, UnknownFormatError(path, ext)
	}
	if err != nil {
		return nil, err
	}

	if opts.HeaderRow < 0 || opts.HeaderRow >= len(recs) {
		return nil, HeaderRowError(path, opts.HeaderRow, len(recs))
	}

	header := catalog.NewHeader(recs[opts.HeaderRow].cells)
	if missing := header.Missing(catalog.RequiredColumns...); len(missing) > 0 {
		return nil, MissingColumnsError(path, opts.HeaderRow, missing)
	}

	res := &Table{Source: path, Sheet: sheet, Header: header}
	for _, rec := range recs[opts.HeaderRow+1:] {
		row := header.Row(rec.line, rec.cells)
		if row.IsBlank() {
			continue
		}
		res.Rows = append(res.Rows, row)
	}
	return res, nil
}

func readXLSX(path, sheet string) ([]record, string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, "", ReadError(path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if sheet == "" && len(sheets) > 0 {
		sheet = sheets[0]
	}
	if !slices.Contains(sheets, sheet) {
		return nil, "", SheetNotFoundError(path, sheet, sheets)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, "", ReadError(path, err)
	}

	res := make([]record, len(rows))
	for i, cells := range rows {
		res[i] = record{line: i + 1, cells: cells}
	}
	return res, sheet, nil
}

func readCSV(path string) ([]record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ReadError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var res []record
	for {
		cells, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, ReadError(path, err)
		}
		line, _ := r.FieldPos(0)
		if len(res) == 0 && len(cells) > 0 {
			cells[0] = strings.TrimPrefix(cells[0], "\ufeff")
		}
		res = append(res, record{line: line, cells: cells})
	}
	return res, nil
}
