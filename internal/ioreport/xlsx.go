package ioreport

import (
	"github.com/backwell/horario/pkg/conflict"
	"github.com/backwell/horario/pkg/store"
	"github.com/xuri/excelize/v2"
)

// Worksheet names.
const (
	SheetGrid      = "Horario"
	SheetSlots     = "Clases"
	SheetConflicts = "Conflictos"
	SheetPlans     = "Planes"
)

type sheet struct {
	name   string
	header []string
	rows   [][]string
	width  float64
}

func gridSheet(grid conflict.Grid) sheet {
	res := sheet{name: SheetGrid, header: []string{"Hora"}, width: 30}
	for _, d := range grid.Days {
		res.header = append(res.header, d.Day.String())
	}
	for _, rng := range grid.Ranges() {
		row := []string{rng.String()}
		for _, d := range grid.Days {
			var text string
			if c, ok := grid.Cell(d.Day, rng); ok {
				text = c.Text()
			}
			row = append(row, text)
		}
		res.rows = append(res.rows, row)
	}
	return res
}

func slotSheet(views []store.SlotView) sheet {
	return sheet{
		name:   SheetSlots,
		header: slotHeader,
		rows:   slotRows(views),
		width:  16,
	}
}

func conflictSheet(cc []conflict.Conflict) sheet {
	return sheet{
		name:   SheetConflicts,
		header: conflictHeader,
		rows:   conflictRows(cc),
		width:  24,
	}
}

func planSheet(plans []planRecord) sheet {
	return sheet{
		name:   SheetPlans,
		header: planHeader,
		rows:   planRows(plans),
		width:  24,
	}
}

// workbook writes sheets into a new workbook, the first one replacing the
// default sheet.
func (r *Writer) workbook(sheets []sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return WriteError(r.opts.Format, err)
	}

	for i, sh := range sheets {
		if i == 0 {
			err = f.SetSheetName("Sheet1", sh.name)
		} else {
			_, err = f.NewSheet(sh.name)
		}
		if err != nil {
			return WriteError(r.opts.Format, err)
		}
		if err = fillSheet(f, sh, headerStyle); err != nil {
			return WriteError(r.opts.Format, err)
		}
	}
	f.SetActiveSheet(0)

	if err = f.Write(r.w); err != nil {
		return WriteError(r.opts.Format, err)
	}
	return nil
}

func fillSheet(f *excelize.File, sh sheet, style int) error {
	last, err := excelize.ColumnNumberToName(len(sh.header))
	if err != nil {
		return err
	}
	if err = f.SetColWidth(sh.name, "A", last, sh.width); err != nil {
		return err
	}

	for i, rec := range append([][]string{sh.header}, sh.rows...) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		vals := make([]any, len(rec))
		for j, v := range rec {
			vals[j] = v
		}
		if err = f.SetSheetRow(sh.name, cell, &vals); err != nil {
			return err
		}
	}

	return f.SetCellStyle(sh.name, "A1", last+"1", style)
}
