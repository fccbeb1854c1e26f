package catalog

import (
	"strings"
)

// Header maps column labels of an export to their positions.
type Header struct {
	labels []string
	idx    map[string]int
}

// NewHeader builds a Header from the raw labels of the header row.
// Labels are trimmed and inner whitespace is collapsed. When the combined
// enrollment capacity column is missing under its usual name, the first
// other column mentioning both "capacidad" and "comb" stands in for it.
func NewHeader(labels []string) Header {
	res := Header{
		labels: make([]string, len(labels)),
		idx:    make(map[string]int, len(labels)),
	}
	for i, l := range labels {
		l = squash(l)
		res.labels[i] = l
		if l == "" {
			continue
		}
		if _, ok := res.idx[l]; !ok {
			res.idx[l] = i
		}
	}

	if _, ok := res.idx[ColCombinedCapacity]; !ok {
		for i, l := range res.labels {
			f := Fold(l)
			if strings.Contains(f, "capacidad") && strings.Contains(f, "comb") {
				res.idx[ColCombinedCapacity] = i
				break
			}
		}
	}
	return res
}

// Labels returns normalized header labels in column order.
func (h Header) Labels() []string {
	return h.labels
}

// Has reports whether the column is present.
func (h Header) Has(col string) bool {
	_, ok := h.idx[squash(col)]
	return ok
}

// Missing returns the given columns that are absent from the header.
func (h Header) Missing(cols ...string) []string {
	var res []string
	for _, c := range cols {
		if !h.Has(c) {
			res = append(res, c)
		}
	}
	return res
}

// Row creates a Row from the cells of one data line. Line is the
// one-based line number in the source, used in diagnostics.
func (h Header) Row(line int, cells []string) Row {
	res := Row{Line: line, cells: make(map[string]string, len(h.idx))}
	for col, i := range h.idx {
		if i < len(cells) {
			res.cells[col] = cells[i]
		}
	}
	return res
}

// Row is one data line of the export, addressed by column label.
type Row struct {
	Line  int
	cells map[string]string
}

// NewRow creates a Row directly from label/value pairs.
func NewRow(line int, cells map[string]string) Row {
	res := Row{Line: line, cells: make(map[string]string, len(cells))}
	for k, v := range cells {
		res.cells[squash(k)] = v
	}
	return res
}

// Get returns the trimmed value of a column. Absent columns and missing
// cells read as an empty string.
func (r Row) Get(col string) string {
	return strings.TrimSpace(r.cells[squash(col)])
}

// IsBlank reports whether every cell of the row is empty.
func (r Row) IsBlank() bool {
	for _, v := range r.cells {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
