package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquash(t *testing.T) {
	tests := []struct {
		msg, in, out string
	}{
		{"double space", "Total  inscripciones", "Total inscripciones"},
		{"tabs and edges", " Capacidad\tInsc.\n Comb. ", "Capacidad Insc. Comb."},
		{"single word", "Profesor", "Profesor"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.out, squash(tt.in))
		})
	}
}
