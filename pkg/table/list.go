package table

import (
	"iter"
	"strconv"
	"strings"
)

// ListRows returns a lazy sequence with one line per row, formatted as
// "name=value" pairs joined by ", ". Rows are only formatted as the
// sequence is consumed.
func ListRows(t *Table) iter.Seq[string] {
	return func(yield func(string) bool) {
		var b strings.Builder
		for _, row := range t.rows {
			b.Reset()
			for col, v := range row {
				if col > 0 {
					b.WriteString(", ")
				}
				b.WriteString(t.names[col])
				b.WriteByte('=')
				b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			}
			if !yield(b.String()) {
				return
			}
		}
	}
}
