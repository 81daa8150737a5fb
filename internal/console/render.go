package console

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of decimals printed per entry.
const DefaultPrecision = 3

// FormatCell formats v with the given number of decimals. A value that
// rounds to negative zero is printed as positive zero with a leading space
// in place of the sign, so that it keeps the same width.
func FormatCell(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	negZero := strconv.FormatFloat(0, 'f', precision, 64)

	if s == "-"+negZero {
		return " " + negZero
	}

	return s
}

// Render writes rows under a "--- title ---" header, one bracketed line per
// row with every column right-aligned to its widest cell, followed by a
// dashed rule. An empty matrix prints "<title>: Empty Matrix" instead.
func Render(w io.Writer, title string, rows [][]float64, precision int) error {
	bw := bufio.NewWriter(w)
	if len(rows) == 0 {
		bw.WriteString(title + ": Empty Matrix\n")
		return bw.Flush()
	}

	cols := len(rows[0])
	cells := make([][]string, len(rows))
	widths := make([]int, cols)
	for i, row := range rows {
		cells[i] = make([]string, cols)
		for j := 0; j < cols; j++ {
			cells[i][j] = FormatCell(row[j], precision)
			widths[j] = max(widths[j], len(cells[i][j]))
		}
	}

	bw.WriteString("\n--- " + title + " ---\n")
	total := 0
	for _, cw := range widths {
		total += cw
	}
	for i := range cells {
		bw.WriteString("[ ")
		for j, cell := range cells[i] {
			bw.WriteString(strings.Repeat(" ", widths[j]-len(cell)))
			bw.WriteString(cell)
			bw.WriteString("  ")
		}
		bw.WriteString("]\n")
	}
	bw.WriteString(strings.Repeat("-", total+3*cols+4) + "\n")

	return bw.Flush()
}
