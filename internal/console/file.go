package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadMatrixFile reads a whitespace-separated matrix from path.
// Blank lines and lines starting with '#' are skipped. A file without data
// lines yields an empty matrix and nil error.
func ReadMatrixFile(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open matrix file: %w", err)
	}
	defer f.Close()

	rows, err := ReadMatrixFrom(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rows, nil
}

// ReadMatrixFrom is ReadMatrixFile over any reader.
// Errors name the 1-based source line: ErrNotNumeric for bad tokens,
// ErrRowLength when a row's length differs from the first data row.
func ReadMatrixFrom(r io.Reader) ([][]float64, error) {
	scanner := bufio.NewScanner(r)
	rows := [][]float64{}
	cols := -1

	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		row, err := ParseRow(line, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if cols < 0 {
			cols = len(row)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read matrix: %w", err)
	}

	return rows, nil
}
