package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Prompt and diagnostic texts shown to the user.
const (
	promptRows      = "Enter the number of rows: "
	promptCols      = "Enter the number of columns: "
	promptRowFmt    = "Row %d: "
	msgBadDims      = "Invalid input. Please enter integers for dimensions."
	msgNonPositive  = "Rows and columns must be positive integers."
	msgEnterRows    = "\nEnter the matrix elements row by row."
	msgSeparate     = "Separate elements in a row with spaces."
	msgRowLengthFmt = "Error: Row must have exactly %d elements. You entered %d."
	msgNotNumeric   = "Invalid input. Please enter numbers separated by spaces."
)

// Prompter reads a matrix interactively, line by line, re-prompting on
// malformed input.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter returns a Prompter reading lines from r and writing prompts to w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(r), out: w}
}

// ReadMatrix asks for the dimensions, then for each row, until a complete
// rows×cols matrix of finite values has been entered.
//
// End of input and a cancelled ctx both yield ErrCancelled; read errors of
// the underlying reader are returned as is.
func (p *Prompter) ReadMatrix(ctx context.Context) ([][]float64, error) {
	rows, cols, err := p.readDimensions(ctx)
	if err != nil {
		return nil, err
	}

	p.println(msgEnterRows)
	p.println(msgSeparate)

	out := make([][]float64, 0, rows)
	for i := 0; i < rows; i++ {
		for {
			line, err := p.readLine(ctx, fmt.Sprintf(promptRowFmt, i+1))
			if err != nil {
				return nil, err
			}
			row, err := ParseRow(line, cols)
			if err == nil {
				out = append(out, row)
				break
			}
			if n, ok := rowLength(err); ok {
				p.println(fmt.Sprintf(msgRowLengthFmt, cols, n))
				continue
			}
			p.println(msgNotNumeric)
		}
	}

	return out, nil
}

// readDimensions loops until both counts parse as positive integers.
func (p *Prompter) readDimensions(ctx context.Context) (int, int, error) {
	for {
		line, err := p.readLine(ctx, promptRows)
		if err != nil {
			return 0, 0, err
		}
		rows, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			p.println(msgBadDims)
			continue
		}
		line, err = p.readLine(ctx, promptCols)
		if err != nil {
			return 0, 0, err
		}
		cols, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			p.println(msgBadDims)
			continue
		}
		if rows > 0 && cols > 0 {
			return rows, cols, nil
		}
		p.println(msgNonPositive)
	}
}

func (p *Prompter) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrCancelled, err)
	}
	_, _ = io.WriteString(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", ErrCancelled
	}

	return p.in.Text(), nil
}

func (p *Prompter) println(s string) {
	_, _ = fmt.Fprintln(p.out, s)
}

// rowLengthError carries the element count of a rejected row.
type rowLengthError struct {
	got, want int
}

func (e *rowLengthError) Error() string {
	return fmt.Sprintf("%v: got %d, want %d", ErrRowLength, e.got, e.want)
}

func (e *rowLengthError) Unwrap() error { return ErrRowLength }

// rowLength extracts the entered element count from a ParseRow error.
func rowLength(err error) (int, bool) {
	var rl *rowLengthError
	if errors.As(err, &rl) {
		return rl.got, true
	}

	return 0, false
}

// ParseRow splits line on whitespace and parses each field as a finite
// float64. want < 0 accepts any element count.
//
// Number parsing happens before the length check, so a row that is both too
// short and non-numeric reports ErrNotNumeric.
func ParseRow(line string, want int) ([]float64, error) {
	fields := strings.Fields(line)
	row := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("field %d %q: %w", i+1, f, ErrNotNumeric)
		}
		row[i] = v
	}
	if want >= 0 && len(row) != want {
		return nil, &rowLengthError{got: len(row), want: want}
	}

	return row, nil
}
