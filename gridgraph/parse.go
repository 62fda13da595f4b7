package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single input row; bufio's default of 64 KiB would
// reject rows wider than 65536 cells.
const maxLineBytes = 64 << 20

// Parse reads a grid with one row per line. A row is either a run of
// decimal digits 0–9, one cell per byte, or, when it contains blanks,
// whitespace-separated non-negative integers (the form String writes for
// costs above 9). Leading and trailing blank lines and a trailing '\r' on
// each line are ignored; a blank line between rows is a ragged row.
//
// Errors: ErrEmptyGrid, ErrNonRectangular, ErrBadCell, ErrNegativeCost (all
// match ErrMalformedInput), or the reader's own error.
func Parse(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read input: %w", err)
	}

	// Trim surrounding blank lines only.
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	values := make([][]int64, len(lines))
	for r, line := range lines {
		var (
			row []int64
			err error
		)
		if strings.ContainsAny(line, " \t") {
			row, err = parseFields(line)
		} else {
			row, err = parseDigits(line)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d %w", r+1, err)
		}
		values[r] = row
	}

	return NewGrid(values)
}

// parseDigits reads one cell per byte.
func parseDigits(line string) ([]int64, error) {
	row := make([]int64, len(line))
	for c := 0; c < len(line); c++ {
		ch := line[c]
		if ch < '0' || ch > '9' {
			return nil, fmt.Errorf("column %d: %q: %w", c+1, ch, ErrBadCell)
		}
		row[c] = int64(ch - '0')
	}
	return row, nil
}

// parseFields reads whitespace-separated integers. Negative values are
// left for NewGrid to reject.
func parseFields(line string) ([]int64, error) {
	fields := strings.Fields(line)
	row := make([]int64, len(fields))
	for c, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("field %d: %q: %w", c+1, f, ErrBadCell)
		}
		row[c] = v
	}
	return row, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}
