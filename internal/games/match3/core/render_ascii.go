package core

import (
	"fmt"
	"strconv"
	"strings"
)

// RenderASCII formats the board one row per line, cells separated by a
// space: '.' empty, 'N' normal, 'N*' special. Used for debugging and test
// layouts; ParseBoard reads the same format.
func RenderASCII(b *Board) string {
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.At(P(r, c)).String())
		}
	}
	return sb.String()
}

// String implements fmt.Stringer using RenderASCII.
func (b *Board) String() string {
	return RenderASCII(b)
}

// ParseBoard builds a board from RenderASCII-style text. Blank lines are
// skipped, every row must have the same number of cells, and specials get
// identities 1, 2, ... in row-major order.
func ParseBoard(s string) (*Board, error) {
	var rows [][]string
	for _, line := range strings.Split(s, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(rows) > 0 && len(fields) != len(rows[0]) {
			return nil, fmt.Errorf("parse board: row %d has %d cells, expected %d",
				len(rows), len(fields), len(rows[0]))
		}
		rows = append(rows, fields)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("parse board: no rows")
	}

	b := NewBoard(len(rows), len(rows[0]))
	var uid uint64
	for r, fields := range rows {
		for c, f := range fields {
			if f == "." {
				continue
			}
			special := strings.HasSuffix(f, "*")
			base, err := strconv.Atoi(strings.TrimSuffix(f, "*"))
			if err != nil || base < 1 {
				return nil, fmt.Errorf("parse board: bad cell %q at %v", f, P(r, c))
			}
			if special {
				uid++
				b.Set(P(r, c), Special(uid, base))
			} else {
				b.Set(P(r, c), Normal(base))
			}
		}
	}
	return b, nil
}
