package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/matchduel/internal/core"
)

// ParseInput reads one scripted input frame. Accepted forms:
//
//	row,col:row,col   swap two cells
//	auto              play the best swap
//	wait=<duration>   only let time pass, e.g. wait=3s
//
// Positions are not checked against any board.
func ParseInput(s string) (core.InputFrame, error) {
	s = strings.TrimSpace(s)
	if s == "auto" {
		return core.AutoInput(), nil
	}
	if d, ok := strings.CutPrefix(s, "wait="); ok {
		dur, err := time.ParseDuration(d)
		if err != nil {
			return core.InputFrame{}, fmt.Errorf("cli: input %q: %w", s, err)
		}
		if dur <= 0 {
			return core.InputFrame{}, fmt.Errorf("cli: input %q: wait must be positive", s)
		}
		return core.WaitInput(dur), nil
	}

	from, to, ok := strings.Cut(s, ":")
	if !ok {
		return core.InputFrame{}, fmt.Errorf("cli: input %q: expected row,col:row,col, auto or wait=<duration>", s)
	}
	a, err := parsePoint(from)
	if err != nil {
		return core.InputFrame{}, fmt.Errorf("cli: input %q: %w", s, err)
	}
	b, err := parsePoint(to)
	if err != nil {
		return core.InputFrame{}, fmt.Errorf("cli: input %q: %w", s, err)
	}
	return core.SwapInput(a, b), nil
}

func parsePoint(s string) (core.Point, error) {
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return core.Point{}, fmt.Errorf("cell %q is not row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return core.Point{}, fmt.Errorf("row %q: %w", rs, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return core.Point{}, fmt.Errorf("col %q: %w", cs, err)
	}
	return core.Pt(row, col), nil
}
