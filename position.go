package lineseek

import (
	"errors"
	"strconv"
	"strings"
)

type positionKind int

const (
	startKind positionKind = iota
	lineKind
	endKind
)

// Position locates a line within a file: the first line, an explicit
// 1-indexed line, or the last line. The zero value is Start.
type Position struct {
	kind positionKind
	line int
}

// Start is the first line of the file.
func Start() Position { return Position{kind: startKind} }

// End is the last line of the file.
func End() Position { return Position{kind: endKind} }

// Line is the 1-indexed line n.
func Line(n int) Position { return Position{kind: lineKind, line: n} }

// ParsePosition converts raw input into a Position. A non-negative integer,
// optionally with a leading '+', becomes Line(n), "end" becomes End, and
// anything else (including the empty string) becomes Start. Integers too
// large for an int are clamped, which places them past any real file.
func ParsePosition(s string) Position {
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 64)
	switch {
	case err == nil:
		return Line(int(min(n, uint64(maxInt))))
	case errors.Is(err, strconv.ErrRange):
		return Line(maxInt)
	}
	if s == "end" {
		return End()
	}
	return Start()
}

// ParseMaxPosition is like ParsePosition, except that the empty string
// means no bound and yields nil.
func ParseMaxPosition(s string) *Position {
	if s == "" {
		return nil
	}
	p := ParsePosition(s)
	return &p
}

const maxInt = int(^uint(0) >> 1)

func (p Position) IsStart() bool { return p.kind == startKind }
func (p Position) IsEnd() bool   { return p.kind == endKind }

// LineNumber returns n for Line(n), and false for Start and End.
func (p Position) LineNumber() (int, bool) {
	return p.line, p.kind == lineKind
}

// resolve maps the position to a line number for a file of total lines.
// Start resolves to first, which differs between starting positions (1)
// and bounds (0).
func (p Position) resolve(first, total int) int {
	switch p.kind {
	case lineKind:
		return p.line
	case endKind:
		return total
	default:
		return first
	}
}

func (p Position) String() string {
	switch p.kind {
	case lineKind:
		return strconv.Itoa(p.line)
	case endKind:
		return "end"
	default:
		return "start"
	}
}

// Direction is the order of traversal. The zero value is Forward.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// ParseDirection converts raw input into a Direction. Only "backward"
// selects Backward.
func ParseDirection(s string) Direction {
	if s == "backward" {
		return Backward
	}
	return Forward
}

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// step is the cursor increment for one line in direction d.
func (d Direction) step() int {
	if d == Backward {
		return -1
	}
	return 1
}
