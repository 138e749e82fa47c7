// Package lineseek extracts a run of lines from a text file, starting at any
// line and moving forward or backward.
package lineseek

import (
	"context"
	"io"
	"strings"
)

// NumberedLine is an extracted line along with its 1-indexed line number.
type NumberedLine struct {
	Number int
	Text   string
}

// Opener describes a single extraction. The zero values of Position and
// Direction select Start and Forward, a nil MaxPosition means unbounded,
// and a nil Logger discards debug output.
type Opener struct {
	Path        string
	Position    Position
	Direction   Direction
	MaxPosition *Position
	Logger      Logger
}

func (o Opener) Open() ([]string, error) {
	return o.OpenContext(context.Background())
}

// OpenContext is like Open, but stops between lines once ctx is done.
func (o Opener) OpenContext(ctx context.Context) ([]string, error) {
	lines, err := o.OpenLines(ctx)
	if err != nil {
		return nil, err
	}
	texts := make([]string, len(lines))
	for i, ln := range lines {
		texts[i] = ln.Text
	}
	return texts, nil
}

// OpenLines is like OpenContext, but keeps the line numbers.
func (o Opener) OpenLines(ctx context.Context) ([]NumberedLine, error) {
	var lines []NumberedLine
	err := withFile(o.Path, func(c Content) error {
		var err error
		lines, err = extract(ctx, c, o.Path, o.Position, o.Direction, o.MaxPosition, o.Logger)
		return err
	})
	return lines, err
}

// OpenFile opens the file at path and returns its lines starting at pos
// and moving in direction dir. If maxPos is not nil, lines beyond it are not
// returned. Trailing newlines are stripped.
func OpenFile(path string, pos Position, dir Direction, maxPos *Position) ([]string, error) {
	return OpenFileContext(context.Background(), path, pos, dir, maxPos)
}

func OpenFileContext(ctx context.Context, path string, pos Position, dir Direction, maxPos *Position) ([]string, error) {
	return Opener{
		Path:        path,
		Position:    pos,
		Direction:   dir,
		MaxPosition: maxPos,
	}.OpenContext(ctx)
}

// Extract runs the same extraction as OpenFile over already opened
// content. log may be nil.
func Extract(ctx context.Context, c Content, pos Position, dir Direction, maxPos *Position, log Logger) ([]NumberedLine, error) {
	var name string
	if n, ok := c.(interface{ Name() string }); ok {
		name = n.Name()
	}
	return extract(ctx, c, name, pos, dir, maxPos, log)
}

func extract(
	ctx context.Context,
	c Content,
	name string,
	pos Position,
	dir Direction,
	maxPos *Position,
	log Logger,
) ([]NumberedLine, error) {
	if log == nil {
		log = NullLogger{}
	}

	// Moving backward from line n starts reading upward from the start of
	// line n+1, so that line n is the first line read.
	var seekLine int
	if n, ok := pos.LineNumber(); ok {
		seekLine = n
		if dir == Backward && seekLine < maxInt {
			seekLine++
		}
	}
	total, offset, err := scanLines(c, seekLine)
	if err != nil {
		return nil, wrapFileError(name, err)
	}

	startLine := pos.resolve(1, total)
	var maxLine int
	if maxPos != nil {
		maxLine = maxPos.resolve(0, total)
	}
	if err := validate(pos, dir, maxPos, startLine, maxLine); err != nil {
		return nil, err
	}

	switch {
	case pos.IsStart():
		offset = 0
	case pos.IsEnd():
		offset, err = c.Size()
		if err != nil {
			return nil, wrapFileError(name, err)
		}
	}
	log.Debug(
		"Resolved start: name=%q position=%s direction=%s line=%d offset=%d totalLines=%d",
		name, pos, dir, startLine, offset, total,
	)

	var reader LineReader
	if dir == Backward {
		reader = NewBackwardLineReader(c, offset)
	} else {
		reader = NewForwardLineReader(c, offset)
	}

	lines := make([]NumberedLine, 0)
	for cur := startLine; cur >= 1 && cur <= total; cur += dir.step() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if maxPos != nil && passed(cur, maxLine, dir) {
			log.Debug("Stopping at bound: line=%d max=%d", cur, maxLine)
			break
		}
		text, err := reader.ReadLine()
		if err == io.EOF {
			// The content shrank since it was counted.
			err = io.ErrUnexpectedEOF
		}
		if err != nil {
			return nil, wrapFileError(name, err)
		}
		lines = append(lines, NumberedLine{Number: cur, Text: strings.TrimSuffix(text, "\n")})
	}
	return lines, nil
}

// passed reports whether line is beyond bound in direction dir.
func passed(line, bound int, dir Direction) bool {
	if dir == Backward {
		return line < bound
	}
	return line > bound
}
