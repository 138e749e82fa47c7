package lineseek

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDirection = errors.New("invalid direction")
	ErrMaxPosition      = errors.New("invalid max position")
)

// FileError wraps any failure to open, stat or read the target file.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("file error: %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// InvalidDirectionError reports a start position that cannot be left in
// the requested direction.
type InvalidDirectionError struct {
	Position  Position
	Direction Direction
}

func (e *InvalidDirectionError) Error() string {
	return fmt.Sprintf("cannot go %ss from the %s position", e.Direction, e.Position)
}

func (e *InvalidDirectionError) Is(target error) bool {
	return target == ErrInvalidDirection
}

// MaxPositionError reports a bound on the wrong side of the start position.
// Comparison is "less" or "greater".
type MaxPositionError struct {
	Comparison string
	Direction  Direction
}

func (e *MaxPositionError) Error() string {
	return fmt.Sprintf(
		"cannot have a max line position %s than the current line position when the direction is %s",
		e.Comparison, e.Direction,
	)
}

func (e *MaxPositionError) Is(target error) bool {
	return target == ErrMaxPosition
}
