package lineseek

import (
	"bytes"
	"io"
)

// scanLines makes a single forward pass over c. It returns the number of
// lines in c and the byte offset at which the 1-indexed line target
// begins. Targets below 1 resolve to 0 and targets past the last line
// resolve to the size of c. Only newline bytes are inspected, so memory
// use does not depend on line length.
func scanLines(c Content, target int) (total int, offset int64, err error) {
	buf := make([]byte, lineReaderReadSize)
	var pos int64
	partial := false // bytes seen since the last newline
	for {
		n, err := c.ReadAt(buf, pos)
		if err != nil && err != io.EOF {
			return 0, 0, err
		}
		chunk := buf[:n]
		for len(chunk) > 0 {
			i := bytes.IndexByte(chunk, '\n')
			if i < 0 {
				pos += int64(len(chunk))
				partial = true
				break
			}
			pos += int64(i + 1)
			chunk = chunk[i+1:]
			total++
			partial = false
			if total+1 == target {
				offset = pos
			}
		}
		if err == io.EOF || n == 0 {
			break
		}
	}
	if partial {
		total++
	}
	if target > total {
		offset = pos
	}
	return total, offset, nil
}

// LineOffset returns the byte offset at which the 1-indexed line begins in
// the file at path.
func LineOffset(path string, line int) (int64, error) {
	var offset int64
	err := withFile(path, func(c Content) error {
		var err error
		_, offset, err = scanLines(c, line)
		return wrapFileError(path, err)
	})
	return offset, err
}

// CountLines returns the number of lines in the file at path. A final line
// without a trailing newline still counts.
func CountLines(path string) (int, error) {
	var total int
	err := withFile(path, func(c Content) error {
		var err error
		total, _, err = scanLines(c, 0)
		return wrapFileError(path, err)
	})
	return total, err
}

// withFile opens path, runs fn against it and closes it again on every
// return path.
func withFile(path string, fn func(Content) error) error {
	f, err := NewFileContent(path)
	if err != nil {
		return &FileError{Path: path, Err: err}
	}
	defer f.Close()
	return fn(f)
}

func wrapFileError(path string, err error) error {
	if err == nil {
		return nil
	}
	return &FileError{Path: path, Err: err}
}
