package lineseek

import (
	"bytes"
	"io"

	"github.com/peterstace/lineseek/assert"
)

const lineReaderReadSize = 1 << 12

// LineReader yields lines one at a time. Returned lines keep their
// trailing newline, if any, so that callers can track byte offsets.
type LineReader interface {
	ReadLine() (string, error)
}

func NewForwardLineReader(reader io.ReaderAt, offset int64) *ForwardLineReader {
	return &ForwardLineReader{
		reader:  reader,
		offset:  offset,
		readBuf: make([]byte, lineReaderReadSize),
	}
}

// ForwardLineReader reads lines in ascending order starting at offset. The
// final line is returned even when it has no terminating newline.
type ForwardLineReader struct {
	reader  io.ReaderAt
	offset  int64
	readBuf []byte
	unused  []byte
	scanned int // leading bytes of unused known to hold no newline
	eof     bool
}

func (f *ForwardLineReader) ReadLine() (string, error) {
	for {
		// Check if the next newline is in the part of unused not yet searched.
		if i := bytes.IndexByte(f.unused[f.scanned:], '\n'); i >= 0 {
			end := f.scanned + i + 1
			line := string(f.unused[:end])
			f.unused = f.unused[end:]
			f.scanned = 0
			return line, nil
		}
		f.scanned = len(f.unused)

		if f.eof {
			if len(f.unused) == 0 {
				return "", io.EOF
			}
			line := string(f.unused)
			f.unused = nil
			f.scanned = 0
			return line, nil
		}

		// Copy a new set of bytes into unused.
		n, err := f.reader.ReadAt(f.readBuf, f.offset)
		if err != nil && err != io.EOF {
			return "", err
		}
		if err == io.EOF || n == 0 {
			f.eof = true
		}
		f.offset += int64(n)
		f.unused = append(f.unused, f.readBuf[:n]...)
	}
}

func NewBackwardLineReader(reader io.ReaderAt, offset int64) *BackwardLineReader {
	return &BackwardLineReader{
		reader:  reader,
		offset:  offset,
		readBuf: make([]byte, lineReaderReadSize),
	}
}

// BackwardLineReader reads lines in descending order, starting with the
// line that ends at offset.
type BackwardLineReader struct {
	reader  io.ReaderAt
	offset  int64
	readBuf []byte

	// Bytes read but not yet returned live in buf[start:end]. Chunks are
	// prepended into the free space before start.
	buf        []byte
	start, end int

	// Trailing bytes of the unused region known to hold no line break.
	scanned int
}

func (b *BackwardLineReader) ReadLine() (string, error) {
	for {
		unused := b.buf[b.start:b.end]
		if len(unused) == 0 && b.offset == 0 {
			return "", io.EOF
		}

		// The final byte may be the newline that ends the line being read,
		// so it never separates lines.
		if limit := len(unused) - max(b.scanned, 1); limit > 0 {
			if i := bytes.LastIndexByte(unused[:limit], '\n'); i >= 0 {
				line := string(unused[i+1:])
				b.end = b.start + i + 1
				b.scanned = 1
				return line, nil
			}
		}
		b.scanned = len(unused)

		if b.offset == 0 {
			line := string(unused)
			b.start = b.end
			b.scanned = 0
			return line, nil
		}

		readFrom := b.offset - int64(len(b.readBuf))
		if readFrom < 0 {
			b.readBuf = b.readBuf[:int64(len(b.readBuf))+readFrom]
			readFrom = 0
		}
		n, err := b.reader.ReadAt(b.readBuf, readFrom)
		if err != nil && err != io.EOF {
			return "", err
		}
		if n < len(b.readBuf) {
			// The content is shorter than the starting offset.
			return "", io.ErrUnexpectedEOF
		}
		b.offset -= int64(n)
		assert.True(b.offset >= 0)
		b.prepend(b.readBuf[:n])
	}
}

// prepend places p directly before the unused region, growing buf
// geometrically so that long lines cost amortized linear time.
func (b *BackwardLineReader) prepend(p []byte) {
	if b.start < len(p) {
		size := b.end - b.start
		grown := make([]byte, 2*(size+len(p)))
		start := len(grown) - size
		copy(grown[start:], b.buf[b.start:b.end])
		b.buf, b.start, b.end = grown, start, len(grown)
	}
	b.start -= len(p)
	copy(b.buf[b.start:], p)
}
