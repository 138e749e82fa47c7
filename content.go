package lineseek

import (
	"bytes"
	"io"
	"os"
)

// Content is a sized source of random-access bytes that lines can be
// extracted from.
type Content interface {
	Size() (int64, error)
	io.ReaderAt
}

func NewFileContent(filename string) (FileContent, error) {
	f, err := os.Open(filename)
	if err != nil {
		return FileContent{}, err
	}
	return FileContent{f}, nil
}

type FileContent struct {
	*os.File
}

func (f FileContent) Size() (int64, error) {
	fi, err := f.File.Stat()
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}

// BufferContent holds content in memory, such as data collected from a
// pipe that cannot be seeked.
type BufferContent struct {
	buf bytes.Buffer
}

func NewBufferContent(data []byte) *BufferContent {
	c := &BufferContent{}
	c.buf.Write(data)
	return c
}

// CollectFrom appends everything readable from r until EOF.
func (s *BufferContent) CollectFrom(r io.Reader) error {
	_, err := s.buf.ReadFrom(r)
	return err
}

func (s *BufferContent) Size() (int64, error) {
	return int64(s.buf.Len()), nil
}

func (s *BufferContent) ReadAt(p []byte, off int64) (int, error) {
	buf := s.buf.Bytes()
	if off > int64(len(buf)) {
		return 0, io.EOF
	}
	n := copy(p, buf[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}
