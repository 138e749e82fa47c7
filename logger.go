package lineseek

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/peterstace/lineseek/assert"
)

type Logger interface {
	Info(format string, args ...interface{})
	Debug(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Flush() error
}

type NullLogger struct{}

func (NullLogger) Info(format string, args ...interface{})  {}
func (NullLogger) Debug(format string, args ...interface{}) {}
func (NullLogger) Warn(format string, args ...interface{})  {}
func (NullLogger) Flush() error                             { return nil }

// OpenFileLogger returns a logger that appends to filepath. The caller
// must Close it once it is no longer needed.
func OpenFileLogger(filepath string) (*FileLogger, error) {
	f, err := os.OpenFile(filepath, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0664)
	if err != nil {
		return nil, err
	}
	return NewFileLogger(f), nil
}

// NewFileLogger returns a logger that buffers each entry and then flushes
// it to w.
func NewFileLogger(w io.WriteCloser) *FileLogger {
	return &FileLogger{
		buf:  new(bytes.Buffer),
		file: w,
		now:  time.Now,
	}
}

type FileLogger struct {
	buf  *bytes.Buffer
	file io.WriteCloser
	err  error
	now  func() time.Time
}

type level int

const (
	info level = iota
	debug
	warn
)

func (l level) String() string {
	switch l {
	case info:
		return "Info"
	case debug:
		return "Debug"
	case warn:
		return "Warn"
	default:
		assert.True(false)
		return ""
	}
}

func (f *FileLogger) Info(format string, args ...interface{}) {
	f.log(info, format, args...)
	f.Flush()
}

func (f *FileLogger) Debug(format string, args ...interface{}) {
	f.log(debug, format, args...)
	f.Flush()
}

func (f *FileLogger) Warn(format string, args ...interface{}) {
	f.log(warn, format, args...)
	f.Flush()
}

func (f *FileLogger) log(lvl level, format string, args ...interface{}) {
	if f.err != nil {
		return
	}
	_, f.err = fmt.Fprintf(
		f.buf,
		"%s [%-5s] %s\n",
		f.now().Format("15:04:05.000000"),
		lvl,
		fmt.Sprintf(format, args...),
	)
}

func (f *FileLogger) Flush() error {
	if f.err != nil {
		return f.err
	}
	_, err := io.Copy(f.file, f.buf)
	f.buf.Reset()
	return err
}

// Close flushes any buffered output and closes the underlying file.
func (f *FileLogger) Close() error {
	flushErr := f.Flush()
	if err := f.file.Close(); err != nil {
		return err
	}
	return flushErr
}
