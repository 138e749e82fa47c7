package lineseek

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type closingBuffer struct {
	bytes.Buffer
	closed bool
}

func (b *closingBuffer) Close() error {
	b.closed = true
	return nil
}

func TestFileLoggerFormat(t *testing.T) {
	var buf closingBuffer
	log := NewFileLogger(&buf)
	log.now = func() time.Time { return time.Date(2020, 1, 2, 3, 4, 5, 6000, time.UTC) }

	log.Info("Opened: path=%q", "a.txt")
	log.Debug("Resolved: line=%d", 3)
	log.Warn("Failed")

	want := "03:04:05.000006 [Info ] Opened: path=\"a.txt\"\n" +
		"03:04:05.000006 [Debug] Resolved: line=3\n" +
		"03:04:05.000006 [Warn ] Failed\n"
	if got := buf.String(); got != want {
		t.Errorf("Got=%q Want=%q", got, want)
	}

	if err := log.Close(); err != nil {
		t.Fatal(err)
	}
	if !buf.closed {
		t.Errorf("underlying writer was not closed")
	}
}

func TestOpenFileLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	for i := 0; i < 2; i++ {
		log, err := OpenFileLogger(path)
		if err != nil {
			t.Fatal(err)
		}
		log.Info("run %d", i)
		if err := log.Close(); err != nil {
			t.Fatal(err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), "\n"); n != 2 {
		t.Errorf("got %d log lines, want 2:\n%s", n, data)
	}
}
