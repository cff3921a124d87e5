// Package errorlog appends store failures to a plain text file, one line per failure.
// The file is never rotated or truncated.
package errorlog

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// TimestampLayout is the layout of the leading timestamp on every line
const TimestampLayout = "2006-01-02 15:04:05"

// Recorder receives failures from the inventory service
type Recorder interface {
	Record(err error) error
}

// FileLog appends "<timestamp>: <message>" lines to a file
type FileLog struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// NewFileLog returns a FileLog writing to path. The file is created on first write.
func NewFileLog(path string) *FileLog {
	return &FileLog{path: path, now: time.Now}
}

// Path returns the file the log writes to
func (l *FileLog) Path() string {
	return l.path
}

// Record appends one line for err, opening the file in append mode on every call.
func (l *FileLog) Record(err error) error {
	if err == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, openErr := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if openErr != nil {
		return fmt.Errorf("failed to open error log: %w", openErr)
	}
	defer f.Close()

	line := fmt.Sprintf("%s: %s\n", l.now().Format(TimestampLayout), err.Error())
	if _, writeErr := f.WriteString(line); writeErr != nil {
		return fmt.Errorf("failed to write error log: %w", writeErr)
	}
	return nil
}

// Discard drops every failure
type Discard struct{}

func (Discard) Record(error) error { return nil }
