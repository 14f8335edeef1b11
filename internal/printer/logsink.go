package printer

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// LogTimeLayout prefixes every tool output line.
const LogTimeLayout = "15:04:05"

// LogSink prints tool output lines with a time prefix.
// It satisfies runner.Sink.
type LogSink struct {
	mu  sync.Mutex
	w   io.Writer
	now func() time.Time
}

// NewLogSink writes to w, or stdout when w is nil.
func NewLogSink(w io.Writer) *LogSink {
	if w == nil {
		w = os.Stdout
	}
	return &LogSink{w: w, now: time.Now}
}

// Log prints one line.
func (s *LogSink) Log(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "%s %s\n", Faint(s.now().Format(LogTimeLayout)), line)
}
