package nuget

import (
	"strings"
	"sync"
)

// Transcript is a runner.Sink that keeps the most recent lines, so
// failures can be matched against known output.
type Transcript struct {
	mu    sync.Mutex
	max   int
	lines []string
}

// NewTranscript keeps at most limit lines.
func NewTranscript(limit int) *Transcript {
	if limit <= 0 {
		limit = 200
	}
	return &Transcript{max: limit}
}

// Log records line.
func (t *Transcript) Log(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = append(t.lines, line)
	if len(t.lines) > t.max {
		t.lines = t.lines[len(t.lines)-t.max:]
	}
}

// Reset discards recorded lines.
func (t *Transcript) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = nil
}

func (t *Transcript) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return strings.Join(t.lines, "\n")
}
