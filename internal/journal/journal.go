// Package journal records what a session did: every statement read, every
// confirmation printed, every rejection. It is observability only; nothing
// is ever read back into the table.
package journal

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Event classifies a journal entry.
type Event string

const (
	EventOpen      Event = "OPEN"
	EventClose     Event = "CLOSE"
	EventStatement Event = "STMT"
	EventConfirm   Event = "OK"
	EventReject    Event = "ERR"
)

// Journal appends session events to a plain text file. A nil journal
// swallows everything, so callers never guard their calls.
type Journal struct {
	path string
	mu   sync.Mutex
}

// New creates a journal backed by path, creating parent directories as
// needed.
func New(path string) (*Journal, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("journal: path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}
	return &Journal{path: path}, nil
}

// Path returns the file backing this journal.
func (j *Journal) Path() string {
	if j == nil {
		return ""
	}
	return j.path
}

// Append writes a single event line. Failures are swallowed; the journal
// is best effort and never disturbs the session.
func (j *Journal) Append(event Event, message string) {
	if j == nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	line := fmt.Sprintf("%s %-5s %s\n",
		time.Now().UTC().Format(time.RFC3339),
		string(event),
		strings.TrimSpace(message),
	)
	file, err := os.OpenFile(j.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	defer file.Close()
	_, _ = file.WriteString(line)
}

// Open marks the start of a session.
func (j *Journal) Open(sessionID string) {
	j.Append(EventOpen, "session "+sessionID)
}

// Close marks the end of a session.
func (j *Journal) Close(sessionID string) {
	j.Append(EventClose, "session "+sessionID)
}

// Statement records one line read from the user.
func (j *Journal) Statement(line string) {
	j.Append(EventStatement, line)
}

// Confirm records a confirmation printed for an applied statement.
func (j *Journal) Confirm(line string) {
	j.Append(EventConfirm, line)
}

// Reject records a statement the session refused.
func (j *Journal) Reject(err error) {
	if err == nil {
		return
	}
	j.Append(EventReject, err.Error())
}

// Tail returns up to maxLines of the most recent entries.
func (j *Journal) Tail(maxLines int) []string {
	if j == nil || maxLines <= 0 {
		return nil
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	file, err := os.Open(j.path)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) == 0 {
		return nil
	}
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return lines
}
