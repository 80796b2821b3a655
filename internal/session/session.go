// Package session drives the read-evaluate-print loop shared by the
// interactive prompt and the piped loop: one line in, one reply out, the
// feature table carried in between.
package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/dscorbett/pyre/internal/journal"
	"github.com/dscorbett/pyre/internal/phoneme"
	"github.com/dscorbett/pyre/internal/statement"
)

// ReplyKind says what an input line amounted to.
type ReplyKind string

const (
	ReplyNone    ReplyKind = "none"
	ReplyApplied ReplyKind = "applied"
	ReplyQuit    ReplyKind = "quit"
)

// Reply is the session's answer to one input line.
type Reply struct {
	Kind  ReplyKind
	Lines []string // one confirmation per affected phoneme, first-mention order
}

// Session owns the feature table for one run of pyre.
type Session struct {
	id      string
	table   *phoneme.Table
	journal *journal.Journal
}

// Option customizes a session.
type Option func(*Session)

// WithJournal attaches a journal. A nil journal is allowed and leaves
// journaling disabled.
func WithJournal(j *journal.Journal) Option {
	return func(s *Session) { s.journal = j }
}

// New creates a session with an empty table and writes its opening journal
// mark.
func New(opts ...Option) *Session {
	s := &Session{
		id:    fmt.Sprintf("pyre-%d", time.Now().UnixNano()),
		table: phoneme.NewTable(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.journal.Open(s.id)
	return s
}

// ID returns the session identifier used in journal marks.
func (s *Session) ID() string {
	return s.id
}

// Table exposes the table for read-only queries.
func (s *Session) Table() *phoneme.Table {
	return s.table
}

// Close writes the session's closing journal mark.
func (s *Session) Close() {
	s.journal.Close(s.id)
}

// quitWords end the session when typed alone.
var quitWords = map[string]bool{"quit": true, "exit": true}

// Eval processes one input line. Blank lines are skipped, bare quit words
// end the session, and everything else is parsed and applied to the table
// as one atomic statement. A returned error rejects the line only; the
// session itself carries on.
func (s *Session) Eval(line string) (Reply, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Reply{Kind: ReplyNone}, nil
	}
	s.journal.Statement(trimmed)
	if quitWords[trimmed] {
		return Reply{Kind: ReplyQuit}, nil
	}
	st, err := statement.Parse(trimmed)
	if err != nil {
		s.journal.Reject(err)
		return Reply{}, err
	}
	applied, err := s.table.Apply(st.Update())
	if err != nil {
		s.journal.Reject(err)
		return Reply{}, err
	}
	lines := make([]string, len(applied))
	for i, p := range applied {
		lines[i] = p.String()
		s.journal.Confirm(lines[i])
	}
	return Reply{Kind: ReplyApplied, Lines: lines}, nil
}
