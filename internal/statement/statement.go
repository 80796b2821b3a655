// Package statement parses one line of table notation into canonical form.
package statement

import (
	"fmt"

	"github.com/dscorbett/pyre/internal/phoneme"
)

// Statement is one parsed line. The two separator orders,
// PHONEMES = FEATURES and FEATURES : PHONEMES, normalize to the same
// structure, so downstream code never sees which one was typed.
type Statement struct {
	Targets  []string          // phonemes to create or extend, textual order
	Bases    []string          // referenced phonemes whose snapshots seed the features
	Features []phoneme.Feature // explicit signed features, textual order
	Source   string            // the NFC-normalized input line
}

// Update converts the statement into a table update.
func (s Statement) Update() phoneme.Update {
	return phoneme.Update{Targets: s.Targets, Bases: s.Bases, Features: s.Features}
}

// ParseError reports a line the scanner or parser could not accept. Column
// is the 1-based rune position of the offending token, or 0 when the
// problem concerns the line as a whole.
type ParseError struct {
	Column int
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("statement: column %d: %s", e.Column, e.Msg)
	}
	return "statement: " + e.Msg
}
