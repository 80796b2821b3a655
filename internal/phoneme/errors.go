package phoneme

import (
	"fmt"
	"strings"
)

// ConflictError reports a violation of the write-once rule. Symbol is empty
// when the two values collide inside a single statement, before any table
// entry is involved.
type ConflictError struct {
	Symbol  string
	Feature string
	Have    Sign
	Want    Sign
}

func (e *ConflictError) Error() string {
	if e.Symbol == "" {
		return fmt.Sprintf("phoneme: statement asserts both %s%s and %s%s",
			e.Have, e.Feature, e.Want, e.Feature)
	}
	return fmt.Sprintf("phoneme: /%s/ already carries %s%s, cannot set %s%s",
		e.Symbol, e.Have, e.Feature, e.Want, e.Feature)
}

// UnknownPhonemeError reports a reference to a phoneme the table has never
// seen. Suggestions carries near-miss symbols when any exist.
type UnknownPhonemeError struct {
	Symbol      string
	Suggestions []string
}

func (e *UnknownPhonemeError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("phoneme: no such phoneme /%s/", e.Symbol)
	}
	slashed := make([]string, len(e.Suggestions))
	for i, s := range e.Suggestions {
		slashed[i] = "/" + s + "/"
	}
	return fmt.Sprintf("phoneme: no such phoneme /%s/ (did you mean %s?)",
		e.Symbol, strings.Join(slashed, ", "))
}
