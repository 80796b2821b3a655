package statement

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/dscorbett/pyre/internal/phoneme"
)

// Parse turns one input line into a canonical statement. The line is
// NFC-normalized before scanning so composed and decomposed spellings of a
// symbol coincide. References /x/ are accepted on both sides of the
// separator and always mean the same thing: start the targets from a
// snapshot of x.
func Parse(line string) (Statement, error) {
	normalized := norm.NFC.String(line)
	tokens, err := scan(normalized)
	if err != nil {
		return Statement{}, err
	}
	sepAt := -1
	var sep rune
	for i, tok := range tokens {
		if tok.kind != tokenSep {
			continue
		}
		if sepAt >= 0 {
			return Statement{}, &ParseError{Column: tok.col, Msg: "statement has a second separator"}
		}
		sepAt = i
		sep = tok.sep
	}
	if sepAt < 0 {
		return Statement{}, &ParseError{Msg: "statement needs = or :"}
	}

	st := Statement{Source: normalized}
	phonemeSide := func(tok token) error {
		switch tok.kind {
		case tokenIdent:
			st.Targets = append(st.Targets, tok.text)
		case tokenRef:
			st.Bases = append(st.Bases, tok.text)
		case tokenSigned:
			return &ParseError{Column: tok.col, Msg: fmt.Sprintf("%s%s belongs on the feature side", tok.sign, tok.text)}
		}
		return nil
	}
	featureSide := func(tok token) error {
		switch tok.kind {
		case tokenSigned:
			st.Features = append(st.Features, phoneme.Feature{Name: tok.text, Sign: phoneme.Sign(tok.sign)})
		case tokenRef:
			st.Bases = append(st.Bases, tok.text)
		case tokenIdent:
			return &ParseError{Column: tok.col, Msg: fmt.Sprintf("feature %s needs a sign (+%s or -%s)", tok.text, tok.text, tok.text)}
		}
		return nil
	}

	left, right := phonemeSide, featureSide
	if sep == ':' {
		left, right = featureSide, phonemeSide
	}
	// Walk the sides in textual order so reference layering follows the line.
	for _, tok := range tokens[:sepAt] {
		if err := left(tok); err != nil {
			return Statement{}, err
		}
	}
	for _, tok := range tokens[sepAt+1:] {
		if err := right(tok); err != nil {
			return Statement{}, err
		}
	}

	if len(st.Targets) == 0 {
		return Statement{}, &ParseError{Msg: "statement names no phoneme"}
	}
	if len(st.Features) == 0 && len(st.Bases) == 0 {
		return Statement{}, &ParseError{Msg: "statement assigns no features"}
	}
	return st, nil
}
