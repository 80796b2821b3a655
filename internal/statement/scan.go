package statement

import (
	"fmt"
	"unicode"
)

type tokenKind int

const (
	tokenIdent tokenKind = iota
	tokenSigned
	tokenRef
	tokenSep
)

type token struct {
	kind tokenKind
	text string // identifier, feature name, or referenced symbol
	sign string // "+" or "-" for signed tokens
	sep  rune   // '=' or ':' for separators
	col  int    // 1-based rune column
}

// scan splits one line into tokens. Spaces and tabs separate tokens and are
// otherwise ignored. Signs bind to the identifier that follows them with no
// gap in between.
func scan(line string) ([]token, error) {
	runes := []rune(line)
	var tokens []token
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case r == ' ' || r == '\t':
			i++
		case r == '=' || r == ':':
			tokens = append(tokens, token{kind: tokenSep, sep: r, col: i + 1})
			i++
		case r == '+' || r == '-':
			start := i
			name, next := scanIdent(runes, i+1)
			if name == "" {
				return nil, &ParseError{Column: start + 1, Msg: fmt.Sprintf("sign %c needs a feature name attached", r)}
			}
			tokens = append(tokens, token{kind: tokenSigned, text: name, sign: string(r), col: start + 1})
			i = next
		case r == '/':
			start := i
			name, next := scanIdent(runes, i+1)
			if next >= len(runes) || runes[next] != '/' {
				return nil, &ParseError{Column: start + 1, Msg: "unterminated phoneme reference"}
			}
			if name == "" {
				return nil, &ParseError{Column: start + 1, Msg: "empty phoneme reference"}
			}
			tokens = append(tokens, token{kind: tokenRef, text: name, col: start + 1})
			i = next + 1
		case isIdentRune(r):
			name, next := scanIdent(runes, i)
			tokens = append(tokens, token{kind: tokenIdent, text: name, col: i + 1})
			i = next
		default:
			return nil, &ParseError{Column: i + 1, Msg: fmt.Sprintf("unexpected character %q", r)}
		}
	}
	return tokens, nil
}

func scanIdent(runes []rune, i int) (string, int) {
	start := i
	for i < len(runes) && isIdentRune(runes[i]) {
		i++
	}
	return string(runes[start:i]), i
}

// isIdentRune reports whether r may appear in a phoneme symbol or feature
// name: letters, digits, combining marks, '.', '_', and the apostrophe.
func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) ||
		r == '.' || r == '_' || r == '\''
}
