package phoneme

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// SymbolPlaceholder stands in for a feature set no table symbol matches
// exactly.
const SymbolPlaceholder = "*"

// NaturalClass returns the symbols of every phoneme whose feature set
// includes all of fs, in alphabetical order.
func (t *Table) NaturalClass(fs FeatureSet) []string {
	var class []string
	for sym, p := range t.entries {
		if fs.Subsumes(p.Features) {
			class = append(class, sym)
		}
	}
	sort.Strings(class)
	return class
}

// SymbolFor returns the symbol whose features equal fs exactly. When no
// symbol matches the placeholder is returned; when several do, the
// alphabetically first wins.
func (t *Table) SymbolFor(fs FeatureSet) string {
	for _, sym := range t.Symbols() {
		if t.entries[sym].Features.Equal(fs) {
			return sym
		}
	}
	return SymbolPlaceholder
}

// Transcribe segments a word into known phonemes, always taking the longest
// symbol that prefixes the remaining input. The word is NFC-normalized
// first, matching how symbols enter the table.
func (t *Table) Transcribe(word string) ([]*Phoneme, error) {
	var out []*Phoneme
	rest := norm.NFC.String(word)
	for len(rest) > 0 {
		sym := t.longestPrefix(rest)
		if sym == "" {
			r, _ := utf8.DecodeRuneInString(rest)
			return nil, fmt.Errorf("phoneme: symbol <%s> is not in the table", string(r))
		}
		out = append(out, t.entries[sym])
		rest = rest[len(sym):]
	}
	return out, nil
}

func (t *Table) longestPrefix(s string) string {
	best := ""
	for sym := range t.entries {
		if len(sym) > len(best) && strings.HasPrefix(s, sym) {
			best = sym
		}
	}
	return best
}
