package phoneme

import (
	"fmt"
	"sort"

	"github.com/sahilm/fuzzy"
)

// maxSuggestions caps the near-miss symbols attached to an unknown-phoneme
// error.
const maxSuggestions = 3

// Update describes one statement's worth of changes in canonical form: the
// phonemes to touch, the phonemes whose snapshots seed the feature set, and
// the explicit signed features, each list in textual order.
type Update struct {
	Targets  []string
	Bases    []string
	Features []Feature
}

// Table is the session's phoneme inventory. It is confined to a single
// goroutine; the owning session serializes all access.
type Table struct {
	entries map[string]*Phoneme
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{entries: map[string]*Phoneme{}}
}

// Len returns the number of phonemes in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup returns the phoneme for a symbol, or false if the symbol is unknown.
func (t *Table) Lookup(symbol string) (*Phoneme, bool) {
	p, ok := t.entries[symbol]
	return p, ok
}

// Symbols returns every known symbol in alphabetical order.
func (t *Table) Symbols() []string {
	symbols := make([]string, 0, len(t.entries))
	for sym := range t.entries {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)
	return symbols
}

// Snapshot returns a copy of a phoneme's current features. Later writes to
// the table never alter the copy.
func (t *Table) Snapshot(symbol string) (FeatureSet, error) {
	p, ok := t.entries[symbol]
	if !ok {
		return nil, &UnknownPhonemeError{Symbol: symbol, Suggestions: t.suggest(symbol)}
	}
	return p.Features.Clone(), nil
}

// Apply carries out one update atomically. Base references resolve to
// snapshots taken before any write; explicit features land on top of the
// merged snapshots; the resulting set is staged against every target and
// committed only if no staged write contradicts a value already in the
// table. On error the table is left exactly as it was.
func (t *Table) Apply(u Update) ([]*Phoneme, error) {
	targets := dedupe(u.Targets)
	if len(targets) == 0 {
		return nil, fmt.Errorf("phoneme: update names no phonemes")
	}
	effective := FeatureSet{}
	for _, base := range u.Bases {
		snap, err := t.Snapshot(base)
		if err != nil {
			return nil, err
		}
		for name, sign := range snap {
			effective[name] = sign
		}
	}
	explicit := FeatureSet{}
	for _, f := range u.Features {
		if have, ok := explicit[f.Name]; ok && have != f.Sign {
			return nil, &ConflictError{Feature: f.Name, Have: have, Want: f.Sign}
		}
		explicit[f.Name] = f.Sign
		effective[f.Name] = f.Sign
	}
	if len(effective) == 0 {
		return nil, fmt.Errorf("phoneme: update assigns no features")
	}
	for _, sym := range targets {
		existing, ok := t.entries[sym]
		if !ok {
			continue
		}
		for _, name := range effective.Names() {
			if have, ok := existing.Features[name]; ok && have != effective[name] {
				return nil, &ConflictError{Symbol: sym, Feature: name, Have: have, Want: effective[name]}
			}
		}
	}
	applied := make([]*Phoneme, 0, len(targets))
	for _, sym := range targets {
		p, ok := t.entries[sym]
		if !ok {
			p = &Phoneme{Symbol: sym, Features: FeatureSet{}}
			t.entries[sym] = p
		}
		for name, sign := range effective {
			p.Features[name] = sign
		}
		applied = append(applied, p)
	}
	return applied, nil
}

func (t *Table) suggest(symbol string) []string {
	matches := fuzzy.Find(symbol, t.Symbols())
	out := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		out = append(out, m.Str)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

func dedupe(symbols []string) []string {
	seen := make(map[string]struct{}, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, sym := range symbols {
		if _, ok := seen[sym]; ok {
			continue
		}
		seen[sym] = struct{}{}
		out = append(out, sym)
	}
	return out
}
