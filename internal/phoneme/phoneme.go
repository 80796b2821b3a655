package phoneme

import (
	"sort"
	"strings"
)

// Sign is the polarity of a binary feature.
type Sign string

const (
	Plus  Sign = "+"
	Minus Sign = "-"
)

// Feature is a single signed feature mention, e.g. +voice.
type Feature struct {
	Name string
	Sign Sign
}

func (f Feature) String() string {
	return string(f.Sign) + f.Name
}

// FeatureSet maps feature names to their signs.
type FeatureSet map[string]Sign

// Clone returns an independent copy of the set.
func (fs FeatureSet) Clone() FeatureSet {
	out := make(FeatureSet, len(fs))
	for name, sign := range fs {
		out[name] = sign
	}
	return out
}

// Names returns the feature names in alphabetical order.
func (fs FeatureSet) Names() []string {
	names := make([]string, 0, len(fs))
	for name := range fs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String renders the set as a bracketed list with features in alphabetical
// order and signs attached: [+coronal -sonorant -voice].
func (fs FeatureSet) String() string {
	parts := make([]string, 0, len(fs))
	for _, name := range fs.Names() {
		parts = append(parts, string(fs[name])+name)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Subsumes reports whether every feature in fs appears in other with the
// same sign. The empty set subsumes everything.
func (fs FeatureSet) Subsumes(other FeatureSet) bool {
	for name, sign := range fs {
		if other[name] != sign {
			return false
		}
	}
	return true
}

// Equal reports whether both sets carry exactly the same features and signs.
func (fs FeatureSet) Equal(other FeatureSet) bool {
	return len(fs) == len(other) && fs.Subsumes(other)
}

// Phoneme is one table entry: a symbol and the features committed to it.
type Phoneme struct {
	Symbol   string
	Features FeatureSet
}

// String renders the phoneme as a confirmation line: sym = [features].
func (p *Phoneme) String() string {
	return p.Symbol + " = " + p.Features.String()
}
