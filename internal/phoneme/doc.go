// Package phoneme implements the feature table at the core of pyre. A table
// maps phoneme symbols to sets of signed binary features and enforces the
// write-once rule: once a phoneme carries a value for a feature, only that
// same value may ever be asserted for it again.
package phoneme
