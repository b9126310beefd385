package cubealg

import (
	"regexp"
	"strings"
)

// Token alphabet and the shapes built from it.
const (
	movePattern     = `[xyzUuLlFfRrBbDdMES]['2]?`
	sequencePattern = movePattern + `(?:\s+` + movePattern + `)*`
)

var (
	simpleSequenceRe = regexp.MustCompile(`^\s*` + sequencePattern + `\s*$`)
	commutatorRe     = regexp.MustCompile(`\[\s*` + sequencePattern + `\s*,\s*` + sequencePattern + `\s*\]`)
	conjugateRe      = regexp.MustCompile(`\[\s*` + sequencePattern + `\s*:\s*` + sequencePattern + `\s*\]`)
)

// IsSimpleSequence reports whether s consists only of move tokens and
// whitespace: no brackets, commas or colons. Surrounding whitespace is allowed.
func IsSimpleSequence(s string) bool {
	return simpleSequenceRe.MatchString(s)
}

// FindCommutator returns the leftmost "[A, B]" in s whose operands are both
// simple sequences. Because operands cannot contain brackets, the match is
// always an innermost commutator.
func FindCommutator(s string) (string, bool) {
	m := commutatorRe.FindString(s)
	return m, m != ""
}

// FindConjugate returns the leftmost innermost "[A: B]" in s.
func FindConjugate(s string) (string, bool) {
	m := conjugateRe.FindString(s)
	return m, m != ""
}

// normalizeSpace collapses runs of whitespace to single spaces and trims the ends.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
