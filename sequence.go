package cubealg

import (
	"fmt"
	"strings"
)

// Sequence is a simple sequence: an ordered list of moves with no bracket notation.
type Sequence []Move

// ParseSequence parses a whitespace-separated simple sequence.
// Unlike Invert it is strict: any token outside the alphabet is an error.
func ParseSequence(s string) (Sequence, error) {
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return nil, ErrEmptyExpression
	}

	seq := make(Sequence, 0, len(parts))
	for _, part := range parts {
		m, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		seq = append(seq, m)
	}

	return seq, nil
}

// String formats the sequence as single-space separated notation.
func (s Sequence) String() string {
	if len(s) == 0 {
		return ""
	}

	parts := make([]string, len(s))
	for i, m := range s {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// Len returns the number of moves.
func (s Sequence) Len() int {
	return len(s)
}

// Inverse returns the sequence that undoes s: reversed order, each move inverted.
func (s Sequence) Inverse() Sequence {
	inv := make(Sequence, len(s))
	for i, m := range s {
		inv[len(s)-1-i] = m.Inverse()
	}
	return inv
}

// Concat returns a new sequence holding s followed by each of others.
func (s Sequence) Concat(others ...Sequence) Sequence {
	n := len(s)
	for _, o := range others {
		n += len(o)
	}

	out := make(Sequence, 0, n)
	out = append(out, s...)
	for _, o := range others {
		out = append(out, o...)
	}
	return out
}

// Invert returns the inverse of a simple sequence given as text.
//
// Tokens are reversed and each is rewritten: a trailing ' is dropped, a
// trailing 2 is kept, anything else gains a trailing '. Tokens are not
// validated, so "Q" inverts to "Q'". Use ParseSequence and Sequence.Inverse
// for a checked inversion.
func Invert(sequence string) string {
	moves := strings.Fields(sequence)
	inverted := make([]string, 0, len(moves))

	for i := len(moves) - 1; i >= 0; i-- {
		move := moves[i]
		switch {
		case strings.HasSuffix(move, "'"):
			inverted = append(inverted, strings.TrimSuffix(move, "'"))
		case strings.HasSuffix(move, "2"):
			inverted = append(inverted, move)
		default:
			inverted = append(inverted, move+"'")
		}
	}

	return strings.Join(inverted, " ")
}

// Cancel merges adjacent moves on the same face.
// For example: R R becomes R2, R R' cancels out, R U U' R' cancels out entirely.
func Cancel(moves Sequence) Sequence {
	result := make(Sequence, 0, len(moves))

	for _, move := range moves {
		if len(result) == 0 {
			result = append(result, move)
			continue
		}

		last := &result[len(result)-1]
		if last.Face != move.Face {
			result = append(result, move)
			continue
		}

		merged, ok := mergeMoves(*last, move)
		if !ok {
			// Moves cancelled out - remove the last move
			result = result[:len(result)-1]
		} else {
			*last = merged
		}
	}

	return result
}

// mergeMoves combines two same-face moves.
// Returns false if they cancel out (e.g., R + R' = nothing).
func mergeMoves(m1, m2 Move) (Move, bool) {
	// Sum the turns: CW=1, CCW=-1, Double=2
	total := ((int(m1.Turn)+int(m2.Turn))%4 + 4) % 4

	switch total {
	case 0:
		return Move{}, false
	case 1:
		return Move{Face: m1.Face, Turn: CW}, true
	case 2:
		return Move{Face: m1.Face, Turn: Double}, true
	default:
		return Move{Face: m1.Face, Turn: CCW}, true
	}
}

// mustSequence is used for the predefined algorithms.
func mustSequence(s string) Sequence {
	seq, err := ParseSequence(s)
	if err != nil {
		panic(fmt.Sprintf("cubealg: bad predefined sequence %q: %v", s, err))
	}
	return seq
}
