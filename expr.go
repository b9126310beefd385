package cubealg

import (
	"math"
	"strings"
)

// Expr is a parsed move-sequence expression.
//
// The concrete types are Sequence, *Commutator, *Conjugate and Concat.
// Expand flattens an expression bottom-up into a simple sequence.
type Expr interface {
	// Expand returns the flat simple sequence the expression denotes.
	Expand() Sequence
	// String renders the expression in canonical notation.
	String() string
	// Depth is the bracket nesting depth; a Sequence has depth 0.
	Depth() int
	// Len is the number of moves Expand returns, computed without expanding.
	// It saturates at math.MaxInt.
	Len() int
}

// Commutator is [A, B], meaning A B A' B'.
type Commutator struct {
	A, B Expr
}

// Conjugate is [A: B], meaning A B A'.
type Conjugate struct {
	A, B Expr
}

// Concat is a run of expressions performed one after another,
// e.g. the three parts of "R [U, D] F".
type Concat []Expr

// Expand returns a copy of the sequence.
func (s Sequence) Expand() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

func (s Sequence) Depth() int { return 0 }

func (c *Commutator) Expand() Sequence {
	a := c.A.Expand()
	b := c.B.Expand()
	return a.Concat(b, a.Inverse(), b.Inverse())
}

func (c *Commutator) String() string {
	return "[" + c.A.String() + ", " + c.B.String() + "]"
}

func (c *Commutator) Len() int {
	ab := addLen(c.A.Len(), c.B.Len())
	return addLen(ab, ab)
}

func (c *Commutator) Depth() int {
	return 1 + max(c.A.Depth(), c.B.Depth())
}

func (c *Conjugate) Expand() Sequence {
	a := c.A.Expand()
	b := c.B.Expand()
	return a.Concat(b, a.Inverse())
}

func (c *Conjugate) String() string {
	return "[" + c.A.String() + ": " + c.B.String() + "]"
}

func (c *Conjugate) Len() int {
	a := c.A.Len()
	return addLen(addLen(a, a), c.B.Len())
}

func (c *Conjugate) Depth() int {
	return 1 + max(c.A.Depth(), c.B.Depth())
}

func (c Concat) Expand() Sequence {
	var out Sequence
	for _, e := range c {
		out = append(out, e.Expand()...)
	}
	return out
}

func (c Concat) String() string {
	parts := make([]string, len(c))
	for i, e := range c {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

func (c Concat) Len() int {
	n := 0
	for _, e := range c {
		n = addLen(n, e.Len())
	}
	return n
}

func (c Concat) Depth() int {
	d := 0
	for _, e := range c {
		d = max(d, e.Depth())
	}
	return d
}

// addLen adds two non-negative lengths, saturating instead of overflowing.
func addLen(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// Expand flattens e into a simple sequence.
// Trees built by hand skip the length check Parse performs; check e.Len() first.
func Expand(e Expr) Sequence {
	return e.Expand()
}
