package cubealg

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleSequence(t *testing.T) {
	e, err := Parse("R U R' U'")
	require.NoError(t, err)
	assert.Equal(t, SexyMove, e)
	assert.Equal(t, 0, e.Depth())
}

func TestParseTree(t *testing.T) {
	e, err := Parse("R [U, D] [F: B2]")
	require.NoError(t, err)

	want := Concat{
		Sequence{R},
		&Commutator{A: Sequence{U}, B: Sequence{D}},
		&Conjugate{A: Sequence{F}, B: Sequence{B2}},
	}
	assert.Equal(t, want, e)
	assert.Equal(t, 1, e.Depth())
}

func TestParseNested(t *testing.T) {
	e, err := Parse("[[D, R U R'], F]")
	require.NoError(t, err)

	c, ok := e.(*Commutator)
	require.True(t, ok)
	assert.Equal(t, Sequence{F}, c.B)
	assert.IsType(t, &Commutator{}, c.A)
	assert.Equal(t, 2, e.Depth())
}

func TestParseWithoutSpacesAroundPunctuation(t *testing.T) {
	e, err := Parse("[R U R',D]")
	require.NoError(t, err)
	assert.Equal(t, "[R U R', D]", e.String())

	e, err = Parse("[x:[R' U R',D2]R2]")
	require.NoError(t, err)
	assert.Equal(t, "[x: [R' U R', D2] R2]", e.String())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
		pos  int
	}{
		{"empty", "", ErrEmptyExpression, 0},
		{"blank", "   ", ErrEmptyExpression, 0},
		{"unknown move", "R Q", ErrInvalidToken, 2},
		{"prime and half turn", "R2'", ErrInvalidToken, 0},
		{"glued moves", "[RU, D]", ErrInvalidToken, 1},
		{"unclosed", "[R, U", ErrMalformedExpression, 5},
		{"missing separator", "[R U]", ErrMalformedExpression, 4},
		{"ambiguous split", "[R, U, F]", ErrMalformedExpression, 5},
		{"empty operand", "[, U]", ErrMalformedExpression, 1},
		{"stray close", "R ]", ErrMalformedExpression, 2},
		{"bare separator", "R, U", ErrMalformedExpression, 1},
		{"empty brackets", "[]", ErrMalformedExpression, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.pos, perr.Pos)
			assert.Equal(t, tt.in, perr.Input)
		})
	}
}

func TestParseMaxDepth(t *testing.T) {
	_, err := Parse("[[R, U], F]", WithMaxDepth(1))
	assert.ErrorIs(t, err, ErrTooDeep)

	_, err = Parse("[[R, U], F]", WithMaxDepth(2))
	assert.NoError(t, err)
}

func TestParseDefaultDepthLimit(t *testing.T) {
	// Conjugates nested on the right grow by two moves per level.
	expr := "R"
	for i := 0; i < DefaultMaxDepth; i++ {
		expr = "[U: " + expr + "]"
	}
	e, err := Parse(expr)
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxDepth, e.Depth())
	assert.Equal(t, 2*DefaultMaxDepth+1, e.Len())

	_, err = Parse("[U: " + expr + "]")
	assert.ErrorIs(t, err, ErrTooDeep)
}

// commutatorChain nests "[..., U]" depth times around R. Its expansion has
// 3*2^depth - 2 moves.
func commutatorChain(depth int) string {
	return strings.Repeat("[", depth) + "R" + strings.Repeat(", U]", depth)
}

func TestExprLen(t *testing.T) {
	tests := []string{
		"R U R'",
		"[R, U]",
		"[R U: F]",
		"[[R: U], [F, D']]",
		"R [U, D] F [L: B2]",
		commutatorChain(6),
	}
	for _, in := range tests {
		e, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, len(e.Expand()), e.Len(), in)
	}
}

func TestExprLenSaturates(t *testing.T) {
	var e Expr = Sequence{R, U}
	for i := 0; i < 80; i++ {
		e = &Commutator{A: e, B: Sequence{U}}
	}
	assert.Equal(t, math.MaxInt, e.Len())
}

func TestParseMaxMoves(t *testing.T) {
	// 2 * (3 + 1) moves
	_, err := Parse("[R U R', F]", WithMaxMoves(8))
	assert.NoError(t, err)

	_, err = Parse("[R U R', F D]", WithMaxMoves(8))
	assert.ErrorIs(t, err, ErrTooLong)

	_, err = Parse("R U R' U' R", WithMaxMoves(4))
	assert.ErrorIs(t, err, ErrTooLong)
}

func TestParseDefaultMoveLimit(t *testing.T) {
	// Both chains stay far below the depth limit.
	e, err := Parse(commutatorChain(15))
	require.NoError(t, err)
	assert.Equal(t, 3*(1<<15)-2, e.Len())

	_, err = Parse(commutatorChain(16))
	require.ErrorIs(t, err, ErrTooLong)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 0, perr.Pos)

	// Deep enough that the unchecked length would overflow an int.
	_, err = Parse(commutatorChain(DefaultMaxDepth - 1))
	assert.ErrorIs(t, err, ErrTooLong)
}
