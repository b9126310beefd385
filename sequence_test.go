package cubealg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleSequences = []string{
	"R",
	"R U R'",
	"R U R' U'",
	"F R U' R' U' R U R' F'",
	"x2 M' U2 M U2",
	"r u' l2 d f' b E S' y z'",
}

func TestInvert(t *testing.T) {
	assert.Equal(t, "R U' R'", Invert("R U R'"))
	assert.Equal(t, "U' R2", Invert("R2 U"))
	assert.Equal(t, "U' R'", Invert("  R   U  "))
	assert.Equal(t, "", Invert(""))
}

func TestInvertIsLenient(t *testing.T) {
	// Unknown tokens are treated as plain turns.
	assert.Equal(t, "R' Q'", Invert("Q R"))
}

func TestInvertInvolution(t *testing.T) {
	for _, s := range sampleSequences {
		assert.Equal(t, normalizeSpace(s), Invert(Invert(s)), s)
	}
}

func TestInvertConcatenation(t *testing.T) {
	for _, s1 := range sampleSequences {
		for _, s2 := range sampleSequences {
			assert.Equal(t, Invert(s2)+" "+Invert(s1), Invert(s1+" "+s2))
		}
	}
}

func TestInvertHalfTurnFixedPoint(t *testing.T) {
	for _, f := range Faces() {
		tok := string(f) + "2"
		assert.Equal(t, tok, Invert(tok))
	}
}

func TestSequenceInverseMatchesInvert(t *testing.T) {
	for _, s := range sampleSequences {
		seq, err := ParseSequence(s)
		require.NoError(t, err)
		assert.Equal(t, Invert(s), seq.Inverse().String())
	}
}

func TestParseSequence(t *testing.T) {
	seq, err := ParseSequence("R U R' U'")
	require.NoError(t, err)
	assert.Equal(t, SexyMove, seq)
	assert.Equal(t, 4, seq.Len())

	_, err = ParseSequence("   ")
	assert.ErrorIs(t, err, ErrEmptyExpression)

	_, err = ParseSequence("R Q")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTPermIsSelfInverse(t *testing.T) {
	assert.Equal(t, 14, TPerm.Len())
	assert.Empty(t, Cancel(TPerm.Concat(TPerm.Inverse())))
}

func TestCancel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"R R", "R2"},
		{"R R'", ""},
		{"R' R'", "R2"},
		{"R2 R", "R'"},
		{"R2 R2", ""},
		{"R U U' R'", ""},
		{"R L R", "R L R"},
		{"R r", "R r"},
		{"R U R' U'", "R U R' U'"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			seq, err := ParseSequence(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Cancel(seq).String())
		})
	}
}

func TestSexyMoveInverse(t *testing.T) {
	assert.Equal(t, InverseSexyMove, SexyMove.Inverse().Inverse().Inverse())
	assert.Equal(t, "U R U' R'", strings.TrimSpace(SexyMove.Inverse().String()))
}
