package cubealg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		want Move
	}{
		{"R", R},
		{"R'", RPrime},
		{"R2", R2},
		{"u'", Move{Face: WideU, Turn: CCW}},
		{"M2", Move{Face: SliceM, Turn: Double}},
		{"x", Move{Face: RotX, Turn: CW}},
		{" F ", F},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMove(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMoveRejectsInvalidTokens(t *testing.T) {
	for _, in := range []string{"", "Q", "R2'", "R'2", "RU", "R3", "w"} {
		_, err := ParseMove(in)
		assert.Truef(t, errors.Is(err, ErrInvalidToken), "ParseMove(%q) error = %v", in, err)
	}
}

func TestMoveInverse(t *testing.T) {
	assert.Equal(t, RPrime, R.Inverse())
	assert.Equal(t, R, RPrime.Inverse())
	assert.Equal(t, R2, R2.Inverse(), "half turns are their own inverse")
}

func TestMoveNotation(t *testing.T) {
	assert.Equal(t, "U'", UPrime.Notation())
	assert.Equal(t, "D2", D2.String())
	assert.Equal(t, "S", Move{Face: SliceS, Turn: CW}.Notation())
}

func TestFacesCoverAlphabet(t *testing.T) {
	all := Faces()
	assert.Len(t, all, 18)
	for _, f := range all {
		assert.True(t, f.IsValid())
	}
	assert.False(t, Face("Q").IsValid())
	assert.True(t, RotY.IsRotation())
	assert.False(t, FaceR.IsRotation())
}
