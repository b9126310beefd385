package cubealg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSimpleSequence(t *testing.T) {
	simple := []string{"R", "R U R' U'", "  x2   M' ", "r\tu\nF2"}
	for _, s := range simple {
		assert.Truef(t, IsSimpleSequence(s), "%q should be simple", s)
	}

	notSimple := []string{"", "   ", "[R, U]", "R, U", "R: U", "RU", "R2'", "Q", "R [U, D]"}
	for _, s := range notSimple {
		assert.Falsef(t, IsSimpleSequence(s), "%q should not be simple", s)
	}
}

func TestFindCommutatorReturnsInnermost(t *testing.T) {
	m, ok := FindCommutator("[[D, R U R'], F]")
	assert.True(t, ok)
	assert.Equal(t, "[D, R U R']", m)

	m, ok = FindCommutator("R [ U , D ] [F, B]")
	assert.True(t, ok)
	assert.Equal(t, "[ U , D ]", m)

	_, ok = FindCommutator("[R: U]")
	assert.False(t, ok)
}

func TestFindConjugate(t *testing.T) {
	m, ok := FindConjugate("[F: [R, U]]")
	assert.False(t, ok, "operand is not simple yet: %q", m)

	m, ok = FindConjugate("[R' U': R' F R F']")
	assert.True(t, ok)
	assert.Equal(t, "[R' U': R' F R F']", m)

	_, ok = FindConjugate("R U R'")
	assert.False(t, ok)
}
