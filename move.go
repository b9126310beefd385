package cubealg

import (
	"fmt"
	"strings"
)

// Face names the layer (or whole-cube axis) a move turns.
// The alphabet covers outer faces, wide layers, slices and cube rotations.
type Face string

const (
	// Outer faces
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back

	// Wide (two-layer) turns
	WideR Face = "r"
	WideL Face = "l"
	WideU Face = "u"
	WideD Face = "d"
	WideF Face = "f"
	WideB Face = "b"

	// Slice turns
	SliceM Face = "M" // Middle, follows L
	SliceE Face = "E" // Equator, follows D
	SliceS Face = "S" // Standing, follows F

	// Whole-cube rotations
	RotX Face = "x"
	RotY Face = "y"
	RotZ Face = "z"
)

// faces lists every valid face in the order used for display.
var faces = []Face{
	FaceR, FaceL, FaceU, FaceD, FaceF, FaceB,
	WideR, WideL, WideU, WideD, WideF, WideB,
	SliceM, SliceE, SliceS,
	RotX, RotY, RotZ,
}

// Faces returns all faces of the token alphabet.
func Faces() []Face {
	out := make([]Face, len(faces))
	copy(out, faces)
	return out
}

// IsValid reports whether f belongs to the token alphabet.
func (f Face) IsValid() bool {
	for _, v := range faces {
		if v == f {
			return true
		}
	}
	return false
}

// IsRotation reports whether f is a whole-cube rotation (x, y, z).
func (f Face) IsRotation() bool {
	return f == RotX || f == RotY || f == RotZ
}

// Turn represents the direction and magnitude of a turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move is a single token of a simple sequence.
type Move struct {
	Face Face // Which layer to turn
	Turn Turn // Direction and amount
}

// Notation returns the standard notation string for this move.
// Examples: R, R', R2, M', x2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	// Double is its own inverse
	}
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a single token such as R, R', R2, r, M' or x2.
// A token carries at most one suffix; anything else is ErrInvalidToken.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, fmt.Errorf("%w: empty token", ErrInvalidToken)
	}

	face := Face(s[:1])
	if !face.IsValid() {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidToken, s)
	}

	turn := CW
	switch s[1:] {
	case "":
	case "'":
		turn = CCW
	case "2":
		turn = Double
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidToken, s)
	}

	return Move{Face: face, Turn: turn}, nil
}
