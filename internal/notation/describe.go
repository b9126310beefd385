// Package notation renders moves as plain-language instructions.
package notation

import (
	"strings"

	"github.com/SeamusWaldron/cubealg"
)

// Reference frame: White on top, Green in front, facing the cube.
//
// Mapping for the outer faces:
//
//	R  -> "R up"            R' -> "R down"            R2 -> "R up x 2"
//	L  -> "L down"          L' -> "L up"              L2 -> "L down x 2"
//	U  -> "T rotate right"  U' -> "T rotate left"     U2 -> "T rotate right x 2"
//	D  -> "B rotate right"  D' -> "B rotate left"     D2 -> "B rotate right x 2"
//	F  -> "F rotate clockwise"     F' -> "F rotate anti-clockwise"
//	B  -> "Back rotate clockwise"  B' -> "Back rotate anti-clockwise"
//
// Wide turns, slices and rotations borrow the directions of the face they follow:
// r follows R, M follows L, E follows D, S follows F, x follows R, y follows U, z follows F.

type direction struct {
	cw, ccw string
}

var directions = map[cubealg.Face]direction{
	cubealg.FaceR: {"up", "down"},
	cubealg.FaceL: {"down", "up"},
	cubealg.FaceU: {"rotate right", "rotate left"},
	cubealg.FaceD: {"rotate right", "rotate left"},
	cubealg.FaceF: {"rotate clockwise", "rotate anti-clockwise"},
	cubealg.FaceB: {"rotate clockwise", "rotate anti-clockwise"},
}

// follows maps every face to the outer face whose direction it shares.
var follows = map[cubealg.Face]cubealg.Face{
	cubealg.FaceR: cubealg.FaceR, cubealg.WideR: cubealg.FaceR, cubealg.RotX: cubealg.FaceR,
	cubealg.FaceL: cubealg.FaceL, cubealg.WideL: cubealg.FaceL, cubealg.SliceM: cubealg.FaceL,
	cubealg.FaceU: cubealg.FaceU, cubealg.WideU: cubealg.FaceU, cubealg.RotY: cubealg.FaceU,
	cubealg.FaceD: cubealg.FaceD, cubealg.WideD: cubealg.FaceD, cubealg.SliceE: cubealg.FaceD,
	cubealg.FaceF: cubealg.FaceF, cubealg.WideF: cubealg.FaceF, cubealg.SliceS: cubealg.FaceF, cubealg.RotZ: cubealg.FaceF,
	cubealg.FaceB: cubealg.FaceB, cubealg.WideB: cubealg.FaceB,
}

var labels = map[cubealg.Face]string{
	cubealg.FaceR: "R",
	cubealg.FaceL: "L",
	cubealg.FaceU: "T",
	cubealg.FaceD: "B",
	cubealg.FaceF: "F",
	cubealg.FaceB: "Back",
}

func label(f cubealg.Face) string {
	switch {
	case f.IsRotation():
		return "Cube (" + string(f) + ")"
	case f == cubealg.SliceM || f == cubealg.SliceE || f == cubealg.SliceS:
		return string(f) + " slice"
	}
	if l, ok := labels[f]; ok {
		return l
	}
	return labels[follows[f]] + " wide"
}

// Describe converts a move to a plain-language instruction.
func Describe(m cubealg.Move) string {
	base, ok := follows[m.Face]
	if !ok {
		return m.Notation() // Fallback to standard notation
	}

	dir := directions[base]
	switch m.Turn {
	case cubealg.CW:
		return label(m.Face) + " " + dir.cw
	case cubealg.CCW:
		return label(m.Face) + " " + dir.ccw
	case cubealg.Double:
		return label(m.Face) + " " + dir.cw + " x 2"
	}

	return m.Notation()
}

// DescribeSequence converts a sequence to one instruction per move.
func DescribeSequence(seq cubealg.Sequence) []string {
	result := make([]string, len(seq))
	for i, m := range seq {
		result[i] = Describe(m)
	}
	return result
}

// FormatDescribed formats a sequence as a comma-separated instruction string.
func FormatDescribed(seq cubealg.Sequence) string {
	return strings.Join(DescribeSequence(seq), ", ")
}
