// Package tetromino implements the falling-piece engine behind the clock:
// the shape geometry table, the one-row-ahead collision test, boards of live
// pieces and the per-digit spawn sequencer.
//
// Coordinates follow the canvas: origin top-left, y grows downward. A piece's
// anchor is the lower-left corner of its lower-left filled pixel, so a piece
// anchored at row y fills rows strictly above y. Live pieces never rotate.
package tetromino

import (
	"fmt"
	"strings"
)

// Shape is one of the seven tetrominoes.
type Shape uint8

const (
	ShapeL Shape = iota
	ShapeJ
	ShapeO
	ShapeT
	ShapeI
	ShapeS
	ShapeZ

	numShapes
)

// Shapes lists every shape in declaration order.
var Shapes = []Shape{ShapeL, ShapeJ, ShapeO, ShapeT, ShapeI, ShapeS, ShapeZ}

var shapeNames = [numShapes]string{"L", "J", "O", "T", "I", "S", "Z"}

// String returns the single-letter name of the shape.
func (s Shape) String() string {
	if s < numShapes {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// ParseShape parses a single-letter shape name (case-insensitive).
func ParseShape(name string) (Shape, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range shapeNames {
		if n == upper {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}

// Rotation is a clockwise quarter-turn count relative to the reference
// orientation.
type Rotation uint8

const (
	Rotation0 Rotation = iota
	Rotation90
	Rotation180
	Rotation270

	numRotations
)

// Rotations lists every rotation in declaration order.
var Rotations = []Rotation{Rotation0, Rotation90, Rotation180, Rotation270}

// Degrees returns the rotation angle in degrees.
func (r Rotation) Degrees() int {
	return int(r) * 90
}

// String returns the rotation as e.g. "90°".
func (r Rotation) String() string {
	if r < numRotations {
		return fmt.Sprintf("%d°", r.Degrees())
	}
	return fmt.Sprintf("Rotation(%d)", uint8(r))
}

// RotationFromDegrees converts 0, 90, 180 or 270 into a Rotation.
func RotationFromDegrees(deg int) (Rotation, error) {
	if deg < 0 || deg%90 != 0 || deg/90 >= int(numRotations) {
		return 0, fmt.Errorf("invalid rotation %d: must be 0, 90, 180 or 270", deg)
	}
	return Rotation(deg / 90), nil
}

// FallState is a piece's lifecycle phase.
type FallState uint8

const (
	// Entering pieces descend toward the board's stop row.
	Entering FallState = iota
	// Holding pieces reached the stop row and stay put.
	Holding
	// Exiting pieces ignore the stop row and fall off the canvas.
	Exiting
)

// String returns a human-readable name for the state.
func (f FallState) String() string {
	switch f {
	case Entering:
		return "Entering"
	case Holding:
		return "Holding"
	case Exiting:
		return "Exiting"
	default:
		return "Unknown"
	}
}
