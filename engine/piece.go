package engine

import "iter"

// Spawn anchor shared by every new piece.
const (
	SpawnX = 3
	SpawnY = 0
)

// Point is a cell position in grid coordinates.
type Point struct {
	X, Y int
}

// Piece is a shape with a color anchored by its top-left corner at (X, Y).
type Piece struct {
	Kind  ShapeKind
	Shape Shape
	Color Color
	X, Y  int
}

// NewPiece returns a piece of kind k in its spawn orientation at the spawn anchor.
func NewPiece(k ShapeKind, c Color) Piece {
	return Piece{
		Kind:  k,
		Shape: k.Footprint(),
		Color: c,
		X:     SpawnX,
		Y:     SpawnY,
	}
}

// Cells yields the grid position of every occupied cell of the piece.
func (p Piece) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := range p.Shape {
			for x, filled := range p.Shape[y] {
				if !filled {
					continue
				}
				if !yield(Point{X: p.X + x, Y: p.Y + y}) {
					return
				}
			}
		}
	}
}

// Clone returns a copy of p that does not share its shape.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}
