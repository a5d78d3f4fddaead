package engine

//go:generate go tool stringer -type=ShapeKind -trimprefix=Shape

// ShapeKind names one of the seven tetromino footprints.
type ShapeKind int

const (
	ShapeI ShapeKind = iota
	ShapeO
	ShapeT
	ShapeL
	ShapeJ
	ShapeS
	ShapeZ
)

// ShapeKinds lists every kind in palette order.
var ShapeKinds = []ShapeKind{ShapeI, ShapeO, ShapeT, ShapeL, ShapeJ, ShapeS, ShapeZ}

var footprints = [...]Shape{
	ShapeI: {
		{true, true, true, true},
	},
	ShapeO: {
		{true, true},
		{true, true},
	},
	ShapeT: {
		{false, true, false},
		{true, true, true},
	},
	ShapeL: {
		{true, false, false},
		{true, true, true},
	},
	ShapeJ: {
		{false, false, true},
		{true, true, true},
	},
	ShapeS: {
		{false, true, true},
		{true, true, false},
	},
	ShapeZ: {
		{true, true, false},
		{false, true, true},
	},
}

// Footprint returns a fresh copy of the kind's spawn orientation.
func (k ShapeKind) Footprint() Shape {
	return footprints[k].Clone()
}

// Shape is an occupancy matrix indexed [row][column]. Every shape handled by the engine
// has at least one row and all rows share the same length.
type Shape [][]bool

// Clone returns a deep copy of s.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	for i := range s {
		clone[i] = make([]bool, len(s[i]))
		copy(clone[i], s[i])
	}
	return clone
}

// Width is the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height is the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Rotate returns s turned a quarter: the transpose of s with its row order reversed.
// s itself is left untouched.
func (s Shape) Rotate() Shape {
	h, w := s.Height(), s.Width()

	rotated := make(Shape, w)
	for i := range rotated {
		rotated[i] = make([]bool, h)
	}

	for y := range h {
		for x := range w {
			rotated[w-1-x][y] = s[y][x]
		}
	}

	return rotated
}

// Equal reports whether s and other have the same dimensions and occupancy.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Count returns the number of occupied cells.
func (s Shape) Count() int {
	n := 0
	for y := range s {
		for _, v := range s[y] {
			if v {
				n++
			}
		}
	}
	return n
}
