package engine

const (
	Rows = 20
	Cols = 10
)

// Playfield is the fixed grid pieces fall into, indexed [row][column] with row 0 at the top.
// Every cell is Empty or one of Colors.
type Playfield [Rows][Cols]Color

// At returns the color at column x, row y.
func (p Playfield) At(x, y int) Color {
	return p[y][x]
}

// Set writes c at column x, row y.
func (p *Playfield) Set(x, y int, c Color) {
	p[y][x] = c
}

// Occupied reports whether the cell at column x, row y holds a color.
func (p Playfield) Occupied(x, y int) bool {
	return p[y][x] != Empty
}

// RowFull reports whether every cell of row y is occupied.
func (p Playfield) RowFull(y int) bool {
	for _, c := range p[y] {
		if c == Empty {
			return false
		}
	}
	return true
}

// ClearLines removes every full row at once, shifting the rows above it down and filling
// the top with empty rows, and returns the number of rows removed.
func (p *Playfield) ClearLines() int {
	dst := Rows - 1
	for src := Rows - 1; src >= 0; src-- {
		if p.RowFull(src) {
			continue
		}
		if dst != src {
			p[dst] = p[src]
		}
		dst--
	}

	cleared := dst + 1
	for y := range cleared {
		p[y] = [Cols]Color{}
	}

	return cleared
}

// Count returns the number of occupied cells.
func (p Playfield) Count() int {
	n := 0
	for y := range p {
		for _, c := range p[y] {
			if c != Empty {
				n++
			}
		}
	}
	return n
}
