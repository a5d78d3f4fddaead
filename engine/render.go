package engine

// CellSize is the side of one cell in surface units, shared by the grid and the pieces.
const CellSize = 30

// Surface is a 2-D drawing target. Coordinates are in surface units with the origin at the
// top-left corner of the playfield.
type Surface interface {
	Clear()
	FillRect(x, y, w, h int, c Color)
	StrokeRect(x, y, w, h int)
}

// Render draws the playfield, then the current piece, then the next piece at its own
// anchor.
func (g *Game) Render(s Surface) {
	s.Clear()

	for y := range g.field {
		for x, c := range g.field[y] {
			drawCell(s, x, y, c)
		}
	}

	drawPiece(s, g.current)
	drawPiece(s, g.next)
}

func drawPiece(s Surface, p Piece) {
	for c := range p.Cells() {
		drawCell(s, c.X, c.Y, p.Color)
	}
}

func drawCell(s Surface, x, y int, c Color) {
	s.FillRect(x*CellSize, y*CellSize, CellSize, CellSize, c)
	s.StrokeRect(x*CellSize, y*CellSize, CellSize, CellSize)
}

// OpKind tells which Surface method a DrawOp replays.
type OpKind uint8

const (
	OpClear OpKind = iota
	OpFill
	OpStroke
)

// DrawOp is one recorded Surface call.
type DrawOp struct {
	Kind       OpKind
	X, Y, W, H int
	Color      Color
}

// DrawList is a Surface that records calls so a frame produced on one goroutine can be
// replayed on another.
type DrawList struct {
	Ops []DrawOp
}

func (d *DrawList) Clear() {
	d.Ops = append(d.Ops[:0], DrawOp{Kind: OpClear})
}

func (d *DrawList) FillRect(x, y, w, h int, c Color) {
	d.Ops = append(d.Ops, DrawOp{Kind: OpFill, X: x, Y: y, W: w, H: h, Color: c})
}

func (d *DrawList) StrokeRect(x, y, w, h int) {
	d.Ops = append(d.Ops, DrawOp{Kind: OpStroke, X: x, Y: y, W: w, H: h})
}

// Replay issues every recorded call against s in order.
func (d *DrawList) Replay(s Surface) {
	for _, op := range d.Ops {
		switch op.Kind {
		case OpClear:
			s.Clear()
		case OpFill:
			s.FillRect(op.X, op.Y, op.W, op.H, op.Color)
		case OpStroke:
			s.StrokeRect(op.X, op.Y, op.W, op.H)
		}
	}
}

// Clone returns a DrawList with its own copy of the operations.
func (d *DrawList) Clone() *DrawList {
	return &DrawList{Ops: append([]DrawOp(nil), d.Ops...)}
}
