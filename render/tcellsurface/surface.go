// Package tcellsurface draws engine frames on a terminal screen. One playfield cell takes
// one row and two columns.
package tcellsurface

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/engine"
)

// CellWidth is the number of terminal columns used for one playfield cell.
const CellWidth = 2

// Width and Height are the size of the playfield in terminal cells.
const (
	Width  = engine.Cols * CellWidth
	Height = engine.Rows
)

// Surface implements engine.Surface on a tcell screen. Rectangles are snapped to whole
// playfield cells. Strokes draw bracket pairs in the outline color over whatever was
// filled underneath.
type Surface struct {
	Screen  tcell.Screen
	OffsetX int
	OffsetY int
}

var _ engine.Surface = (*Surface)(nil)

func New(screen tcell.Screen, offsetX, offsetY int) *Surface {
	return &Surface{Screen: screen, OffsetX: offsetX, OffsetY: offsetY}
}

// Style returns the terminal style of a filled cell of color c.
func Style(c engine.Color) tcell.Style {
	return tcell.StyleDefault.
		Background(tcell.FromImageColor(c.RGBA())).
		Foreground(tcell.FromImageColor(engine.Outline))
}

// Clear blanks the playfield area only, so text drawn around it survives.
func (s *Surface) Clear() {
	style := Style(engine.Empty)
	for y := range Height {
		for x := range Width {
			s.Screen.SetContent(s.OffsetX+x, s.OffsetY+y, ' ', nil, style)
		}
	}
}

func (s *Surface) FillRect(x, y, w, h int, c engine.Color) {
	style := Style(c)
	s.cells(x, y, w, h, func(col, row int) {
		s.Screen.SetContent(col, row, ' ', nil, style)
		s.Screen.SetContent(col+1, row, ' ', nil, style)
	})
}

func (s *Surface) StrokeRect(x, y, w, h int) {
	s.cells(x, y, w, h, func(col, row int) {
		_, _, style, _ := s.Screen.GetContent(col, row)
		style = style.Foreground(tcell.FromImageColor(engine.Outline))
		s.Screen.SetContent(col, row, '[', nil, style)
		s.Screen.SetContent(col+1, row, ']', nil, style)
	})
}

// cells calls fn with the terminal position of the left column of every playfield cell
// the rectangle covers.
func (s *Surface) cells(x, y, w, h int, fn func(col, row int)) {
	x0, y0 := x/engine.CellSize, y/engine.CellSize
	x1, y1 := (x+w+engine.CellSize-1)/engine.CellSize, (y+h+engine.CellSize-1)/engine.CellSize

	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			fn(s.OffsetX+cx*CellWidth, s.OffsetY+cy)
		}
	}
}
