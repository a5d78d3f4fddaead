// Package ebitensurface draws engine frames on an ebiten image.
package ebitensurface

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/engine"
)

// Width and Height are the size of the playfield in pixels.
const (
	Width  = engine.Cols * engine.CellSize
	Height = engine.Rows * engine.CellSize
)

// Surface implements engine.Surface on an ebiten image, translated by an offset.
type Surface struct {
	Image   *ebiten.Image
	OffsetX float32
	OffsetY float32
}

var _ engine.Surface = (*Surface)(nil)

func New(img *ebiten.Image, offsetX, offsetY float32) *Surface {
	return &Surface{Image: img, OffsetX: offsetX, OffsetY: offsetY}
}

// Clear fills the whole image with the background color.
func (s *Surface) Clear() {
	s.Image.Fill(engine.Background)
}

func (s *Surface) FillRect(x, y, w, h int, c engine.Color) {
	vector.DrawFilledRect(s.Image, s.OffsetX+float32(x), s.OffsetY+float32(y), float32(w), float32(h), c.RGBA(), false)
}

func (s *Surface) StrokeRect(x, y, w, h int) {
	vector.StrokeRect(s.Image, s.OffsetX+float32(x), s.OffsetY+float32(y), float32(w), float32(h), 1, engine.Outline, false)
}
