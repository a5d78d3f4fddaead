package engine

import "image/color"

//go:generate go tool stringer -type=Color

// Color identifies the color of a playfield cell or piece. The zero value is an empty cell.
type Color uint8

const (
	Empty Color = iota
	Cyan
	Yellow
	Purple
	Orange
	Blue
	Green
	Red
)

// Colors lists every color a piece can be drawn with.
var Colors = []Color{Cyan, Yellow, Purple, Orange, Blue, Green, Red}

// Background is drawn for empty cells.
var Background = color.RGBA{0, 0, 0, 255}

// Outline is the stroke color used around every drawn cell.
var Outline = color.RGBA{0, 0, 0, 255}

var rgba = [...]color.RGBA{
	Empty:  Background,
	Cyan:   {0, 255, 255, 255},
	Yellow: {255, 255, 0, 255},
	Purple: {128, 0, 128, 255},
	Orange: {255, 165, 0, 255},
	Blue:   {0, 0, 255, 255},
	Green:  {0, 128, 0, 255},
	Red:    {255, 0, 0, 255},
}

// Valid reports whether c is Empty or one of Colors.
func (c Color) Valid() bool {
	return int(c) < len(rgba)
}

// RGBA returns the display color. Invalid colors render as the background.
func (c Color) RGBA() color.RGBA {
	if !c.Valid() {
		return Background
	}
	return rgba[c]
}
