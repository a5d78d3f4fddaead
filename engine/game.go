// Package engine implements a falling-block puzzle session: a fixed playfield, the piece
// being controlled, a preview piece, line clears and the terminal game-over state.
//
// A Game is not safe for concurrent use. Callers drive it from a single goroutine, see the
// loop package for a scheduler that does so.
package engine

import (
	"math/rand/v2"
	"time"
)

// PointsPerLine is added to the score for every cleared row.
const PointsPerLine = 100

// Rand is the source of piece kinds and colors. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Option configures a Game created by New.
type Option func(*Game)

// WithRand sets the random source used to generate pieces.
func WithRand(r Rand) Option {
	return func(g *Game) {
		g.rand = r
	}
}

// WithSeed seeds a PCG source for reproducible piece sequences.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithPlayfield starts the session on a copy of field instead of an empty grid.
func WithPlayfield(field Playfield) Option {
	return func(g *Game) {
		g.field = field
	}
}

// WithPieces replaces the randomly generated current and next pieces.
func WithPieces(current, next Piece) Option {
	return func(g *Game) {
		g.current = current.Clone()
		g.next = next.Clone()
	}
}

// LockResult describes what a lock changed.
type LockResult struct {
	Locked   Piece
	Cleared  int
	Spawned  ShapeKind
	GameOver bool
}

// Game is one play session.
type Game struct {
	field   Playfield
	current Piece
	next    Piece
	score   int
	lines   int
	over    bool
	rand    Rand
}

// New creates a session with an empty playfield and two random pieces.
func New(opts ...Option) *Game {
	g := &Game{}

	for _, opt := range opts {
		opt(g)
	}
	if g.rand == nil {
		now := uint64(time.Now().UnixNano())
		g.rand = rand.New(rand.NewPCG(now, now>>1))
	}

	if g.current.Shape == nil {
		g.current = g.randomPiece()
		g.next = g.randomPiece()
	}

	return g
}

// randomPiece draws the kind and the color independently of each other.
func (g *Game) randomPiece() Piece {
	kind := ShapeKinds[g.rand.IntN(len(ShapeKinds))]
	c := Colors[g.rand.IntN(len(Colors))]
	return NewPiece(kind, c)
}

// Field returns a copy of the playfield.
func (g *Game) Field() Playfield {
	return g.field
}

// Current returns a copy of the controlled piece.
func (g *Game) Current() Piece {
	return g.current.Clone()
}

// Next returns a copy of the preview piece.
func (g *Game) Next() Piece {
	return g.next.Clone()
}

func (g *Game) Score() int {
	return g.score
}

// Lines is the total number of rows cleared in this session.
func (g *Game) Lines() int {
	return g.lines
}

// Over reports whether the session reached game over.
func (g *Game) Over() bool {
	return g.over
}

// CheckCollision reports whether any occupied cell of the current piece is outside the
// playfield or on an occupied playfield cell. It has no side effects.
func (g *Game) CheckCollision() bool {
	return g.collides(g.current)
}

func (g *Game) collides(p Piece) bool {
	for c := range p.Cells() {
		if c.Y < 0 || c.Y >= Rows || c.X < 0 || c.X >= Cols {
			return true
		}
		if g.field.Occupied(c.X, c.Y) {
			return true
		}
	}
	return false
}

// MoveShape translates the current piece by (dx, dy). A move that would collide is
// reverted and reported as false.
func (g *Game) MoveShape(dx, dy int) bool {
	if g.over {
		return false
	}

	g.current.X += dx
	g.current.Y += dy
	if g.CheckCollision() {
		g.current.X -= dx
		g.current.Y -= dy
		return false
	}
	return true
}

// RotateShape turns the current piece a quarter. A rotation that would collide is
// discarded and the piece keeps its orientation; no wall kicks are attempted.
func (g *Game) RotateShape() {
	if g.over {
		return
	}

	previous := g.current.Shape
	g.current.Shape = previous.Rotate()
	if g.CheckCollision() {
		g.current.Shape = previous
	}
}

// ClearLines removes every full row, scores it and returns how many rows were removed.
func (g *Game) ClearLines() int {
	cleared := g.field.ClearLines()
	g.lines += cleared
	g.score += cleared * PointsPerLine
	return cleared
}

// LockShape writes the current piece into the playfield, clears full rows and promotes the
// next piece. If the promoted piece collides where it spawned the session is over.
//
// The current piece never collides when it is locked, so every cell it writes lies inside
// the playfield.
func (g *Game) LockShape() LockResult {
	if g.over {
		return LockResult{GameOver: true}
	}

	locked := g.current
	for c := range locked.Cells() {
		g.field.Set(c.X, c.Y, locked.Color)
	}

	result := LockResult{
		Locked:  locked,
		Cleared: g.ClearLines(),
	}

	g.current = g.next
	g.next = g.randomPiece()
	result.Spawned = g.current.Kind

	if g.CheckCollision() {
		g.over = true
		result.GameOver = true
	}

	return result
}
