package engine_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequence is a deterministic engine.Rand returning its values in order.
type sequence struct {
	values []int
	pos    int
}

func (s *sequence) IntN(n int) int {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v % n
}

func TestNewGame(t *testing.T) {
	for seed := range uint64(200) {
		g := engine.New(engine.WithSeed(seed))

		assert.Equal(t, 0, g.Field().Count())
		assert.Equal(t, 0, g.Score())
		assert.False(t, g.Over())
		assert.False(t, g.CheckCollision(), "seed %d spawned a colliding piece", seed)

		current := g.Current()
		assert.Equal(t, engine.SpawnX, current.X)
		assert.Equal(t, engine.SpawnY, current.Y)
		assert.True(t, current.Color.Valid())
		assert.NotEqual(t, engine.Empty, current.Color)
	}
}

func TestNewGameDrawsKindAndColorIndependently(t *testing.T) {
	// kind, color, kind, color
	r := &sequence{values: []int{2, 6, 0, 1}}
	g := engine.New(engine.WithRand(r))

	assert.Equal(t, engine.ShapeT, g.Current().Kind)
	assert.Equal(t, engine.Red, g.Current().Color)
	assert.Equal(t, engine.ShapeI, g.Next().Kind)
	assert.Equal(t, engine.Yellow, g.Next().Color)
}

func TestMoveShapeNeverLeavesCollision(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	g := engine.New(engine.WithSeed(42))

	for step := 0; step < 5000 && !g.Over(); step++ {
		dx := r.IntN(5) - 2
		dy := r.IntN(4) - 1
		before := g.Current()

		moved := g.MoveShape(dx, dy)

		require.False(t, g.CheckCollision(), "step %d left the piece colliding", step)
		after := g.Current()
		if moved {
			assert.Equal(t, before.X+dx, after.X)
			assert.Equal(t, before.Y+dy, after.Y)
		} else {
			assert.Equal(t, before, after)
		}

		if r.IntN(4) == 0 {
			g.RotateShape()
			require.False(t, g.CheckCollision())
		}

		if dy > 0 && !moved {
			g.LockShape()
		}
	}
}

func TestMoveShapeRejectsCeiling(t *testing.T) {
	g := engine.New(engine.WithSeed(1))
	before := g.Current()

	assert.NotPanics(t, func() {
		assert.False(t, g.MoveShape(0, -1))
	})
	assert.Equal(t, before, g.Current())

	above := engine.NewPiece(engine.ShapeO, engine.Yellow)
	above.Y = -1
	g = engine.New(engine.WithPieces(above, engine.NewPiece(engine.ShapeT, engine.Purple)))
	assert.True(t, g.CheckCollision())
	assert.True(t, g.MoveShape(0, 1))
	assert.False(t, g.CheckCollision())
}

func TestDropIPieceToFloor(t *testing.T) {
	g := engine.New(engine.WithPieces(
		engine.NewPiece(engine.ShapeI, engine.Cyan),
		engine.NewPiece(engine.ShapeO, engine.Yellow),
	))

	for i := range 19 {
		require.True(t, g.MoveShape(0, 1), "move %d", i+1)
	}
	assert.False(t, g.MoveShape(0, 1), "20th move must hit the floor")
	assert.Equal(t, 19, g.Current().Y)

	result := g.LockShape()

	field := g.Field()
	assert.Equal(t, 4, field.Count())
	for x := 3; x <= 6; x++ {
		assert.Equal(t, engine.Cyan, field.At(x, 19))
	}
	assert.Equal(t, 0, result.Cleared)
	assert.False(t, result.GameOver)
	assert.Equal(t, engine.ShapeO, result.Spawned)
	assert.Equal(t, engine.ShapeO, g.Current().Kind)
	assert.False(t, g.CheckCollision())
}

func TestLockClearsCompletedRow(t *testing.T) {
	var field engine.Playfield
	for _, x := range []int{0, 1, 2, 7, 8, 9} {
		field.Set(x, 19, engine.Blue)
	}
	field.Set(4, 18, engine.Green)

	current := engine.NewPiece(engine.ShapeI, engine.Cyan)
	current.Y = 19
	g := engine.New(
		engine.WithPlayfield(field),
		engine.WithPieces(current, engine.NewPiece(engine.ShapeT, engine.Purple)),
	)
	require.False(t, g.CheckCollision())

	result := g.LockShape()

	assert.Equal(t, 1, result.Cleared)
	assert.Equal(t, engine.PointsPerLine, g.Score())
	assert.Equal(t, 1, g.Lines())

	after := g.Field()
	assert.Equal(t, 1, after.Count())
	assert.Equal(t, engine.Green, after.At(4, 19))
}

func TestClearLinesRemovesFullRow(t *testing.T) {
	var field engine.Playfield
	for x := range engine.Cols {
		field.Set(x, 19, engine.Red)
	}
	field.Set(0, 18, engine.Blue)
	field.Set(5, 3, engine.Orange)

	g := engine.New(engine.WithPlayfield(field))
	before := g.Field().Count()

	assert.Equal(t, 1, g.ClearLines())

	after := g.Field()
	assert.Equal(t, before-engine.Cols, after.Count())
	assert.Equal(t, engine.Blue, after.At(0, 19))
	assert.Equal(t, engine.Orange, after.At(5, 4))
	for x := range engine.Cols {
		assert.Equal(t, engine.Empty, after.At(x, 0))
	}
}

func TestGameOverWhenSpawnBlocked(t *testing.T) {
	var field engine.Playfield
	for y := range 2 {
		for x := range engine.Cols - 1 {
			field.Set(x, y, engine.Green)
		}
	}

	current := engine.NewPiece(engine.ShapeI, engine.Cyan)
	current.X, current.Y = 0, 10
	g := engine.New(
		engine.WithPlayfield(field),
		engine.WithPieces(current, engine.NewPiece(engine.ShapeO, engine.Yellow)),
	)

	result := g.LockShape()
	require.True(t, result.GameOver)
	require.True(t, g.Over())

	snapshot := g.Field()
	var frame engine.DrawList

	tick := g.Tick(engine.TickInput{Surface: &frame})

	assert.Equal(t, engine.OutcomeOver, tick.Outcome)
	assert.Equal(t, snapshot, g.Field())
	assert.Empty(t, frame.Ops)

	assert.False(t, g.MoveShape(0, 1))
	g.RotateShape()
	assert.True(t, g.LockShape().GameOver)
	assert.Equal(t, snapshot, g.Field())
}

func TestRotateShapeRejectedAtWall(t *testing.T) {
	current := engine.NewPiece(engine.ShapeI, engine.Cyan)
	current.Shape = current.Shape.Rotate()
	current.X, current.Y = 9, 5
	g := engine.New(engine.WithPieces(current, engine.NewPiece(engine.ShapeO, engine.Yellow)))
	require.False(t, g.CheckCollision())

	g.RotateShape()

	assert.Equal(t, current, g.Current(), "rotation must not kick the piece off the wall")
}

func TestRotateShapeAccepted(t *testing.T) {
	g := engine.New(engine.WithPieces(
		engine.NewPiece(engine.ShapeT, engine.Purple),
		engine.NewPiece(engine.ShapeO, engine.Yellow),
	))

	g.RotateShape()

	expected := engine.Shape{
		{false, true},
		{true, true},
		{false, true},
	}
	assert.True(t, expected.Equal(g.Current().Shape), "got %v", g.Current().Shape)
	assert.Equal(t, engine.SpawnX, g.Current().X)
}

func TestRotateShapeFourTimes(t *testing.T) {
	kinds := []engine.ShapeKind{engine.ShapeT, engine.ShapeL, engine.ShapeJ, engine.ShapeS, engine.ShapeZ}
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			current := engine.NewPiece(kind, engine.Blue)
			current.Y = 8
			g := engine.New(engine.WithPieces(current, engine.NewPiece(engine.ShapeO, engine.Yellow)))

			g.RotateShape()
			assert.False(t, current.Shape.Equal(g.Current().Shape), "first rotation was rejected")
			for range 3 {
				g.RotateShape()
			}

			assert.True(t, current.Shape.Equal(g.Current().Shape), "got %v", g.Current().Shape)
			assert.Equal(t, current.X, g.Current().X)
			assert.Equal(t, current.Y, g.Current().Y)
		})
	}
}
