package engine_test

import (
	"testing"

	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIOGame() *engine.Game {
	return engine.New(engine.WithPieces(
		engine.NewPiece(engine.ShapeI, engine.Cyan),
		engine.NewPiece(engine.ShapeO, engine.Yellow),
	))
}

func TestRenderDrawsGridThenPieces(t *testing.T) {
	g := newIOGame()
	var frame engine.DrawList

	g.Render(&frame)

	cells := engine.Rows*engine.Cols + 4 + 4
	require.Len(t, frame.Ops, 1+2*cells)
	assert.Equal(t, engine.OpClear, frame.Ops[0].Kind)

	first := frame.Ops[1]
	assert.Equal(t, engine.DrawOp{Kind: engine.OpFill, W: engine.CellSize, H: engine.CellSize, Color: engine.Empty}, first)
	assert.Equal(t, engine.OpStroke, frame.Ops[2].Kind)

	pieceOps := frame.Ops[1+2*engine.Rows*engine.Cols:]
	assert.Equal(t, engine.DrawOp{
		Kind:  engine.OpFill,
		X:     engine.SpawnX * engine.CellSize,
		Y:     0,
		W:     engine.CellSize,
		H:     engine.CellSize,
		Color: engine.Cyan,
	}, pieceOps[0])
	assert.Equal(t, engine.Yellow, pieceOps[8].Color)
}

func TestDrawListReplay(t *testing.T) {
	g := newIOGame()
	var recorded, replayed engine.DrawList

	g.Render(&recorded)
	recorded.Replay(&replayed)

	assert.Equal(t, recorded.Ops, replayed.Ops)

	clone := recorded.Clone()
	recorded.Clear()
	assert.Len(t, recorded.Ops, 1)
	assert.Equal(t, replayed.Ops, clone.Ops)
}

func TestTick(t *testing.T) {
	t.Run("paused tick changes nothing", func(t *testing.T) {
		g := newIOGame()
		var frame engine.DrawList

		result := g.Tick(engine.TickInput{Paused: true, Surface: &frame})

		assert.Equal(t, engine.OutcomePaused, result.Outcome)
		assert.Empty(t, frame.Ops)
		assert.Equal(t, 0, g.Current().Y)
	})

	t.Run("renders before falling", func(t *testing.T) {
		g := newIOGame()
		var frame engine.DrawList

		result := g.Tick(engine.TickInput{Surface: &frame})

		assert.Equal(t, engine.OutcomeFell, result.Outcome)
		assert.Equal(t, 1, g.Current().Y)
		assert.Contains(t, frame.Ops, engine.DrawOp{
			Kind: engine.OpFill, X: 3 * engine.CellSize, Y: 0,
			W: engine.CellSize, H: engine.CellSize, Color: engine.Cyan,
		})
	})

	t.Run("locks on floor", func(t *testing.T) {
		g := newIOGame()

		outcomes := map[engine.Outcome]int{}
		var last engine.TickResult
		for range 20 {
			last = g.Tick(engine.TickInput{})
			outcomes[last.Outcome]++
		}

		assert.Equal(t, 19, outcomes[engine.OutcomeFell])
		assert.Equal(t, 1, outcomes[engine.OutcomeLocked])
		assert.Equal(t, engine.ShapeI, last.Lock.Locked.Kind)
		assert.Equal(t, 19, last.Lock.Locked.Y)
		assert.Equal(t, 4, g.Field().Count())
	})

	t.Run("nil surface", func(t *testing.T) {
		g := newIOGame()
		assert.NotPanics(t, func() { g.Tick(engine.TickInput{}) })
	})
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "locked", engine.OutcomeLocked.String())
	assert.Equal(t, "unknown", engine.Outcome(42).String())
}
