package loop_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
	"github.com/stretchr/testify/assert"
)

func TestCommandApply(t *testing.T) {
	tests := []struct {
		cmd   loop.Command
		name  string
		dx    int
		dy    int
		shape engine.Shape
	}{
		{cmd: loop.Left, name: "left", dx: -1},
		{cmd: loop.Right, name: "right", dx: 1},
		{cmd: loop.Drop, name: "drop", dy: 1},
		{cmd: loop.Rotate, name: "rotate", shape: engine.ShapeT.Footprint().Rotate()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := newGame()
			tt.cmd.Apply(game)

			current := game.Current()
			assert.Equal(t, engine.SpawnX+tt.dx, current.X)
			assert.Equal(t, engine.SpawnY+tt.dy, current.Y)
			if tt.shape != nil {
				assert.True(t, tt.shape.Equal(current.Shape))
			}
			assert.Equal(t, tt.name, tt.cmd.String())
		})
	}

	assert.Equal(t, "unknown", loop.Command(42).String())
}

func TestCommandFlushOrder(t *testing.T) {
	game := newGame()
	scheduler := loop.NewScheduler(game, config.NewSettings(config.Default()))

	var seen []int
	scheduler.Register(systemFunc(func(frame *loop.Frame) {
		frame.Commands.Push(loop.Right)
		frame.Commands.Defer(func() {
			seen = append(seen, frame.Game.Current().X)
		})
		frame.Commands.Push(loop.Right)

		if frame.Commands.Len() != 2 {
			t.Errorf("expected 2 queued inputs, got %d", frame.Commands.Len())
		}
	}))

	scheduler.Once(0.1)
	scheduler.Once(0.1)

	// deferred functions observe every input of their frame
	assert.Equal(t, []int{engine.SpawnX + 2, engine.SpawnX + 4}, seen)
}

func TestRandomPlayer(t *testing.T) {
	t.Run("queues bounded random inputs", func(t *testing.T) {
		player := &loop.RandomPlayer{Rand: &sequence{values: []int{3, 0, 1, 3}}, MaxInputs: 3}
		scheduler := loop.NewScheduler(newGame(), config.NewSettings(config.Default()))

		var queued int
		scheduler.Register(player)
		scheduler.Register(systemFunc(func(frame *loop.Frame) {
			queued = frame.Commands.Len()
		}))

		scheduler.Once(0.1)
		assert.Equal(t, 3, queued)
	})

	t.Run("idle while paused", func(t *testing.T) {
		settings := config.NewSettings(config.Default())
		settings.SetPaused(true)

		player := &loop.RandomPlayer{Rand: &sequence{values: []int{1}}, MaxInputs: 1}
		scheduler := loop.NewScheduler(newGame(), settings)

		var queued int
		scheduler.Register(player)
		scheduler.Register(systemFunc(func(frame *loop.Frame) {
			queued = frame.Commands.Len()
		}))

		scheduler.Once(0.1)
		assert.Equal(t, 0, queued)
	})

	t.Run("plays a seeded session to the end", func(t *testing.T) {
		game := engine.New(engine.WithSeed(3))
		scheduler := loop.NewScheduler(game, config.NewSettings(config.Default()))
		scheduler.Register(&loop.RandomPlayer{Rand: rand.New(rand.NewPCG(5, 8)), MaxInputs: 2})

		for range 10000 {
			if scheduler.Once(0.1).Outcome == engine.OutcomeOver {
				break
			}
		}
		assert.True(t, game.Over())
	})
}

type sequence struct {
	values []int
	pos    int
}

func (s *sequence) IntN(n int) int {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v % n
}
