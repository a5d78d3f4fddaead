package loop

import (
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
)

// Frame is what every system sees during one scheduler step.
type Frame struct {
	DeltaTime float64
	Game      *engine.Game
	Settings  config.Snapshot
	Draw      *engine.DrawList
	Result    engine.TickResult
	Commands  *Commands
}

func newFrame(dt float64, game *engine.Game, settings config.Snapshot, draw *engine.DrawList) *Frame {
	return &Frame{
		DeltaTime: dt,
		Game:      game,
		Settings:  settings,
		Draw:      draw,
		Commands:  newCommands(),
	}
}

// System represents a behavior executed once per scheduler step, after the engine tick.
// Systems can keep their own state between frames.
type System interface {
	Execute(frame *Frame)
}
