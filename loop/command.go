package loop

import "github.com/plus3/blockfall/engine"

// Command is one discrete player input.
type Command uint8

const (
	Left Command = iota
	Right
	Drop
	Rotate
)

func (c Command) String() string {
	switch c {
	case Left:
		return "left"
	case Right:
		return "right"
	case Drop:
		return "drop"
	case Rotate:
		return "rotate"
	default:
		return "unknown"
	}
}

// Apply performs the single engine operation c maps to.
func (c Command) Apply(g *engine.Game) {
	switch c {
	case Left:
		g.MoveShape(-1, 0)
	case Right:
		g.MoveShape(1, 0)
	case Drop:
		g.MoveShape(0, 1)
	case Rotate:
		g.RotateShape()
	}
}

// Commands buffers inputs and deferred functions raised while a frame's systems run. They
// are applied in order once every system has executed.
type Commands struct {
	inputs []Command
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Push queues an input.
func (c *Commands) Push(cmd Command) {
	c.inputs = append(c.inputs, cmd)
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued inputs.
func (c *Commands) Len() int {
	return len(c.inputs)
}

// Flush applies every queued input to g, runs deferred functions and resets the buffer.
func (c *Commands) Flush(g *engine.Game) {
	for _, cmd := range c.inputs {
		cmd.Apply(g)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.inputs = c.inputs[:0]
	c.defers = c.defers[:0]
}
