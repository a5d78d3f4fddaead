package loop

import "github.com/plus3/blockfall/engine"

// RandomPlayer queues up to MaxInputs random commands on every unpaused step.
type RandomPlayer struct {
	Rand      engine.Rand
	MaxInputs int
}

func (p *RandomPlayer) Execute(frame *Frame) {
	if frame.Settings.Paused || frame.Game.Over() {
		return
	}

	n := p.MaxInputs
	if n <= 0 {
		n = 1
	}

	for range p.Rand.IntN(n + 1) {
		frame.Commands.Push(Command(p.Rand.IntN(int(Rotate) + 1)))
	}
}
