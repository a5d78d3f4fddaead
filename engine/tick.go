package engine

// Outcome is what a single Tick did.
type Outcome int

const (
	// OutcomePaused means the tick body was skipped; nothing was drawn or moved.
	OutcomePaused Outcome = iota
	// OutcomeFell means the current piece moved down one row.
	OutcomeFell
	// OutcomeLocked means the current piece could not fall and was locked.
	OutcomeLocked
	// OutcomeOver means the session has ended. The caller should notify the player and stop
	// scheduling ticks.
	OutcomeOver
)

func (o Outcome) String() string {
	switch o {
	case OutcomePaused:
		return "paused"
	case OutcomeFell:
		return "fell"
	case OutcomeLocked:
		return "locked"
	case OutcomeOver:
		return "over"
	default:
		return "unknown"
	}
}

// TickInput carries the per-tick values owned by the caller.
type TickInput struct {
	Paused bool
	// Surface receives the frame drawn before the piece falls. It may be nil.
	Surface Surface
}

type TickResult struct {
	Outcome Outcome
	// Lock is set when Outcome is OutcomeLocked.
	Lock LockResult
}

// Tick advances the session one step: it renders, then moves the current piece down one
// row, locking it when it cannot fall. Paused ticks and ticks of an ended session change
// nothing.
func (g *Game) Tick(in TickInput) TickResult {
	if g.over {
		return TickResult{Outcome: OutcomeOver}
	}
	if in.Paused {
		return TickResult{Outcome: OutcomePaused}
	}

	if in.Surface != nil {
		g.Render(in.Surface)
	}

	if g.MoveShape(0, 1) {
		return TickResult{Outcome: OutcomeFell}
	}

	return TickResult{
		Outcome: OutcomeLocked,
		Lock:    g.LockShape(),
	}
}
