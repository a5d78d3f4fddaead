// Package stats counts what happens in running sessions and renders text reports from the
// counts.
package stats

import (
	"slices"
	"sync"

	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
)

// KindCount is the number of locked pieces of one shape kind.
type KindCount struct {
	Kind  engine.ShapeKind
	Count int64
}

// ClearCount is how many locks cleared exactly Size rows at once.
type ClearCount struct {
	Size  int
	Count int64
}

// Snapshot is a consistent copy of a Tracker's counters.
type Snapshot struct {
	Ticks       int64
	PausedTicks int64
	Locks       int64
	Lines       int64
	GameOvers   int64
	Pieces      []KindCount
	Clears      []ClearCount
}

// Tracker is a loop.System counting engine outcomes. It may be shared by several schedulers
// and read from other goroutines.
type Tracker struct {
	mu          sync.Mutex
	ticks       int64
	pausedTicks int64
	locks       int64
	lines       int64
	gameOvers   int64
	pieces      *intmap.Map[engine.ShapeKind, int64]
	clears      *intmap.Map[int, int64]
}

var _ loop.System = (*Tracker)(nil)

func NewTracker() *Tracker {
	return &Tracker{
		pieces: intmap.New[engine.ShapeKind, int64](len(engine.ShapeKinds)),
		clears: intmap.New[int, int64](4),
	}
}

func (t *Tracker) Execute(frame *loop.Frame) {
	t.Observe(frame.Result)
}

// Observe records one tick result.
func (t *Tracker) Observe(result engine.TickResult) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch result.Outcome {
	case engine.OutcomePaused:
		t.pausedTicks++
		return
	case engine.OutcomeOver:
		return
	}

	t.ticks++
	if result.Outcome != engine.OutcomeLocked {
		return
	}

	lock := result.Lock
	t.locks++
	increment(t.pieces, lock.Locked.Kind)
	if lock.Cleared > 0 {
		t.lines += int64(lock.Cleared)
		increment(t.clears, lock.Cleared)
	}
	if lock.GameOver {
		t.gameOvers++
	}
}

func increment[K intmap.IntKey](m *intmap.Map[K, int64], key K) {
	n, _ := m.Get(key)
	m.Put(key, n+1)
}

// Snapshot copies the current counters. Pieces and Clears are sorted by key.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Snapshot{
		Ticks:       t.ticks,
		PausedTicks: t.pausedTicks,
		Locks:       t.locks,
		Lines:       t.lines,
		GameOvers:   t.gameOvers,
		Pieces:      make([]KindCount, 0, t.pieces.Len()),
		Clears:      make([]ClearCount, 0, t.clears.Len()),
	}

	for kind, count := range t.pieces.All() {
		s.Pieces = append(s.Pieces, KindCount{Kind: kind, Count: count})
	}
	for size, count := range t.clears.All() {
		s.Clears = append(s.Clears, ClearCount{Size: size, Count: count})
	}

	slices.SortFunc(s.Pieces, func(a, b KindCount) int { return int(a.Kind) - int(b.Kind) })
	slices.SortFunc(s.Clears, func(a, b ClearCount) int { return a.Size - b.Size })
	return s
}

// Reset zeroes every counter.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.ticks, t.pausedTicks, t.locks, t.lines, t.gameOvers = 0, 0, 0, 0, 0
	t.pieces.Clear()
	t.clears.Clear()
}
