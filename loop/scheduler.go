package loop

import (
	"context"
	"reflect"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
	"github.com/rs/zerolog"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// View is an immutable picture of a session published after every step and every input.
type View struct {
	Session string
	Frame   *engine.DrawList
	Current engine.Piece
	Next    engine.Piece
	Score   int
	Lines   int
	Over    bool
	Paused  bool
	Speed   config.Speed
	Stats   *SchedulerStats
}

// Summary describes a finished session.
type Summary struct {
	Session string
	Score   int
	Lines   int
	Ticks   int64
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithLogger sets the logger used for session events.
func WithLogger(logger zerolog.Logger) SchedulerOption {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// WithName labels the session in logs, views and summaries.
func WithName(name string) SchedulerOption {
	return func(s *Scheduler) {
		s.name = name
	}
}

// OnView registers a function called with a fresh View on the scheduler's goroutine.
func OnView(fn func(View)) SchedulerOption {
	return func(s *Scheduler) {
		s.onView = fn
	}
}

// OnGameOver registers a function called exactly once when the session ends.
func OnGameOver(fn func(Summary)) SchedulerOption {
	return func(s *Scheduler) {
		s.onGameOver = fn
	}
}

// Scheduler owns one session and runs the engine tick followed by every registered system.
// A Scheduler is driven from a single goroutine: either by calling Once directly or through
// Run.
type Scheduler struct {
	name        string
	game        *engine.Game
	settings    *config.Settings
	systems     []System
	systemStats []*systemStatsInternal
	draw        engine.DrawList
	ticks       int64
	ended       bool

	logger     zerolog.Logger
	onView     func(View)
	onGameOver func(Summary)
}

// NewScheduler creates a scheduler for game. The engine tick is always the first system.
func NewScheduler(game *engine.Game, settings *config.Settings, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		game:     game,
		settings: settings,
		systems:  make([]System, 0),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Register(&tickSystem{})
	return s
}

// Register appends a system. Systems execute in registration order.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Name returns the session label.
func (s *Scheduler) Name() string {
	return s.name
}

// Once executes all registered systems once with the given delta time, then flushes the
// commands they queued. The first step that finds the session over invokes the game-over
// hook; later steps do not.
func (s *Scheduler) Once(dt float64) engine.TickResult {
	frame := newFrame(dt, s.game, s.settings.Snapshot(), &s.draw)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	frame.Commands.Flush(s.game)
	s.ticks++

	if frame.Result.Lock.GameOver {
		s.logger.Debug().Str("session", s.name).Msg("spawn blocked")
	}

	s.publish(frame.Settings)

	if frame.Result.Outcome == engine.OutcomeOver {
		s.end()
	}
	return frame.Result
}

// Apply performs an input between two steps. Inputs are ignored while paused or once the
// session has ended.
func (s *Scheduler) Apply(cmd Command) {
	snapshot := s.settings.Snapshot()
	if snapshot.Paused || s.game.Over() {
		return
	}

	cmd.Apply(s.game)
	s.game.Render(&s.draw)
	s.publish(snapshot)
}

// Run steps the session until ctx is cancelled or the session ends. The first step happens
// immediately; each following step is scheduled once, after the delay of the speed current
// at that moment, so speed changes apply to the next step. Pausing suppresses the engine
// tick but never the rescheduling. Inputs are applied between steps on the calling
// goroutine.
func (s *Scheduler) Run(ctx context.Context, inputs <-chan Command) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd, ok := <-inputs:
			if !ok {
				inputs = nil
				continue
			}
			s.Apply(cmd)
		case now := <-timer.C:
			dt := now.Sub(last).Seconds()
			last = now

			if s.Once(dt).Outcome == engine.OutcomeOver {
				return nil
			}

			timer.Reset(s.settings.Speed().Delay())
		}
	}
}

func (s *Scheduler) end() {
	if s.ended {
		return
	}
	s.ended = true

	summary := Summary{
		Session: s.name,
		Score:   s.game.Score(),
		Lines:   s.game.Lines(),
		Ticks:   s.ticks,
	}

	s.logger.Info().
		Str("session", s.name).
		Int("score", summary.Score).
		Int("lines", summary.Lines).
		Int64("ticks", summary.Ticks).
		Msg("game over")

	if s.onGameOver != nil {
		s.onGameOver(summary)
	}
}

func (s *Scheduler) publish(settings config.Snapshot) {
	if s.onView == nil {
		return
	}

	s.onView(View{
		Session: s.name,
		Frame:   s.draw.Clone(),
		Current: s.game.Current(),
		Next:    s.game.Next(),
		Score:   s.game.Score(),
		Lines:   s.game.Lines(),
		Over:    s.game.Over(),
		Paused:  settings.Paused,
		Speed:   settings.Speed,
		Stats:   s.GetStats(),
	})
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration, minDuration := time.Duration(0), time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}

// tickSystem advances the engine and records the result on the frame.
type tickSystem struct{}

func (t *tickSystem) Execute(frame *Frame) {
	frame.Result = frame.Game.Tick(engine.TickInput{
		Paused:  frame.Settings.Paused,
		Surface: frame.Draw,
	})
}
