package config

import (
	"sync/atomic"
	"time"
)

// Settings holds values changed by frontends and read by the loop once per tick. It is safe
// for concurrent use.
type Settings struct {
	speed  atomic.Value
	paused atomic.Bool
}

// Snapshot is a consistent copy of Settings for one tick.
type Snapshot struct {
	Speed  Speed
	Paused bool
}

// Delay returns the delay of the snapshot's speed.
func (s Snapshot) Delay() time.Duration {
	return s.Speed.Delay()
}

func NewSettings(cfg Config) *Settings {
	s := &Settings{}
	s.SetSpeed(cfg.Speed)
	return s
}

func (s *Settings) SetSpeed(speed Speed) {
	s.speed.Store(speed)
}

func (s *Settings) Speed() Speed {
	speed, _ := s.speed.Load().(Speed)
	return speed
}

func (s *Settings) SetPaused(paused bool) {
	s.paused.Store(paused)
}

// TogglePause flips the pause flag and returns the new value.
func (s *Settings) TogglePause() bool {
	for {
		old := s.paused.Load()
		if s.paused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (s *Settings) Paused() bool {
	return s.paused.Load()
}

func (s *Settings) Snapshot() Snapshot {
	return Snapshot{
		Speed:  s.Speed(),
		Paused: s.Paused(),
	}
}
