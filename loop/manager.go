package loop

import (
	"context"
	"errors"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
	"github.com/rs/zerolog"
)

// InputBuffer is how many inputs a session queues before new ones are dropped.
const InputBuffer = 16

// Session is one running scheduler bound to the game it was created for.
type Session struct {
	name   string
	inputs chan Command
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// Name returns the generated session label.
func (s *Session) Name() string {
	return s.name
}

// Done is closed once the session's loop has returned.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Err returns the error the loop stopped with. It is only valid after Done is closed.
func (s *Session) Err() error {
	return s.err
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithGameOptions passes options to engine.New for every session.
func WithGameOptions(opts ...engine.Option) ManagerOption {
	return func(m *Manager) {
		m.gameOpts = append(m.gameOpts, opts...)
	}
}

// WithSchedulerOptions passes options to NewScheduler for every session.
func WithSchedulerOptions(opts ...SchedulerOption) ManagerOption {
	return func(m *Manager) {
		m.schedulerOpts = append(m.schedulerOpts, opts...)
	}
}

// WithSystems registers the systems returned by fn on every new session's scheduler.
func WithSystems(fn func() []System) ManagerOption {
	return func(m *Manager) {
		m.systems = fn
	}
}

// WithManagerLogger sets the logger for session lifecycle events.
func WithManagerLogger(logger zerolog.Logger) ManagerOption {
	return func(m *Manager) {
		m.logger = logger
	}
}

// Manager owns the current session. Starting a new session stops the previous one and waits
// for its loop to return, so a replaced session never ticks again. Scheduler hooks run on
// the session goroutine and must not call back into the Manager.
type Manager struct {
	settings      *config.Settings
	gameOpts      []engine.Option
	schedulerOpts []SchedulerOption
	systems       func() []System
	logger        zerolog.Logger

	mu      sync.Mutex
	current *Session
}

func NewManager(settings *config.Settings, opts ...ManagerOption) *Manager {
	m := &Manager{
		settings: settings,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start replaces the current session with a new one running until ctx is cancelled, the
// session ends or it is replaced.
func (m *Manager) Start(ctx context.Context) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if previous := m.current; previous != nil {
		m.stop(previous)
		m.logger.Info().Str("session", previous.name).Msg("session replaced")
	}

	runCtx, cancel := context.WithCancel(ctx)
	session := &Session{
		name:   petname.Generate(2, "-"),
		inputs: make(chan Command, InputBuffer),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	opts := append([]SchedulerOption{
		WithName(session.name),
		WithLogger(m.logger),
	}, m.schedulerOpts...)

	scheduler := NewScheduler(engine.New(m.gameOpts...), m.settings, opts...)
	if m.systems != nil {
		for _, system := range m.systems() {
			scheduler.Register(system)
		}
	}

	go func() {
		defer close(session.done)
		defer cancel()

		err := scheduler.Run(runCtx, session.inputs)
		if errors.Is(err, context.Canceled) {
			err = nil
		}
		session.err = err
	}()

	m.current = session
	m.logger.Info().Str("session", session.name).Msg("session started")
	return session
}

// Send routes cmd to the current session. It reports false when there is no session or the
// session's input buffer is full.
func (m *Manager) Send(cmd Command) bool {
	m.mu.Lock()
	session := m.current
	m.mu.Unlock()

	if session == nil {
		return false
	}

	select {
	case <-session.done:
		return false
	default:
	}

	select {
	case session.inputs <- cmd:
		return true
	default:
		m.logger.Debug().Str("session", session.name).Stringer("command", cmd).Msg("input dropped")
		return false
	}
}

// Current returns the running or most recently finished session, or nil.
func (m *Manager) Current() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Stop ends the current session and waits for its loop to return.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		m.stop(m.current)
	}
}

func (m *Manager) stop(session *Session) {
	session.cancel()
	<-session.done
}
