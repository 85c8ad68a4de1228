// Package session owns a single game and serializes every operation on it.
// Commands and gravity ticks are funnelled through one mailbox so that no two
// game operations ever run concurrently and a command queued before a tick is
// always applied before that tick.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/blockfall/tetris"
	"go.uber.org/zap"
)

// DefaultInterval is the gravity tick period.
const DefaultInterval = 500 * time.Millisecond

var (
	// ErrSessionClosed is returned when submitting to a stopped session.
	ErrSessionClosed = errors.New("session: closed")
	// ErrUnknownCommand is returned for a command id outside the known set.
	ErrUnknownCommand = errors.New("session: unknown command")
	// ErrGameOver is returned when submitting to a finished game. Use Apply(Restart)
	// to start a new one.
	ErrGameOver = errors.New("session: game over")
)

// Factory builds a fresh game. It is called once by New and again on every Restart.
type Factory func() (*tetris.Game, error)

// State is an immutable view of the game published after every command and tick.
type State struct {
	// Seq increases by one with every published state.
	Seq uint64

	Board     *tetris.Snapshot
	Active    tetris.Piece
	HasActive bool
	GhostY    int
	Next      tetris.Type

	Score int
	Lines int
	Level int
	Over  bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithInterval sets the gravity tick period used by Run.
func WithInterval(d time.Duration) Option {
	return func(s *Session) {
		s.interval = d
	}
}

// WithObserver registers fn to receive every published state. It is called with
// the session lock held and must not call back into the session.
func WithObserver(fn func(State)) Option {
	return func(s *Session) {
		s.observer = fn
	}
}

// WithQueueSize sets how many submitted commands may wait for the run loop.
func WithQueueSize(n int) Option {
	return func(s *Session) {
		s.queueSize = n
	}
}

// Session owns one game at a time and is the only path through which it is mutated.
type Session struct {
	id        uuid.UUID
	factory   Factory
	logger    *zap.SugaredLogger
	interval  time.Duration
	observer  func(State)
	queueSize int

	mu    sync.Mutex
	game  *tetris.Game
	seq   uint64
	stats *statsRecorder

	queue    chan Command
	state    atomic.Pointer[State]
	done     chan struct{}
	stopOnce sync.Once
}

// New creates a session and its first game.
func New(factory Factory, opts ...Option) (*Session, error) {
	s := &Session{
		id:        uuid.New(),
		factory:   factory,
		logger:    zap.NewNop().Sugar(),
		interval:  DefaultInterval,
		queueSize: 64,
		stats:     newStatsRecorder(),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.interval <= 0 {
		return nil, fmt.Errorf("session: non-positive tick interval %s", s.interval)
	}
	s.queue = make(chan Command, max(s.queueSize, 1))
	s.logger = s.logger.With("session", s.id.String())

	game, err := factory()
	if err != nil {
		return nil, fmt.Errorf("session: create game: %w", err)
	}
	s.game = game
	s.publish()
	return s, nil
}

// ID returns the unique session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Interval returns the gravity tick period.
func (s *Session) Interval() time.Duration {
	return s.interval
}

// State returns the most recently published state.
func (s *Session) State() State {
	return *s.state.Load()
}

// Stats returns statistics about command execution.
func (s *Session) Stats() *Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.snapshot()
}

// Submit queues cmd for the run loop. Queued commands are applied in order,
// and always before the next gravity tick. Nothing is queued once the game is
// over, since Run no longer reads the queue.
func (s *Session) Submit(ctx context.Context, cmd Command) error {
	if !cmd.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownCommand, uint32(cmd))
	}

	select {
	case <-s.done:
		return ErrSessionClosed
	default:
	}
	if s.State().Over {
		return ErrGameOver
	}

	select {
	case s.queue <- cmd:
		return nil
	case <-s.done:
		return ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Apply executes cmd immediately and reports whether it changed the game.
func (s *Session) Apply(cmd Command) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.execute(cmd)
}

// Tick applies every queued command, then one gravity step. It is one frame of
// the run loop and may be called directly when driving the session by hand.
func (s *Session) Tick() {
	s.drain()
	s.Apply(Step)
}

func (s *Session) drain() {
	for {
		select {
		case cmd := <-s.queue:
			s.Apply(cmd)
		default:
			return
		}
	}
}

// Run applies submitted commands as they arrive and steps the game every
// interval. It returns nil when the game is over or Stop is called, and the
// context error when ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Infow("session running", "interval", s.interval)

	for !s.State().Over {
		select {
		case <-ctx.Done():
			s.logger.Infow("session cancelled", "score", s.State().Score)
			return ctx.Err()
		case <-s.done:
			s.logger.Info("session stopped")
			return nil
		case cmd := <-s.queue:
			s.Apply(cmd)
		case <-ticker.C:
			s.Tick()
		}
	}
	return nil
}

// Stop ends Run and rejects further submissions. It is safe to call more than once.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
}

func (s *Session) execute(cmd Command) bool {
	start := time.Now()

	var applied bool
	if cmd == Restart {
		applied = s.restart()
	} else {
		wasOver := s.game.IsOver()
		score := s.game.Score()
		applied = cmd.apply(s.game)
		if !wasOver && (cmd == Drop || (cmd == Step && !applied)) {
			s.logLock(score)
		}
	}

	s.stats.record(cmd, applied, time.Since(start))
	s.publish()
	return applied
}

// restart swaps in a new game and discards commands queued for the old one.
func (s *Session) restart() bool {
	game, err := s.factory()
	if err != nil {
		s.logger.Errorw("restart failed", "error", err)
		return false
	}
	discarded := s.discardQueued()
	s.logger.Infow("game restarted", "previousScore", s.game.Score(), "discarded", discarded)
	s.game = game
	return true
}

func (s *Session) discardQueued() int {
	n := 0
	for {
		select {
		case <-s.queue:
			n++
		default:
			return n
		}
	}
}

func (s *Session) logLock(scoreBefore int) {
	if cleared := s.game.LastClear(); cleared > 0 {
		s.logger.Debugw("rows cleared",
			"rows", cleared,
			"points", s.game.Score()-scoreBefore,
			"lines", s.game.Lines(),
			"level", s.game.Level(),
		)
	}
	if s.game.IsOver() {
		s.logger.Infow("game over",
			"score", s.game.Score(),
			"lines", s.game.Lines(),
			"level", s.game.Level(),
		)
	}
}

func (s *Session) publish() {
	s.seq++
	active, ok := s.game.Active()
	st := State{
		Seq:       s.seq,
		Board:     s.game.CurrentState(),
		Active:    active,
		HasActive: ok,
		GhostY:    s.game.GhostY(),
		Next:      s.game.Next(),
		Score:     s.game.Score(),
		Lines:     s.game.Lines(),
		Level:     s.game.Level(),
		Over:      s.game.IsOver(),
	}
	s.state.Store(&st)
	if s.observer != nil {
		s.observer(st)
	}
}
