// Package session drives a single offline table: one human in seat 0
// against scripted opponents, with no transport involved. The multiplayer
// equivalent lives in internal/room.
package session

import (
	"io"
	rand "math/rand/v2"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdemroom/internal/ai"
	"github.com/lox/holdemroom/internal/game"
	"github.com/lox/holdemroom/internal/randutil"
)

// HumanSeat is the seat index the human always occupies offline
const HumanSeat = 0

// Config holds configuration for an offline session
type Config struct {
	HumanName  string
	AINames    []string
	Chips      int
	SmallBlind int
	BigBlind   int
	Seed       int64
	Logger     *log.Logger
	Clock      quartz.Clock
}

// Session owns the table state and schedules the scripted seats' turns on
// its clock. All exported methods are safe for concurrent use.
type Session struct {
	mu     sync.Mutex
	state  *game.State
	rng    *rand.Rand
	clock  quartz.Clock
	logger *log.Logger

	onUpdate func(*game.State)

	// gen invalidates scheduled AI turns: a timer that fires after the
	// state has moved on (new hand, human acted out of band) compares its
	// captured generation and gives up.
	gen       int
	aiPending bool
}

// New creates a session. The human sits in seat 0; each AI name takes the
// next seat along.
func New(cfg Config) *Session {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}

	seats := []game.SeatConfig{{Name: cfg.HumanName, Kind: game.Human}}
	for _, name := range cfg.AINames {
		seats = append(seats, game.SeatConfig{Name: name, Kind: game.Scripted})
	}

	rng := randutil.New(cfg.Seed)
	return &Session{
		state:  game.NewTable(seats, cfg.Chips, cfg.SmallBlind, cfg.BigBlind, rng),
		rng:    rng,
		clock:  cfg.Clock,
		logger: cfg.Logger,
	}
}

// OnUpdate registers a callback invoked with a fresh human-view snapshot
// after every state change. Set it before Start.
func (s *Session) OnUpdate(fn func(*game.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = fn
}

// State returns a snapshot of the table as the human sees it
func (s *Session) State() *game.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot(HumanSeat)
}

// Start deals the first hand
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.state.StartHand(); err != nil {
		return err
	}
	s.afterChange()
	return nil
}

// NextHand moves the button and deals again once a hand has finished
func (s *Session) NextHand() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.state.NextHand(); err != nil {
		s.afterChange()
		return err
	}
	s.afterChange()
	return nil
}

// HumanAction applies the human's action. For a raise, raiseTo is the new
// total bet for the round.
func (s *Session) HumanAction(action game.Action, raiseTo int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.state.Apply(HumanSeat, action, raiseTo); err != nil {
		return err
	}
	s.afterChange()
	return nil
}

// afterChange is called with the lock held after every mutation: it bumps
// the generation, notifies the observer and schedules the next scripted
// turn if one is due.
func (s *Session) afterChange() {
	s.gen++
	s.aiPending = false
	s.notify()
	s.scheduleAI()
}

func (s *Session) notify() {
	if s.onUpdate != nil {
		s.onUpdate(s.state.Snapshot(HumanSeat))
	}
}

// scheduleAI arms a think-time timer for the acting seat when it is
// scripted. Lock must be held.
func (s *Session) scheduleAI() {
	if s.aiPending || !s.state.Phase.Betting() {
		return
	}
	seat := s.state.Seat(s.state.Acting)
	if seat == nil || seat.Kind != game.Scripted {
		return
	}

	s.aiPending = true
	gen := s.gen
	seatIdx := s.state.Acting
	s.clock.AfterFunc(ai.Delay(s.rng), func() {
		s.runAI(gen, seatIdx)
	})
}

func (s *Session) runAI(gen, seatIdx int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// The table may have moved on while the timer was pending.
	if gen != s.gen || s.state.Acting != seatIdx {
		return
	}
	s.aiPending = false

	d := ai.Decide(s.state, seatIdx, s.rng)
	if err := s.state.Apply(seatIdx, d.Action, d.RaiseTo); err != nil {
		// The policy promises legal actions; folding is the safe fallback.
		s.logger.Error("ai action rejected", "seat", seatIdx, "action", d.Action, "err", err)
		s.state.ForceFold(seatIdx)
	}
	s.afterChange()
}
