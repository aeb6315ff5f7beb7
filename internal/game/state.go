package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/holdemroom/internal/deck"
)

// State is the authoritative state of one table. It is created once and
// mutated in place across hands: seats (and their chips) persist while the
// per-hand fields are reset by each StartHand.
//
// State is not safe for concurrent use; the owning driver serializes access.
type State struct {
	Seats         []*Seat     `json:"players"`
	Community     []deck.Card `json:"communityCards"`
	Pot           int         `json:"pot"`
	CurrentBet    int         `json:"currentBet"`
	Phase         Phase       `json:"phase"`
	Acting        int         `json:"currentPlayerIndex"`
	Dealer        int         `json:"dealerIndex"`
	SmallBlind    int         `json:"smallBlindAmount"`
	BigBlind      int         `json:"bigBlindAmount"`
	Winners       []int       `json:"winners"`
	Message       string      `json:"message"`
	RoundComplete bool        `json:"roundComplete"`
	MinRaise      int         `json:"minRaise"`
	LastRaiseSize int         `json:"lastRaiseAmount"`
	ActionCount   int         `json:"actionCount"`

	// The deck is never serialized: a snapshot carrying undealt cards
	// would leak every future street to the client.
	Deck *deck.Deck `json:"-"`
}

// SeatConfig describes one seat at table creation
type SeatConfig struct {
	Name string
	Kind SeatKind
}

// NewTable creates a table in the waiting phase. Every seat starts with
// chips chips; blinds are fixed for the lifetime of the table.
func NewTable(seats []SeatConfig, chips, smallBlind, bigBlind int, rng *rand.Rand) *State {
	st := &State{
		Phase:      Waiting,
		SmallBlind: smallBlind,
		BigBlind:   bigBlind,
		MinRaise:   bigBlind,
		Deck:       deck.New(rng),
		Winners:    []int{},
		Acting:     -1,
	}
	for i, sc := range seats {
		st.Seats = append(st.Seats, &Seat{
			ID:     i,
			Name:   sc.Name,
			Kind:   sc.Kind,
			Chips:  chips,
			Active: true,
		})
	}
	return st
}

// StartHand begins the first hand without moving the dealer button.
// Subsequent hands go through NextHand.
func (st *State) StartHand() error {
	return st.startHand(false)
}

// NextHand rotates the dealer button past busted seats and begins a new
// hand. The previous hand must have completed.
func (st *State) NextHand() error {
	if st.Phase != Waiting && !st.RoundComplete {
		return ErrHandInProgress
	}
	return st.startHand(true)
}

func (st *State) startHand(rotate bool) error {
	// A seat with no chips can no longer post a blind; it stays in the
	// list but sits out every subsequent hand. Seats whose player has
	// left the table are dealt around the same way.
	for _, s := range st.Seats {
		s.Active = s.Chips > 0 && !s.SittingOut
	}

	if st.activeCount() < 2 {
		st.Phase = Ended
		st.Message = "Game over: not enough players with chips"
		return ErrNotEnoughPlayers
	}

	for _, s := range st.Seats {
		s.resetForHand()
	}
	st.Community = nil
	st.Pot = 0
	st.Winners = []int{}
	st.RoundComplete = false
	st.ActionCount = 0

	if rotate {
		st.Dealer = st.nextActive(st.Dealer)
	} else if !st.Seats[st.Dealer].Active {
		st.Dealer = st.nextActive(st.Dealer)
	}
	st.Seats[st.Dealer].Dealer = true

	// Heads-up the dealer posts the small blind and acts first preflop;
	// otherwise the blinds sit left of the button.
	var sbIdx, bbIdx int
	if st.activeCount() == 2 {
		sbIdx = st.Dealer
		bbIdx = st.nextActive(sbIdx)
	} else {
		sbIdx = st.nextActive(st.Dealer)
		bbIdx = st.nextActive(sbIdx)
	}
	st.Seats[sbIdx].SmallBlind = true
	st.Seats[bbIdx].BigBlind = true

	sbPosted := st.Seats[sbIdx].commit(st.SmallBlind)
	bbPosted := st.Seats[bbIdx].commit(st.BigBlind)
	st.Pot = sbPosted + bbPosted
	st.CurrentBet = bbPosted
	st.MinRaise = st.BigBlind
	st.LastRaiseSize = st.BigBlind

	st.Deck.Reset()
	for _, s := range st.Seats {
		if s.Active {
			s.HoleCards = st.Deck.Draw(2)
		}
	}

	st.Phase = Preflop
	st.Acting = st.nextActionable(bbIdx)
	if st.Acting == -1 {
		// Both blinds went all-in posting; nothing left to decide.
		st.runOutBoard()
		return nil
	}
	st.Message = fmt.Sprintf("%s to act", st.Seats[st.Acting].Name)
	return nil
}

// activeCount is the number of seats still holding chips this hand
func (st *State) activeCount() int {
	n := 0
	for _, s := range st.Seats {
		if s.Active {
			n++
		}
	}
	return n
}

// contenders is the number of non-folded seats (all-in seats included)
func (st *State) contenders() int {
	n := 0
	for _, s := range st.Seats {
		if s.Active && !s.Folded {
			n++
		}
	}
	return n
}

// nextActive returns the first active seat strictly after from, wrapping
func (st *State) nextActive(from int) int {
	for i := 1; i <= len(st.Seats); i++ {
		idx := (from + i) % len(st.Seats)
		if st.Seats[idx].Active {
			return idx
		}
	}
	return -1
}

// nextActionable returns the first seat after from that can still act
// (active, not folded, not all-in), or -1 if none remain.
func (st *State) nextActionable(from int) int {
	for i := 1; i <= len(st.Seats); i++ {
		idx := (from + i) % len(st.Seats)
		if st.Seats[idx].CanAct() {
			return idx
		}
	}
	return -1
}

// actionableCount is the number of seats that can still act this round
func (st *State) actionableCount() int {
	n := 0
	for _, s := range st.Seats {
		if s.CanAct() {
			n++
		}
	}
	return n
}

// Seat returns the seat at idx, or nil if out of range
func (st *State) Seat(idx int) *Seat {
	if idx < 0 || idx >= len(st.Seats) {
		return nil
	}
	return st.Seats[idx]
}
