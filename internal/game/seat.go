package game

import (
	"github.com/lox/holdemroom/internal/deck"
	"github.com/lox/holdemroom/internal/evaluator"
)

// SeatKind distinguishes a human-controlled seat from a scripted one
type SeatKind int

const (
	Human SeatKind = iota
	Scripted
)

func (k SeatKind) String() string {
	if k == Scripted {
		return "ai"
	}
	return "human"
}

// MarshalJSON encodes the seat kind as its wire name
func (k SeatKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// UnmarshalJSON decodes a wire seat kind
func (k *SeatKind) UnmarshalJSON(data []byte) error {
	if string(data) == `"ai"` {
		*k = Scripted
	} else {
		*k = Human
	}
	return nil
}

// Seat is one position at the table. Seats persist across hands (chips
// carry over); the per-hand fields are reset by StartHand.
type Seat struct {
	ID         int                 `json:"id"`
	Name       string              `json:"name"`
	Kind       SeatKind            `json:"type"`
	Chips      int                 `json:"chips"`
	HoleCards  []deck.Card         `json:"cards"`
	CurrentBet int                 `json:"currentBet"`
	TotalBet   int                 `json:"totalBet"`
	Folded     bool                `json:"isFolded"`
	AllIn      bool                `json:"isAllIn"`
	Dealer     bool                `json:"isDealer"`
	SmallBlind bool                `json:"isSmallBlind"`
	BigBlind   bool                `json:"isBigBlind"`
	Active     bool                `json:"isActive"`
	LastAction Action              `json:"lastAction"`
	HandRank   *evaluator.HandRank `json:"handRank,omitempty"`

	// SittingOut marks a seat whose player has left the table: it is dealt
	// out of every later hand even while it still holds chips.
	SittingOut bool `json:"-"`
}

// CanAct reports whether the seat may still take actions this round
func (s *Seat) CanAct() bool {
	return s.Active && !s.Folded && !s.AllIn
}

// resetForHand clears the per-hand state. Chips and identity persist.
// A busted seat sits out the hand as folded.
func (s *Seat) resetForHand() {
	s.HoleCards = nil
	s.CurrentBet = 0
	s.TotalBet = 0
	s.Folded = !s.Active
	s.AllIn = false
	s.Dealer = false
	s.SmallBlind = false
	s.BigBlind = false
	s.LastAction = ActionNone
	s.HandRank = nil
}

// commit moves chips from the seat's stack into its current bet, capped at
// the stack, and returns the amount actually moved. The seat goes all-in
// when its stack empties.
func (s *Seat) commit(amount int) int {
	if amount > s.Chips {
		amount = s.Chips
	}
	if amount < 0 {
		panic("game: negative chip commitment")
	}
	s.Chips -= amount
	s.CurrentBet += amount
	s.TotalBet += amount
	if s.Chips == 0 {
		s.AllIn = true
	}
	return amount
}
