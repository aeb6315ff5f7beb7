package game

import "github.com/lox/holdemroom/internal/deck"

// Snapshot returns a deep copy of the state as seen by observer (a seat
// index, or -1 for a spectator). Other seats' hole cards and hand ranks
// are stripped, except that every seat still in the hand is shown face up
// once the hand reaches showdown. The deck is never part of a snapshot.
func (st *State) Snapshot(observer int) *State {
	cp := *st
	cp.Deck = nil
	cp.Community = append([]deck.Card(nil), st.Community...)
	cp.Winners = append([]int(nil), st.Winners...)

	cp.Seats = make([]*Seat, len(st.Seats))
	for i, s := range st.Seats {
		sc := *s
		sc.HoleCards = append([]deck.Card(nil), s.HoleCards...)
		if i != observer && !st.revealed(s) {
			sc.HoleCards = []deck.Card{}
			sc.HandRank = nil
		}
		cp.Seats[i] = &sc
	}
	return &cp
}

// revealed reports whether a seat's hole cards are public
func (st *State) revealed(s *Seat) bool {
	return st.Phase == Showdown && s.Active && !s.Folded
}
