package game

import "fmt"

// LegalActions describes what the acting seat may do. Raise amounts are
// totals for the round, not increments: MinRaiseTo is the smallest legal
// new table bet and MaxRaiseTo is reached by going all-in.
type LegalActions struct {
	CanFold    bool
	CanCheck   bool
	CanCall    bool
	CanRaise   bool
	CanAllIn   bool
	CallAmount int
	MinRaiseTo int
	MaxRaiseTo int
}

// LegalActions computes the action set for the seat. The zero value is
// returned when the seat cannot act at all (wrong phase, folded, all-in).
func (st *State) LegalActions(seatIdx int) LegalActions {
	seat := st.Seat(seatIdx)
	if seat == nil || !st.Phase.Betting() || !seat.CanAct() {
		return LegalActions{}
	}

	la := LegalActions{
		CanFold:  true,
		CanAllIn: seat.Chips > 0,
	}

	// A call that would consume the whole stack is offered as all-in only.
	toCall := st.CurrentBet - seat.CurrentBet
	if toCall <= 0 {
		la.CanCheck = true
	} else if toCall < seat.Chips {
		la.CanCall = true
		la.CallAmount = toCall
	}

	maxTo := seat.CurrentBet + seat.Chips
	minTo := st.CurrentBet + st.MinRaise
	if maxTo > st.CurrentBet {
		la.CanRaise = true
		la.MinRaiseTo = minTo
		la.MaxRaiseTo = maxTo
		if la.MinRaiseTo > maxTo {
			// Only a short all-in is possible.
			la.MinRaiseTo = maxTo
		}
	}

	return la
}

// Apply validates and applies one action by the acting seat. For Raise,
// raiseTo is the seat's new total bet for the round; the other actions
// ignore it. On success the turn advances, and the street or the whole
// hand may complete as a consequence.
func (st *State) Apply(seatIdx int, action Action, raiseTo int) error {
	seat := st.Seat(seatIdx)
	if seat == nil {
		return ErrNoSuchSeat
	}
	if !st.Phase.Betting() {
		return ErrNotBettingPhase
	}
	if seatIdx != st.Acting {
		return ErrNotYourTurn
	}
	if !seat.CanAct() {
		return ErrCannotAct
	}

	switch action {
	case Fold:
		seat.Folded = true
		seat.LastAction = Fold
		st.Message = fmt.Sprintf("%s folds", seat.Name)

	case Check:
		if st.CurrentBet > seat.CurrentBet {
			return ErrCannotCheck
		}
		seat.LastAction = Check
		st.Message = fmt.Sprintf("%s checks", seat.Name)

	case Call:
		toCall := st.CurrentBet - seat.CurrentBet
		if toCall <= 0 {
			return ErrNothingToCall
		}
		moved := seat.commit(toCall)
		st.Pot += moved
		seat.LastAction = Call
		if seat.AllIn {
			st.Message = fmt.Sprintf("%s calls all-in with %d", seat.Name, moved)
		} else {
			st.Message = fmt.Sprintf("%s calls %d", seat.Name, moved)
		}

	case Raise:
		if err := st.applyRaise(seat, raiseTo); err != nil {
			return err
		}

	case AllIn:
		if seat.Chips == 0 {
			return ErrCannotAct
		}
		shoveTo := seat.CurrentBet + seat.Chips
		if shoveTo > st.CurrentBet {
			if err := st.applyRaise(seat, shoveTo); err != nil {
				return err
			}
		} else {
			moved := seat.commit(seat.Chips)
			st.Pot += moved
			seat.LastAction = AllIn
			st.Message = fmt.Sprintf("%s is all-in for %d", seat.Name, seat.TotalBet)
		}

	default:
		return fmt.Errorf("unsupported action %q", action)
	}

	st.ActionCount++
	st.afterAction(seatIdx)
	return nil
}

// applyRaise moves the table bet to raiseTo. Any bet that goes over the
// table bet reopens the round for the seats that already acted; only an
// all-in at or below the table bet (handled by the caller) is a capped
// call. A shove may fall short of the minimum raise.
func (st *State) applyRaise(seat *Seat, raiseTo int) error {
	if raiseTo <= st.CurrentBet {
		return ErrRaiseTooSmall
	}
	delta := raiseTo - seat.CurrentBet
	if delta > seat.Chips {
		return ErrRaiseTooLarge
	}
	isShove := delta == seat.Chips
	raiseSize := raiseTo - st.CurrentBet
	if raiseSize < st.MinRaise && !isShove {
		return ErrRaiseTooSmall
	}

	moved := seat.commit(delta)
	st.Pot += moved
	st.CurrentBet = seat.CurrentBet

	st.LastRaiseSize = raiseSize
	st.MinRaise = max(raiseSize, st.BigBlind)
	for _, other := range st.Seats {
		if other != seat && other.CanAct() {
			other.LastAction = ActionNone
		}
	}
	st.ActionCount = 0

	if seat.AllIn {
		seat.LastAction = AllIn
		st.Message = fmt.Sprintf("%s raises all-in to %d", seat.Name, seat.CurrentBet)
	} else {
		seat.LastAction = Raise
		st.Message = fmt.Sprintf("%s raises to %d", seat.Name, seat.CurrentBet)
	}
	return nil
}

// ForceFold folds a seat out of turn, used when a player disconnects or
// runs out their turn clock. A no-op once the seat is already out of the
// hand or the hand is not in a betting phase.
func (st *State) ForceFold(seatIdx int) {
	seat := st.Seat(seatIdx)
	if seat == nil || !st.Phase.Betting() || seat.Folded || !seat.Active {
		return
	}
	wasActing := st.Acting == seatIdx
	seat.Folded = true
	seat.LastAction = Fold
	st.Message = fmt.Sprintf("%s folds", seat.Name)

	if wasActing {
		st.ActionCount++
		st.afterAction(seatIdx)
		return
	}
	if st.contenders() == 1 {
		st.settleFoldOut()
	}
}

// afterAction decides what follows a completed action: the hand ends when
// one contender remains, the street ends when all bets are matched, or the
// turn simply passes on.
func (st *State) afterAction(seatIdx int) {
	if st.contenders() == 1 {
		st.settleFoldOut()
		return
	}
	if st.roundComplete() {
		st.advancePhase()
		return
	}
	next := st.nextActionable(seatIdx)
	if next == -1 {
		// Everyone left in the hand is all-in.
		st.runOutBoard()
		return
	}
	st.Acting = next
}

// roundComplete reports whether every seat that can still act has both
// acted since the last full raise and matched the table bet.
func (st *State) roundComplete() bool {
	for _, s := range st.Seats {
		if !s.CanAct() {
			continue
		}
		if s.LastAction == ActionNone {
			return false
		}
		if s.CurrentBet < st.CurrentBet {
			return false
		}
	}
	return true
}

// advancePhase closes the current street and opens the next one. Per-round
// bets reset; postflop action starts left of the button. With fewer than
// two seats able to act there is no more betting, so the remaining streets
// run out to showdown.
func (st *State) advancePhase() {
	st.CurrentBet = 0
	st.MinRaise = st.BigBlind
	st.LastRaiseSize = st.BigBlind
	st.ActionCount = 0
	for _, s := range st.Seats {
		s.CurrentBet = 0
		if s.CanAct() {
			s.LastAction = ActionNone
		}
	}

	switch st.Phase {
	case Preflop:
		st.Phase = Flop
		st.Community = append(st.Community, st.Deck.Draw(3)...)
	case Flop:
		st.Phase = Turn
		st.Community = append(st.Community, st.Deck.Draw(1)...)
	case Turn:
		st.Phase = River
		st.Community = append(st.Community, st.Deck.Draw(1)...)
	case River:
		st.settleShowdown()
		return
	}

	if st.actionableCount() < 2 {
		st.runOutBoard()
		return
	}
	st.Acting = st.nextActionable(st.Dealer)
	st.Message = fmt.Sprintf("%s to act", st.Seats[st.Acting].Name)
}

// runOutBoard deals any remaining community cards and goes straight to
// showdown. Reached when all contenders are all-in (or only one seat can
// still act and every bet is matched).
func (st *State) runOutBoard() {
	st.Acting = -1
	for len(st.Community) < 5 {
		need := 5 - len(st.Community)
		if len(st.Community) == 0 && need >= 3 {
			st.Community = append(st.Community, st.Deck.Draw(3)...)
		} else {
			st.Community = append(st.Community, st.Deck.Draw(1)...)
		}
	}
	st.settleShowdown()
}
