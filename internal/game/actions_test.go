package game

import (
	"testing"
)

func TestLegalActionsFacingBet(t *testing.T) {
	st := newTestTable(t, 2)
	if err := st.StartHand(); err != nil {
		t.Fatal(err)
	}

	// Seat 0 posted the small blind and faces the big blind.
	la := st.LegalActions(0)
	if !la.CanFold || !la.CanCall || la.CanCheck {
		t.Errorf("legal actions = %+v", la)
	}
	if la.CallAmount != 10 {
		t.Errorf("call amount = %d, want 10", la.CallAmount)
	}
	if la.MinRaiseTo != 40 {
		t.Errorf("min raise to = %d, want 40", la.MinRaiseTo)
	}
	if la.MaxRaiseTo != 1000 {
		t.Errorf("max raise to = %d, want 1000", la.MaxRaiseTo)
	}
}

func TestLegalActionsUnopenedPot(t *testing.T) {
	st := newTestTable(t, 2)
	if err := st.StartHand(); err != nil {
		t.Fatal(err)
	}
	if err := st.Apply(0, Call, 0); err != nil {
		t.Fatal(err)
	}

	// Big blind has the option: check or raise, nothing to call.
	la := st.LegalActions(1)
	if !la.CanCheck || la.CanCall {
		t.Errorf("legal actions = %+v", la)
	}
}

func TestLegalActionsForNonActors(t *testing.T) {
	st := newTestTable(t, 3)
	if err := st.StartHand(); err != nil {
		t.Fatal(err)
	}
	if err := st.Apply(0, Fold, 0); err != nil {
		t.Fatal(err)
	}
	if la := st.LegalActions(0); la.CanFold {
		t.Error("folded seat should have no legal actions")
	}
}

func TestTurnOrderEnforced(t *testing.T) {
	st := newTestTable(t, 3)
	if err := st.StartHand(); err != nil {
		t.Fatal(err)
	}
	if err := st.Apply(1, Call, 0); err != ErrNotYourTurn {
		t.Errorf("err = %v, want ErrNotYourTurn", err)
	}
}

func TestCheckRejectedFacingBet(t *testing.T) {
	st := newTestTable(t, 2)
	if err := st.StartHand(); err != nil {
		t.Fatal(err)
	}
	if err := st.Apply(0, Check, 0); err != ErrCannotCheck {
		t.Errorf("err = %v, want ErrCannotCheck", err)
	}
}

func TestRaiseBelowMinimumRejected(t *testing.T) {
	st := newTestTable(t, 2)
	if err := st.StartHand(); err != nil {
		t.Fatal(err)
	}
	// Table bet is 20, min raise 20: 39 is short of 40.
	if err := st.Apply(0, Raise, 39); err != ErrRaiseTooSmall {
		t.Errorf("err = %v, want ErrRaiseTooSmall", err)
	}
	if err := st.Apply(0, Raise, 20); err != ErrRaiseTooSmall {
		t.Errorf("raise-to at the current bet: err = %v, want ErrRaiseTooSmall", err)
	}
}

func TestRaiseBeyondStackRejected(t *testing.T) {
	st := newTestTable(t, 2)
	if err := st.StartHand(); err != nil {
		t.Fatal(err)
	}
	if err := st.Apply(0, Raise, 1200); err != ErrRaiseTooLarge {
		t.Errorf("err = %v, want ErrRaiseTooLarge", err)
	}
}

func TestLegalActionsWholeStackCall(t *testing.T) {
	tests := []struct {
		name  string
		chips int
	}{
		{"call equals the stack", 120}, // 100 behind the blind vs a bet of 100
		{"call exceeds the stack", 50}, // 30 behind vs the same bet
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTestTable(t, 2, 1000, tt.chips)
			if err := st.StartHand(); err != nil {
				t.Fatal(err)
			}
			if err := st.Apply(0, Raise, 120); err != nil {
				t.Fatal(err)
			}

			// Matching would consume the big blind's whole stack: the
			// surface offers fold or all-in, never a plain call.
			la := st.LegalActions(1)
			if la.CanCall {
				t.Error("call offered where it would consume the stack")
			}
			if !la.CanFold || !la.CanAllIn {
				t.Errorf("legal actions = %+v, want fold and all-in", la)
			}
			if la.CanRaise {
				t.Error("raise offered beyond the stack")
			}
		})
	}
}

func TestBigBlindOptionClosesRound(t *testing.T) {
	st := newTestTable(t, 2)
	if err := st.StartHand(); err != nil {
		t.Fatal(err)
	}

	// A limp does not close the round: the big blind still has the option.
	if err := st.Apply(0, Call, 0); err != nil {
		t.Fatal(err)
	}
	if st.Phase != Preflop {
		t.Fatalf("phase advanced early to %v", st.Phase)
	}
	if st.Acting != 1 {
		t.Fatalf("acting = %d, want 1", st.Acting)
	}

	if err := st.Apply(1, Check, 0); err != nil {
		t.Fatal(err)
	}
	if st.Phase != Flop {
		t.Errorf("phase = %v, want flop", st.Phase)
	}
	if len(st.Community) != 3 {
		t.Errorf("community = %d cards, want 3", len(st.Community))
	}
	if st.CurrentBet != 0 {
		t.Errorf("currentBet = %d, want 0 on the new street", st.CurrentBet)
	}
	// Postflop the non-dealer acts first heads-up.
	if st.Acting != 1 {
		t.Errorf("acting = %d, want 1", st.Acting)
	}
}

func TestFullRaiseReopensRound(t *testing.T) {
	st := newTestTable(t, 3)
	if err := st.StartHand(); err != nil {
		t.Fatal(err)
	}

	if err := st.Apply(0, Call, 0); err != nil {
		t.Fatal(err)
	}
	if err := st.Apply(1, Call, 0); err != nil {
		t.Fatal(err)
	}
	if st.Seats[0].LastAction != Call {
		t.Fatal("seat 0 should have acted")
	}

	// Big blind raises: everyone who already acted gets another turn.
	if err := st.Apply(2, Raise, 60); err != nil {
		t.Fatal(err)
	}
	if st.Seats[0].LastAction != ActionNone || st.Seats[1].LastAction != ActionNone {
		t.Error("a full raise should clear the other seats' actions")
	}
	if st.CurrentBet != 60 {
		t.Errorf("currentBet = %d, want 60", st.CurrentBet)
	}
	if st.MinRaise != 40 {
		t.Errorf("minRaise = %d, want 40 (the raise size)", st.MinRaise)
	}
	if st.Phase != Preflop {
		t.Errorf("phase = %v, round must stay open", st.Phase)
	}
	if st.Acting != 0 {
		t.Errorf("acting = %d, want 0", st.Acting)
	}
}

func TestOverBetShoveReopensAction(t *testing.T) {
	st := newTestTable(t, 3, 1000, 1000, 50)
	if err := st.StartHand(); err != nil {
		t.Fatal(err)
	}

	// Seat 0 raises to 40; seat 1 folds.
	if err := st.Apply(0, Raise, 40); err != nil {
		t.Fatal(err)
	}
	if err := st.Apply(1, Fold, 0); err != nil {
		t.Fatal(err)
	}

	// Seat 2 (big blind, 30 behind) shoves to 50: over the table bet but
	// short of the 20 minimum. Anything over the bet reopens the action.
	if err := st.Apply(2, AllIn, 0); err != nil {
		t.Fatal(err)
	}
	if st.CurrentBet != 50 {
		t.Errorf("currentBet = %d, want 50", st.CurrentBet)
	}
	if st.Seats[0].LastAction != ActionNone {
		t.Error("over-bet all-in should clear seat 0's action like any raise")
	}
	if st.LastRaiseSize != 10 {
		t.Errorf("lastRaiseSize = %d, want 10", st.LastRaiseSize)
	}
	// The minimum raise never drops below the big blind.
	if st.MinRaise != 20 {
		t.Errorf("minRaise = %d, want 20", st.MinRaise)
	}
	if st.Acting != 0 {
		t.Errorf("acting = %d, want 0 to call the difference", st.Acting)
	}

	// Seat 0 calls the 10 and the round closes.
	if err := st.Apply(0, Call, 0); err != nil {
		t.Fatal(err)
	}
	if st.Phase == Preflop {
		t.Error("round should have closed after the call")
	}
}

func TestAllInBelowCallIsACall(t *testing.T) {
	st := newTestTable(t, 3, 1000, 1000, 30)
	if err := st.StartHand(); err != nil {
		t.Fatal(err)
	}

	if err := st.Apply(0, Raise, 100); err != nil {
		t.Fatal(err)
	}
	if st.CurrentBet != 100 {
		t.Fatalf("currentBet = %d, want 100", st.CurrentBet)
	}
	if err := st.Apply(1, Fold, 0); err != nil {
		t.Fatal(err)
	}
	// Seat 2 already acted with the blind; a capped call must not hand it
	// another turn.
	if st.Seats[0].LastAction != Raise {
		t.Fatalf("seat 0 lastAction = %v, want raise", st.Seats[0].LastAction)
	}

	// Seat 2 has 10 behind against a bet of 100: all-in without raising.
	if err := st.Apply(2, AllIn, 0); err != nil {
		t.Fatal(err)
	}
	if !st.Seats[2].AllIn {
		t.Error("seat 2 should be all-in")
	}
	if st.Seats[2].TotalBet != 30 {
		t.Errorf("seat 2 totalBet = %d, want 30 (its whole stack)", st.Seats[2].TotalBet)
	}
	// Nobody left to act: board runs out and the hand settles.
	if st.Phase != Showdown {
		t.Errorf("phase = %v, want showdown", st.Phase)
	}
	if len(st.Community) != 5 {
		t.Errorf("community = %d cards, want 5", len(st.Community))
	}
	if st.Pot != 0 {
		t.Errorf("pot = %d after settlement, want 0", st.Pot)
	}
}

func TestFoldToOneEndsHand(t *testing.T) {
	st := newTestTable(t, 2)
	if err := st.StartHand(); err != nil {
		t.Fatal(err)
	}
	if err := st.Apply(0, Fold, 0); err != nil {
		t.Fatal(err)
	}

	if st.Phase != Showdown || !st.RoundComplete {
		t.Errorf("phase = %v roundComplete = %v", st.Phase, st.RoundComplete)
	}
	if len(st.Winners) != 1 || st.Winners[0] != 1 {
		t.Errorf("winners = %v, want [1]", st.Winners)
	}
	// Big blind wins the 30 pot having put in 20.
	if st.Seats[1].Chips != 1010 {
		t.Errorf("winner chips = %d, want 1010", st.Seats[1].Chips)
	}
	if st.Seats[0].Chips != 990 {
		t.Errorf("folder chips = %d, want 990", st.Seats[0].Chips)
	}
	if st.Pot != 0 {
		t.Errorf("pot = %d after fold-out settlement, want 0", st.Pot)
	}
}

func TestForceFoldOutOfTurn(t *testing.T) {
	st := newTestTable(t, 3)
	if err := st.StartHand(); err != nil {
		t.Fatal(err)
	}

	// Seat 1 is not acting; the fold still sticks.
	st.ForceFold(1)
	if !st.Seats[1].Folded {
		t.Error("seat 1 should be folded")
	}
	if st.Acting != 0 {
		t.Errorf("acting = %d, the turn should not move", st.Acting)
	}

	// Folding the acting seat advances the turn.
	st.ForceFold(0)
	if st.Phase != Showdown {
		t.Errorf("phase = %v, want showdown after fold-out", st.Phase)
	}
	if len(st.Winners) != 1 || st.Winners[0] != 2 {
		t.Errorf("winners = %v, want [2]", st.Winners)
	}
}

func TestActionsRejectedAfterShowdown(t *testing.T) {
	st := newTestTable(t, 2)
	if err := st.StartHand(); err != nil {
		t.Fatal(err)
	}
	if err := st.Apply(0, Fold, 0); err != nil {
		t.Fatal(err)
	}
	if err := st.Apply(1, Check, 0); err != ErrNotBettingPhase {
		t.Errorf("err = %v, want ErrNotBettingPhase", err)
	}
}
