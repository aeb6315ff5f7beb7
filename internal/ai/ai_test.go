package ai

import (
	"testing"
	"time"

	"github.com/lox/holdemroom/internal/deck"
	"github.com/lox/holdemroom/internal/game"
	"github.com/lox/holdemroom/internal/randutil"
)

func mustCards(t *testing.T, s string) []deck.Card {
	t.Helper()
	cards, err := deck.ParseCards(s)
	if err != nil {
		t.Fatal(err)
	}
	return cards
}

// TestDecisionsAlwaysLegal plays whole hands with every seat driven by the
// policy and requires the engine to accept every action it produces.
func TestDecisionsAlwaysLegal(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		rng := randutil.New(seed)
		seats := []game.SeatConfig{
			{Name: "A", Kind: game.Scripted},
			{Name: "B", Kind: game.Scripted},
			{Name: "C", Kind: game.Scripted},
			{Name: "D", Kind: game.Scripted},
		}
		st := game.NewTable(seats, 1000, 10, 20, rng)
		if err := st.StartHand(); err != nil {
			t.Fatal(err)
		}

		for steps := 0; st.Phase.Betting(); steps++ {
			if steps > 500 {
				t.Fatalf("seed %d: hand did not terminate", seed)
			}
			d := Decide(st, st.Acting, rng)
			if err := st.Apply(st.Acting, d.Action, d.RaiseTo); err != nil {
				t.Fatalf("seed %d: policy produced illegal action %v (raiseTo %d): %v",
					seed, d.Action, d.RaiseTo, err)
			}
		}
	}
}

// TestStrongHandShovesWholeStackCall pins the response to a bet that
// would consume the seat's entire stack: no plain call is on offer, and
// a strong hand moves in rather than folding.
func TestStrongHandShovesWholeStackCall(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := randutil.New(seed)
		seats := []game.SeatConfig{
			{Name: "A", Kind: game.Scripted},
			{Name: "B", Kind: game.Scripted},
		}
		st := game.NewTable(seats, 1000, 10, 20, rng)
		st.Seats[1].Chips = 100
		if err := st.StartHand(); err != nil {
			t.Fatal(err)
		}
		if err := st.Apply(0, game.Raise, 200); err != nil {
			t.Fatal(err)
		}
		st.Seats[1].HoleCards = mustCards(t, "AsAh")

		d := Decide(st, 1, rng)
		if d.Action != game.AllIn {
			t.Fatalf("seed %d: action = %v, want all-in with aces facing a stack-sized bet", seed, d.Action)
		}
		if err := st.Apply(1, d.Action, d.RaiseTo); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
	}
}

func TestHandStrengthBounds(t *testing.T) {
	rng := randutil.New(7)
	for i := 0; i < 200; i++ {
		d := deck.New(rng)
		d.Shuffle()
		s := HandStrength(d.Draw(2), d.Draw(5))
		if s < 0 || s > 1 {
			t.Fatalf("strength %f out of [0,1]", s)
		}
	}
}

func TestHandStrengthOrdering(t *testing.T) {
	tests := []struct {
		name             string
		stronger, weaker string
	}{
		{"aces over deuces", "AsAh", "2s2h"},
		{"pair over unpaired", "2s2h", "7s2d"},
		{"suited over offsuit", "AsKs", "AhKd"},
		{"ace king over seven deuce", "AsKd", "7s2d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := HandStrength(mustCards(t, tt.stronger), nil)
			b := HandStrength(mustCards(t, tt.weaker), nil)
			if a <= b {
				t.Errorf("%s (%f) should outrank %s (%f)", tt.stronger, a, tt.weaker, b)
			}
		})
	}
}

func TestHandStrengthImprovesWithBoard(t *testing.T) {
	hole := mustCards(t, "7s2d")
	before := HandStrength(hole, nil)
	// Board gives seven-deuce two pair.
	after := HandStrength(hole, mustCards(t, "7d2cKh"))
	if after <= before {
		t.Errorf("strength %f should rise above %f after pairing the board", after, before)
	}
}

func TestDelayBounds(t *testing.T) {
	rng := randutil.New(11)
	for i := 0; i < 100; i++ {
		d := Delay(rng)
		if d < 800*time.Millisecond || d > 1500*time.Millisecond {
			t.Fatalf("delay %v outside 800ms-1.5s", d)
		}
	}
}
