package evaluator

import (
	"reflect"
	"testing"

	"github.com/lox/holdemroom/internal/deck"
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

func evaluate(t *testing.T, hole, community string) HandRank {
	t.Helper()
	return Evaluate(mustCards(t, hole), mustCards(t, community))
}

func TestEvaluateCategories(t *testing.T) {
	tests := []struct {
		name      string
		hole      string
		community string
		want      Category
	}{
		{"royal flush", "AsKs", "QsJsTs2h3d", RoyalFlush},
		{"straight flush", "9sKs", "8s7s6s5s2h", StraightFlush},
		{"steel wheel is not royal", "As2s", "3s4s5sKhQd", StraightFlush},
		{"four of a kind", "AsAh", "AdAc2h7s9d", FourOfAKind},
		{"full house", "AsAh", "AdKcKh7s9d", FullHouse},
		{"full house from two trips", "AsAh", "AdKcKhKs9d", FullHouse},
		{"flush", "As2s", "9s7s4sKhQd", Flush},
		{"straight", "9s8h", "7d6c5s2h2d", Straight},
		{"wheel", "As2h", "3d4c5sKhQd", Straight},
		{"broadway", "AsKh", "QdJcTs2h3d", Straight},
		{"three of a kind", "AsAh", "Ad2c7h9s4d", ThreeOfAKind},
		{"two pair", "AsAh", "KdKc7h9s4d", TwoPair},
		{"one pair", "AsAh", "Kd2c7h9s4d", OnePair},
		{"high card", "AsKh", "9d7c5h3s2d", HighCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evaluate(t, tt.hole, tt.community)
			if got.Category != tt.want {
				t.Errorf("category = %v, want %v (best five %v)", got.Category, tt.want, got.BestFive)
			}
			if got.Score != int(got.Category) {
				t.Errorf("score = %d, want %d", got.Score, int(got.Category))
			}
			if len(got.BestFive) != 5 {
				t.Errorf("best five has %d cards", len(got.BestFive))
			}
		})
	}
}

func TestWheelRankedFiveHigh(t *testing.T) {
	wheel := evaluate(t, "As2h", "3d4c5s9h8d")
	six := evaluate(t, "6s2h", "3d4c5sKhQd")

	if wheel.Category != Straight || six.Category != Straight {
		t.Fatalf("categories = %v, %v", wheel.Category, six.Category)
	}
	if wheel.Tiebreaks[0] != 5 {
		t.Errorf("wheel leads with %d, want 5", wheel.Tiebreaks[0])
	}
	if Compare(six, wheel) <= 0 {
		t.Error("6-high straight should beat the wheel")
	}
}

func TestLongRunPicksHighestStraight(t *testing.T) {
	// A-2-3-4-5-6 on the board: the 6-high straight must win out over
	// treating the hand as a wheel.
	got := evaluate(t, "As2h", "3d4c5s6h9d")
	if got.Category != Straight {
		t.Fatalf("category = %v", got.Category)
	}
	if got.Tiebreaks[0] != 6 {
		t.Errorf("straight high = %d, want 6", got.Tiebreaks[0])
	}
}

func TestKickersBreakTies(t *testing.T) {
	a := evaluate(t, "AsAh", "Kd2c7h9s4d") // pair of aces, K-9-7 kickers
	b := evaluate(t, "AdAc", "Qd2c7h9s4d") // pair of aces, Q-9-7 kickers
	if Compare(a, b) <= 0 {
		t.Error("king kicker should beat queen kicker")
	}

	c := evaluate(t, "AsAh", "Kd2c7h9s4d")
	if Compare(a, c) != 0 {
		t.Error("identical hands should tie exactly")
	}
}

func TestFullHouseTiebreaks(t *testing.T) {
	got := evaluate(t, "AsAh", "AdKcKh7s9d")
	if !reflect.DeepEqual(got.Tiebreaks, []int{14, 13}) {
		t.Errorf("tiebreaks = %v, want [14 13]", got.Tiebreaks)
	}
}

func TestTwoPairTiebreaks(t *testing.T) {
	// Three pairs on seven cards: best two play plus the best kicker.
	got := evaluate(t, "AsAh", "KdKc7h7s9d")
	if got.Category != TwoPair {
		t.Fatalf("category = %v", got.Category)
	}
	if !reflect.DeepEqual(got.Tiebreaks, []int{14, 13, 9}) {
		t.Errorf("tiebreaks = %v, want [14 13 9]", got.Tiebreaks)
	}
}

func TestEvaluateFewerThanFiveCards(t *testing.T) {
	got := Evaluate(mustCards(t, "AsKh"), nil)
	if got.Category != HighCard {
		t.Errorf("category = %v, want high card", got.Category)
	}
	if !reflect.DeepEqual(got.Tiebreaks, []int{14, 13}) {
		t.Errorf("tiebreaks = %v", got.Tiebreaks)
	}
}

func TestWinners(t *testing.T) {
	strong := evaluate(t, "AsAh", "AdKcKh7s9d")
	weak := evaluate(t, "2s3h", "AdKcKh7s9d")

	t.Run("single winner", func(t *testing.T) {
		got := Winners([]*HandRank{&weak, &strong, nil})
		if !reflect.DeepEqual(got, []int{1}) {
			t.Errorf("winners = %v, want [1]", got)
		}
	})

	t.Run("tie returns all ascending", func(t *testing.T) {
		a := evaluate(t, "2h3d", "AsKsQsJsTs") // board plays for both
		b := evaluate(t, "4c5c", "AsKsQsJsTs")
		got := Winners([]*HandRank{&a, nil, &b})
		if !reflect.DeepEqual(got, []int{0, 2}) {
			t.Errorf("winners = %v, want [0 2]", got)
		}
	})

	t.Run("all folded", func(t *testing.T) {
		if got := Winners([]*HandRank{nil, nil}); len(got) != 0 {
			t.Errorf("winners = %v, want none", got)
		}
	})
}

func TestEvaluateDeterministic(t *testing.T) {
	rng := randutil.New(99)
	for i := 0; i < 250; i++ {
		d := deck.New(rng)
		d.Shuffle()
		hole := d.Draw(2)
		community := d.Draw(5)

		a := Evaluate(hole, community)
		b := Evaluate(hole, community)
		if Compare(a, b) != 0 || a.Category != b.Category {
			t.Fatalf("evaluation not deterministic: %+v vs %+v", a, b)
		}
	}
}

func TestCompareAntisymmetric(t *testing.T) {
	rng := randutil.New(123)
	for i := 0; i < 250; i++ {
		d := deck.New(rng)
		d.Shuffle()
		community := d.Draw(5)
		a := Evaluate(d.Draw(2), community)
		b := Evaluate(d.Draw(2), community)

		ab, ba := Compare(a, b), Compare(b, a)
		switch {
		case ab > 0 && ba >= 0, ab < 0 && ba <= 0, ab == 0 && ba != 0:
			t.Fatalf("Compare not antisymmetric: %d vs %d", ab, ba)
		}
	}
}
