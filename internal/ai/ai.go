// Package ai implements the scripted opponents. The policy is a cheap
// heuristic over hand strength, pot odds and position rather than any kind
// of solver: it only has to produce plausible, always-legal actions.
package ai

import (
	rand "math/rand/v2"
	"time"

	"github.com/lox/holdemroom/internal/deck"
	"github.com/lox/holdemroom/internal/game"
)

// Decision is a chosen action. RaiseTo is the seat's new total bet for the
// round and is only meaningful when Action is Raise.
type Decision struct {
	Action  game.Action
	RaiseTo int
}

// Decide picks an action for the acting seat. The returned decision is
// always legal for the current state; raise totals are clamped into the
// legal range. The rng drives the policy's bluff and slow-play mixing.
func Decide(st *game.State, seatIdx int, rng *rand.Rand) Decision {
	seat := st.Seat(seatIdx)
	la := st.LegalActions(seatIdx)
	if seat == nil || !la.CanFold {
		return Decision{Action: game.Fold}
	}

	strength := HandStrength(seat.HoleCards, st.Community)
	potOdds := potOdds(st.Pot, la.CallAmount)

	// Position and a little noise keep the table from playing identically
	// every hand.
	jitter := rng.Float64()*0.15 - 0.075
	adjusted := strength + jitter + position(st, seatIdx)*0.05

	if adjusted >= 0.8 {
		if la.CanRaise {
			if adjusted >= 0.9 && rng.Float64() > 0.5 {
				return Decision{Action: game.AllIn}
			}
			mult := 2 + rng.Float64()*2
			raiseTo := st.CurrentBet + int(float64(st.MinRaise)*mult)
			return Decision{Action: game.Raise, RaiseTo: clamp(raiseTo, la.MinRaiseTo, la.MaxRaiseTo)}
		}
		if la.CanCall {
			return Decision{Action: game.Call}
		}
		if la.CanAllIn && !la.CanCheck {
			// Facing a bet that would take the whole stack to match.
			return Decision{Action: game.AllIn}
		}
		if la.CanCheck && rng.Float64() > 0.7 {
			return Decision{Action: game.Check}
		}
	}

	if adjusted >= 0.6 {
		if la.CanCheck {
			if rng.Float64() > 0.5 && la.CanRaise {
				return Decision{Action: game.Raise, RaiseTo: la.MinRaiseTo}
			}
			return Decision{Action: game.Check}
		}
		if la.CanCall && potOdds < adjusted {
			return Decision{Action: game.Call}
		}
		if la.CanRaise && rng.Float64() > 0.7 {
			return Decision{Action: game.Raise, RaiseTo: la.MinRaiseTo}
		}
		if la.CanCall && la.CallAmount < seat.Chips*3/10 {
			return Decision{Action: game.Call}
		}
	}

	if adjusted >= 0.4 {
		if la.CanCheck {
			return Decision{Action: game.Check}
		}
		if la.CanCall && potOdds < adjusted*0.8 && la.CallAmount < seat.Chips*15/100 {
			return Decision{Action: game.Call}
		}
		if la.CanRaise && rng.Float64() > 0.85 {
			return Decision{Action: game.Raise, RaiseTo: la.MinRaiseTo}
		}
	}

	if la.CanCheck {
		return Decision{Action: game.Check}
	}
	if la.CanRaise && rng.Float64() > 0.92 {
		// Pure bluff.
		return Decision{Action: game.Raise, RaiseTo: la.MinRaiseTo}
	}
	if la.CanCall && la.CallAmount <= st.BigBlind && rng.Float64() > 0.3 {
		return Decision{Action: game.Call}
	}
	return Decision{Action: game.Fold}
}

// Delay returns how long a scripted seat pretends to think, between 800ms
// and 1.5s.
func Delay(rng *rand.Rand) time.Duration {
	return 800*time.Millisecond + time.Duration(rng.Float64()*float64(700*time.Millisecond))
}

// HandStrength scores a hand from 0 to 1. Preflop it values pairs, high
// cards, suitedness and connectedness; once community cards arrive it
// re-scores from made hands and flush/straight draws.
func HandStrength(holeCards, community []deck.Card) float64 {
	if len(holeCards) < 2 {
		return 0
	}
	hi, lo := holeCards[0].Value(), holeCards[1].Value()
	if lo > hi {
		hi, lo = lo, hi
	}
	suited := holeCards[0].Suit == holeCards[1].Suit
	gap := hi - lo

	var strength float64
	switch {
	case gap == 0:
		// AA scores 0.9, 22 scores 0.57.
		strength = 0.5 + float64(hi)/14*0.4
	default:
		strength = float64(hi)/14*0.3 + float64(lo)/14*0.1
		if suited {
			strength += 0.1
		}
		if gap <= 2 {
			strength += 0.05 * float64(3-gap)
		}
		if hi == 14 && lo >= 10 {
			strength += 0.15
		}
		if hi == 13 && lo >= 11 {
			strength += 0.1
		}
	}

	if len(community) > 0 {
		all := make([]deck.Card, 0, len(holeCards)+len(community))
		all = append(all, holeCards...)
		all = append(all, community...)

		counts := make(map[int]int)
		for _, c := range all {
			counts[c.Value()]++
		}
		maxCount, pairCount := 0, 0
		for _, n := range counts {
			if n > maxCount {
				maxCount = n
			}
			if n >= 2 {
				pairCount++
			}
		}
		switch {
		case maxCount >= 4:
			strength = 0.95
		case maxCount == 3 && pairCount >= 2:
			strength = 0.9
		case maxCount == 3:
			strength = 0.75
		case pairCount >= 2:
			strength = 0.65
		case pairCount == 1:
			strength = max(strength, 0.5)
		}

		suitCounts := make(map[deck.Suit]int)
		for _, c := range all {
			suitCounts[c.Suit]++
		}
		maxSuit := 0
		for _, n := range suitCounts {
			if n > maxSuit {
				maxSuit = n
			}
		}
		if maxSuit >= 5 {
			strength = max(strength, 0.85)
		} else if maxSuit == 4 {
			strength += 0.1
		}

		if run := longestRun(counts); run >= 5 {
			strength = max(strength, 0.8)
		} else if run == 4 {
			strength += 0.1
		}
	}

	return min(1, max(0, strength))
}

// longestRun is the longest span of consecutive card values present
func longestRun(counts map[int]int) int {
	best, run := 0, 0
	for v := 2; v <= 14; v++ {
		if counts[v] > 0 {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return best
}

// potOdds is the fraction of the final pot the call puts in. 1 means there
// is nothing to call.
func potOdds(pot, callAmount int) float64 {
	if callAmount == 0 {
		return 1
	}
	return float64(callAmount) / float64(pot+callAmount)
}

// position scores seat position from 0 (under the gun) to 1 (button)
func position(st *game.State, seatIdx int) float64 {
	n := len(st.Seats)
	if n < 2 {
		return 0
	}
	distance := (seatIdx - st.Dealer + n) % n
	return float64(distance) / float64(n-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
