package game

import (
	"fmt"
	"strings"

	"github.com/lox/holdemroom/internal/evaluator"
)

// settleShowdown evaluates every remaining hand, finds the winners and
// splits the pot equally among them. An indivisible remainder goes to the
// first winner in seat order.
func (st *State) settleShowdown() {
	st.Phase = Showdown
	st.Acting = -1
	st.RoundComplete = true

	hands := make([]*evaluator.HandRank, len(st.Seats))
	for i, s := range st.Seats {
		if !s.Active || s.Folded {
			continue
		}
		hr := evaluator.Evaluate(s.HoleCards, st.Community)
		s.HandRank = &hr
		hands[i] = &hr
	}

	st.Winners = evaluator.Winners(hands)
	if len(st.Winners) == 0 {
		return
	}

	pot := st.Pot
	st.Pot = 0
	share := pot / len(st.Winners)
	remainder := pot % len(st.Winners)
	for i, w := range st.Winners {
		amount := share
		if i == 0 {
			amount += remainder
		}
		st.Seats[w].Chips += amount
	}

	if len(st.Winners) == 1 {
		w := st.Seats[st.Winners[0]]
		st.Message = fmt.Sprintf("%s wins %d with %s", w.Name, pot, w.HandRank.Category.Name())
	} else {
		names := make([]string, len(st.Winners))
		for i, w := range st.Winners {
			names[i] = st.Seats[w].Name
		}
		st.Message = fmt.Sprintf("Split pot: %s each win %d with %s",
			strings.Join(names, ", "), share, st.Seats[st.Winners[0]].HandRank.Category.Name())
	}
}

// settleFoldOut awards the pot to the last seat standing without an
// evaluation; the folded seats' cards stay hidden.
func (st *State) settleFoldOut() {
	st.Phase = Showdown
	st.Acting = -1
	st.RoundComplete = true

	for i, s := range st.Seats {
		if s.Active && !s.Folded {
			st.Winners = []int{i}
			s.Chips += st.Pot
			st.Message = fmt.Sprintf("%s wins %d (everyone else folded)", s.Name, st.Pot)
			st.Pot = 0
			return
		}
	}
}
