package evaluator

import (
	"sort"

	"github.com/lox/holdemroom/internal/deck"
)

// Category is one of the ten canonical hand categories. The numeric value
// (1-10) is the category score used for comparison.
type Category int

const (
	HighCard Category = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the wire name of the category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "high-card"
	case OnePair:
		return "one-pair"
	case TwoPair:
		return "two-pair"
	case ThreeOfAKind:
		return "three-of-a-kind"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full-house"
	case FourOfAKind:
		return "four-of-a-kind"
	case StraightFlush:
		return "straight-flush"
	case RoyalFlush:
		return "royal-flush"
	default:
		return "unknown"
	}
}

// Name returns a human-readable name for display
func (c Category) Name() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// HandRank is the evaluated strength of a hand. Two ranks of the same
// category are ordered by lexicographic comparison of Tiebreaks; the
// meaning of each position depends on the category (e.g. full house:
// [triple value, pair value]).
type HandRank struct {
	Category  Category    `json:"category"`
	Score     int         `json:"score"`
	Tiebreaks []int       `json:"tiebreaks"`
	BestFive  []deck.Card `json:"bestFive"`
}

// Evaluate returns the best 5-card ranking achievable from 2 hole cards and
// 0-5 community cards. With fewer than 5 total cards it degrades to a high
// card ranking over whatever cards exist.
func Evaluate(holeCards, community []deck.Card) HandRank {
	all := make([]deck.Card, 0, len(holeCards)+len(community))
	all = append(all, holeCards...)
	all = append(all, community...)

	sortByValueDesc(all)

	if len(all) < 5 {
		return HandRank{
			Category:  HighCard,
			Score:     int(HighCard),
			Tiebreaks: values(all),
			BestFive:  all,
		}
	}

	groups := groupByValue(all)

	// Category priority is fixed: straight flush before quads before full
	// house before flush before straight, regardless of discovery order.
	if sf := findStraightFlush(all); sf != nil {
		cat := StraightFlush
		if sf[0].Value() == int(deck.Ace) {
			cat = RoyalFlush
		}
		return rank(cat, values(sf), sf)
	}

	if len(groups) > 0 && groups[0].count == 4 {
		quad := groups[0]
		kicker := topExcluding(all, 1, quad.value)
		best := append(append([]deck.Card{}, quad.cards...), kicker...)
		return rank(FourOfAKind, []int{quad.value, kicker[0].Value()}, best)
	}

	if len(groups) > 1 && groups[0].count == 3 && groups[1].count >= 2 {
		trips := groups[0]
		pair := groups[1].cards[:2]
		best := append(append([]deck.Card{}, trips.cards...), pair...)
		return rank(FullHouse, []int{trips.value, groups[1].value}, best)
	}

	if flush := findFlush(all); flush != nil {
		return rank(Flush, values(flush), flush)
	}

	if straight := findStraight(all); straight != nil {
		return rank(Straight, values(straight), straight)
	}

	if len(groups) > 0 && groups[0].count == 3 {
		trips := groups[0]
		kickers := topExcluding(all, 2, trips.value)
		best := append(append([]deck.Card{}, trips.cards...), kickers...)
		return rank(ThreeOfAKind, append([]int{trips.value}, values(kickers)...), best)
	}

	if len(groups) > 1 && groups[0].count == 2 && groups[1].count == 2 {
		high, low := groups[0], groups[1]
		kicker := topExcluding(all, 1, high.value, low.value)
		best := append(append([]deck.Card{}, high.cards...), low.cards...)
		best = append(best, kicker...)
		return rank(TwoPair, []int{high.value, low.value, kicker[0].Value()}, best)
	}

	if len(groups) > 0 && groups[0].count == 2 {
		pair := groups[0]
		kickers := topExcluding(all, 3, pair.value)
		best := append(append([]deck.Card{}, pair.cards...), kickers...)
		return rank(OnePair, append([]int{pair.value}, values(kickers)...), best)
	}

	best := all[:5]
	return rank(HighCard, values(best), best)
}

// Compare orders two hand ranks: positive if a beats b, negative if b beats
// a, zero for an exact tie. Category score decides first; equal categories
// fall back to element-wise tiebreak comparison.
func Compare(a, b HandRank) int {
	if a.Score != b.Score {
		return a.Score - b.Score
	}
	n := len(a.Tiebreaks)
	if len(b.Tiebreaks) < n {
		n = len(b.Tiebreaks)
	}
	for i := 0; i < n; i++ {
		if a.Tiebreaks[i] != b.Tiebreaks[i] {
			return a.Tiebreaks[i] - b.Tiebreaks[i]
		}
	}
	return 0
}

// Winners returns the indices of the equal-highest hands. A nil entry means
// that seat is out of contention (folded). Ties are fully supported; the
// returned indices are in ascending order.
func Winners(hands []*HandRank) []int {
	var best *HandRank
	var winners []int

	for i, hand := range hands {
		if hand == nil {
			continue
		}
		if best == nil {
			best = hand
			winners = []int{i}
			continue
		}
		switch cmp := Compare(*hand, *best); {
		case cmp > 0:
			best = hand
			winners = []int{i}
		case cmp == 0:
			winners = append(winners, i)
		}
	}

	return winners
}

func rank(cat Category, tiebreaks []int, best []deck.Card) HandRank {
	five := make([]deck.Card, len(best))
	copy(five, best)
	return HandRank{Category: cat, Score: int(cat), Tiebreaks: tiebreaks, BestFive: five}
}

type valueGroup struct {
	value int
	count int
	cards []deck.Card
}

// groupByValue buckets cards by rank value, ordered by count descending then
// value descending. The full-house and two-pair picks rely on this order.
func groupByValue(cards []deck.Card) []valueGroup {
	byValue := make(map[int][]deck.Card)
	for _, c := range cards {
		byValue[c.Value()] = append(byValue[c.Value()], c)
	}

	groups := make([]valueGroup, 0, len(byValue))
	for v, cs := range byValue {
		groups = append(groups, valueGroup{value: v, count: len(cs), cards: cs})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].value > groups[j].value
	})
	return groups
}

// findFlush returns the top five cards of a suit holding at least five
// cards, or nil.
func findFlush(cards []deck.Card) []deck.Card {
	bySuit := make(map[deck.Suit][]deck.Card)
	for _, c := range cards {
		bySuit[c.Suit] = append(bySuit[c.Suit], c)
	}
	for _, suited := range bySuit {
		if len(suited) >= 5 {
			sortByValueDesc(suited)
			return suited[:5]
		}
	}
	return nil
}

// findStraight returns five cards of consecutive distinct values, scanning
// from the highest. The wheel (A-2-3-4-5) counts the ace low and is
// returned as a 5-high straight.
func findStraight(cards []deck.Card) []deck.Card {
	seen := make(map[int]deck.Card)
	var unique []int
	for _, c := range cards {
		if _, ok := seen[c.Value()]; !ok {
			seen[c.Value()] = c
			unique = append(unique, c.Value())
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(unique)))

	for i := 0; i+4 < len(unique); i++ {
		if unique[i]-unique[i+4] == 4 {
			run := make([]deck.Card, 5)
			for j := 0; j < 5; j++ {
				run[j] = seen[unique[i+j]]
			}
			return run
		}
	}

	// Wheel: ace plays low, ranked below every other straight.
	if _, ok := seen[int(deck.Ace)]; ok {
		wheel := make([]deck.Card, 0, 5)
		for _, v := range []int{5, 4, 3, 2, int(deck.Ace)} {
			c, ok := seen[v]
			if !ok {
				return nil
			}
			wheel = append(wheel, c)
		}
		return wheel
	}

	return nil
}

// findStraightFlush checks each suit with five or more cards for a straight.
func findStraightFlush(cards []deck.Card) []deck.Card {
	bySuit := make(map[deck.Suit][]deck.Card)
	for _, c := range cards {
		bySuit[c.Suit] = append(bySuit[c.Suit], c)
	}
	for _, suited := range bySuit {
		if len(suited) >= 5 {
			if straight := findStraight(suited); straight != nil {
				return straight
			}
		}
	}
	return nil
}

// topExcluding returns the n highest cards whose values are not in exclude.
func topExcluding(sorted []deck.Card, n int, exclude ...int) []deck.Card {
	excluded := make(map[int]bool, len(exclude))
	for _, v := range exclude {
		excluded[v] = true
	}
	out := make([]deck.Card, 0, n)
	for _, c := range sorted {
		if excluded[c.Value()] {
			continue
		}
		out = append(out, c)
		if len(out) == n {
			break
		}
	}
	return out
}

func values(cards []deck.Card) []int {
	vs := make([]int, len(cards))
	for i, c := range cards {
		vs[i] = c.Value()
	}
	return vs
}

func sortByValueDesc(cards []deck.Card) {
	sort.Slice(cards, func(i, j int) bool { return cards[i].Value() > cards[j].Value() })
}
