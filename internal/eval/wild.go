package eval

import "remi/internal/domain"

// wildRun checks whether g forms a run when its jokers stand in for missing
// values. It returns the suit and the value range the run covers once the
// leftover jokers have been laid on the high end, then the low end.
func wildRun(g *Group) (suit domain.Suit, lo, hi int, ok bool) {
	if g.n < 3 {
		return 0, 0, 0, false
	}
	var seen [domain.MaxCardValue + 1]bool
	jokers, real := 0, 0
	lo, hi = domain.MaxCardValue+1, 0
	for _, c := range g.cards[:g.n] {
		if c.IsJoker() {
			jokers++
			continue
		}
		if real > 0 && c.Suit != suit {
			return 0, 0, 0, false
		}
		if seen[c.Value] {
			return 0, 0, 0, false
		}
		seen[c.Value] = true
		suit = c.Suit
		real++
		lo = min(lo, int(c.Value))
		hi = max(hi, int(c.Value))
	}
	if real == 0 {
		return 0, 0, 0, false
	}
	spare := jokers - (hi - lo + 1 - real)
	if spare < 0 {
		return 0, 0, 0, false
	}
	for ; spare > 0 && hi < domain.MaxCardValue; spare-- {
		hi++
	}
	for ; spare > 0 && lo > 1; spare-- {
		lo--
	}
	if spare > 0 {
		return 0, 0, 0, false
	}
	return suit, lo, hi, true
}

// wildSet checks whether g forms a set of three or four when its jokers
// stand in for missing suits. It returns the suits held by real cards.
func wildSet(g *Group) (present [len(domain.Suits)]bool, ok bool) {
	if g.n < 3 || g.n > 4 {
		return present, false
	}
	var v domain.Value
	real := 0
	for _, c := range g.cards[:g.n] {
		if c.IsJoker() {
			continue
		}
		if real > 0 && c.Value != v {
			return present, false
		}
		if present[c.Suit] {
			return present, false
		}
		present[c.Suit] = true
		v = c.Value
		real++
	}
	return present, real > 0
}

// Kind classifies a group within a decomposition.
type Kind int

const (
	// KindFragment is a non-meld group of two or more cards that is not a
	// quasi-meld, such as two cards of the same value.
	KindFragment Kind = iota
	KindSingle
	KindQuasiMeld
	KindRunMeld
	KindSetMeld
)

func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindQuasiMeld:
		return "quasi_meld"
	case KindRunMeld:
		return "run_meld"
	case KindSetMeld:
		return "set_meld"
	default:
		return "fragment"
	}
}

// IsMeld reports whether k is a run-meld or a set-meld.
func (k Kind) IsMeld() bool {
	return k == KindRunMeld || k == KindSetMeld
}

// Classify returns the kind of g. Jokers are only treated as wildcards
// when jokersWild is set; otherwise a group containing a joker never melds.
func Classify(g *Group, jokersWild bool) Kind {
	switch {
	case g.IsSingle():
		return KindSingle
	case g.IsQuasiMeld():
		return KindQuasiMeld
	}
	if jokersWild && g.jokerCount() > 0 {
		if _, _, _, ok := wildRun(g); ok {
			return KindRunMeld
		}
		if _, ok := wildSet(g); ok {
			return KindSetMeld
		}
		return KindFragment
	}
	switch {
	case g.IsRunMeld():
		return KindRunMeld
	case g.IsSetMeld():
		return KindSetMeld
	}
	return KindFragment
}
