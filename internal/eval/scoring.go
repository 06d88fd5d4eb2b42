package eval

import "remi/internal/domain"

// Tuning holds the weights of the decomposition score and the joker rule.
type Tuning struct {
	// PartialCardWeight is credited per card of a group that is not a meld.
	PartialCardWeight float64
	// MeldCardWeight is credited per card of a meld.
	MeldCardWeight float64
	// ExtensionWeight scales the odds of drawing a card that extends a meld.
	ExtensionWeight float64
	// JokersWild lets jokers substitute for any card in runs and sets.
	JokersWild bool
}

// DefaultTuning scores partial structure at 0.05 per card, meld cards at 1
// and one unit per expected extending card. Jokers are not wild.
var DefaultTuning = Tuning{
	PartialCardWeight: 0.05,
	MeldCardWeight:    1.0,
	ExtensionWeight:   1.0,
}

// DecompScore is a relative score of a decomposition given the remaining
// deck, using DefaultTuning. A decomposition with a higher score should have
// a better chance to win. Only hands of equal size compare meaningfully.
func DecompScore(p *Partition, d *domain.Deck) float64 {
	return DefaultTuning.DecompScore(p, d)
}

// DecompScore sums the contribution of every group: partial groups earn a
// small amount per card, melds earn per card plus their extension score.
func (t Tuning) DecompScore(p *Partition, d *domain.Deck) float64 {
	score := 0.0
	for i := 0; i < p.Len(); i++ {
		g := p.Group(i)
		if !Classify(g, t.JokersWild).IsMeld() {
			score += t.PartialCardWeight * float64(g.Len())
			continue
		}
		score += t.MeldCardWeight * float64(g.Len())
		score += t.ExtensionScore(g, d)
	}
	return score
}

// ExtensionScore uses DefaultTuning. See Tuning.ExtensionScore.
func ExtensionScore(g *Group, d *domain.Deck) float64 {
	return DefaultTuning.ExtensionScore(g, d)
}

// ExtensionScore is the likelihood of drawing, within a turn horizon, a card
// that extends the meld g. Runs can grow by one card at either end but never
// past the King or below the Ace; sets can grow by any missing suit until all
// four are present. Non-melds score 0.
//
// When jokers are wild, a meld that can still grow also counts the odds of
// drawing a joker.
func (t Tuning) ExtensionScore(g *Group, d *domain.Deck) float64 {
	kind := Classify(g, t.JokersWild)
	if !kind.IsMeld() {
		return 0
	}
	wild := t.JokersWild && g.jokerCount() > 0

	odds := 0.0
	growable := false
	switch kind {
	case KindRunMeld:
		suit, lo, hi := runBounds(g, wild)
		if hi < domain.MaxCardValue {
			odds += d.OddsToDraw(domain.Card{Value: domain.Value(hi + 1), Suit: suit})
			growable = true
		}
		if lo > 1 {
			odds += d.OddsToDraw(domain.Card{Value: domain.Value(lo - 1), Suit: suit})
			growable = true
		}
	case KindSetMeld:
		if g.Len() >= 4 {
			return 0
		}
		for _, s := range MissingSuits(g) {
			odds += d.OddsToDraw(domain.Card{Value: setValue(g), Suit: s})
		}
		growable = true
	}
	if t.JokersWild && growable {
		odds += d.OddsToDraw(domain.JokerCard)
	}
	return t.ExtensionWeight * odds
}

func runBounds(g *Group, wild bool) (domain.Suit, int, int) {
	if wild {
		suit, lo, hi, _ := wildRun(g)
		return suit, lo, hi
	}
	return g.cards[0].Suit, int(g.cards[0].Value), int(g.last().Value)
}

func setValue(g *Group) domain.Value {
	for _, c := range g.cards[:g.n] {
		if !c.IsJoker() {
			return c.Value
		}
	}
	return 0
}

// MissingSuits lists, in canonical order, the regular suits that no
// non-joker card of g holds. For a three-card set it is the one suit that
// would complete it.
func MissingSuits(g *Group) []domain.Suit {
	var present [len(domain.Suits)]bool
	for _, c := range g.cards[:g.n] {
		present[c.Suit] = true
	}
	out := make([]domain.Suit, 0, 4)
	for _, s := range domain.Suits[:domain.Joker] {
		if !present[s] {
			out = append(out, s)
		}
	}
	return out
}

// ScoreHand computes an approximate quality score for a hand against the
// remaining deck using DefaultTuning. The metric is relative: if
// ScoreHand(h1, d) > ScoreHand(h2, d), h1 should have the higher expected
// win rate.
func ScoreHand(h *domain.Hand, d *domain.Deck) float64 {
	return DefaultTuning.ScoreHand(h, d)
}

// ScoreHand scores the optimal decomposition of h against d.
func (t Tuning) ScoreHand(h *domain.Hand, d *domain.Deck) float64 {
	p := t.OptimalDecomposition(h)
	return t.DecompScore(&p, d)
}

// CompareDecompositions returns the signed score difference
// f(first) - f(second) of two decompositions of h given as hand positions.
func CompareDecompositions(h *domain.Hand, first, second [][]int, d *domain.Deck) (float64, error) {
	p1, err := PartitionFromIndices(h, first)
	if err != nil {
		return 0, err
	}
	p2, err := PartitionFromIndices(h, second)
	if err != nil {
		return 0, err
	}
	return DecompScore(&p1, d) - DecompScore(&p2, d), nil
}
