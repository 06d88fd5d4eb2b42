package eval

import (
	"sort"
	"strings"

	"remi/internal/domain"
)

// Group is a subset of a hand's cards. It records the hand positions it was
// built from together with the card values, so a Group never depends on the
// hand staying unchanged. A group may or may not form a meld.
type Group struct {
	pos   [domain.MaxHandSize]uint8
	cards [domain.MaxHandSize]domain.Card
	n     uint8
}

// Len returns the number of cards in the group.
func (g *Group) Len() int { return int(g.n) }

// Card returns the i-th card.
func (g *Group) Card(i int) domain.Card { return g.cards[i] }

// Position returns the hand position of the i-th card.
func (g *Group) Position(i int) int { return int(g.pos[i]) }

// Cards returns a copy of the group's cards.
func (g *Group) Cards() []domain.Card {
	out := make([]domain.Card, g.n)
	copy(out, g.cards[:g.n])
	return out
}

// Positions returns a copy of the group's hand positions.
func (g *Group) Positions() []int {
	out := make([]int, g.n)
	for i := range out {
		out[i] = int(g.pos[i])
	}
	return out
}

func (g *Group) last() domain.Card { return g.cards[g.n-1] }

func (g *Group) push(pos int, c domain.Card) {
	if int(g.n) == domain.MaxHandSize {
		panic("group capacity exceeded")
	}
	g.pos[g.n] = uint8(pos)
	g.cards[g.n] = c
	g.n++
}

// removeAt drops the i-th member, keeping the order of the rest.
func (g *Group) removeAt(i int) (int, domain.Card) {
	pos, c := int(g.pos[i]), g.cards[i]
	copy(g.pos[i:g.n], g.pos[i+1:g.n])
	copy(g.cards[i:g.n], g.cards[i+1:g.n])
	g.n--
	return pos, c
}

// sortCards orders members by canonical index.
func (g *Group) sortCards() {
	sort.Sort(byIndex{g})
}

type byIndex struct{ g *Group }

func (b byIndex) Len() int           { return int(b.g.n) }
func (b byIndex) Less(i, j int) bool { return b.g.cards[i].Less(b.g.cards[j]) }
func (b byIndex) Swap(i, j int) {
	b.g.cards[i], b.g.cards[j] = b.g.cards[j], b.g.cards[i]
	b.g.pos[i], b.g.pos[j] = b.g.pos[j], b.g.pos[i]
}

// IsSingle reports whether the group holds exactly one card.
func (g *Group) IsSingle() bool {
	return g.n == 1
}

// IsQuasiMeld reports whether the group is a two-card same-suit run.
func (g *Group) IsQuasiMeld() bool {
	if g.n != 2 {
		return false
	}
	a, b := g.cards[0], g.cards[1]
	return !a.IsJoker() && a.Suit == b.Suit && a.IsPredecessor(b)
}

// IsMeld reports whether the group is a run-meld or a set-meld.
func (g *Group) IsMeld() bool {
	return g.IsRunMeld() || g.IsSetMeld()
}

// IsRunMeld reports whether the group is at least three cards of one suit,
// each the predecessor of the next.
func (g *Group) IsRunMeld() bool {
	if g.n < 3 {
		return false
	}
	suit := g.cards[0].Suit
	if suit == domain.Joker {
		return false
	}
	for i := 1; i < int(g.n); i++ {
		if g.cards[i].Suit != suit || !g.cards[i-1].IsPredecessor(g.cards[i]) {
			return false
		}
	}
	return true
}

// IsSetMeld reports whether the group is at least three cards of one value in
// pairwise distinct suits.
func (g *Group) IsSetMeld() bool {
	if g.n < 3 || g.cards[0].IsJoker() {
		return false
	}
	var seen [len(domain.Suits)]bool
	v := g.cards[0].Value
	for _, c := range g.cards[:g.n] {
		if c.Value != v || seen[c.Suit] {
			return false
		}
		seen[c.Suit] = true
	}
	return true
}

// isSameValue reports whether every card shares one non-joker value.
func (g *Group) isSameValue() bool {
	if g.n == 0 || g.cards[0].IsJoker() {
		return false
	}
	for _, c := range g.cards[1:g.n] {
		if c.Value != g.cards[0].Value {
			return false
		}
	}
	return true
}

func (g *Group) jokerCount() int {
	n := 0
	for _, c := range g.cards[:g.n] {
		if c.IsJoker() {
			n++
		}
	}
	return n
}

// String renders the group as a bracketed list of cards, e.g. "[[A♣], [2♣]]".
func (g Group) String() string {
	parts := make([]string, g.n)
	for i, c := range g.cards[:g.n] {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Tokens renders the group's cards in the parse grammar.
func (g *Group) Tokens() []string {
	out := make([]string, g.n)
	for i, c := range g.cards[:g.n] {
		out[i] = c.Token()
	}
	return out
}
