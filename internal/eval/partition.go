package eval

import (
	"fmt"
	"sort"
	"strings"

	"remi/internal/domain"
)

// MaxDecompCount is the maximum number of groups in a decomposition.
const MaxDecompCount = 15

// Partition is a set of disjoint Groups covering a Hand. A Partition whose
// groups are only singles, quasi-melds or melds is called a decomposition.
//
// The partition keeps its own copy of the hand it was built from, so later
// changes to the caller's Hand are never observed.
type Partition struct {
	hand   domain.Hand
	groups [MaxDecompCount]Group
	n      int
}

func newPartition(h *domain.Hand) Partition {
	return Partition{hand: *h}
}

// Hand returns the hand snapshot the partition covers.
func (p *Partition) Hand() domain.Hand { return p.hand }

// Len returns the number of groups.
func (p *Partition) Len() int { return p.n }

// Group returns a pointer to the i-th group.
func (p *Partition) Group(i int) *Group { return &p.groups[i] }

// Groups returns a copy of the groups.
func (p *Partition) Groups() []Group {
	out := make([]Group, p.n)
	copy(out, p.groups[:p.n])
	return out
}

func (p *Partition) push(g Group) {
	if p.n == MaxDecompCount {
		panic("partition capacity exceeded")
	}
	p.groups[p.n] = g
	p.n++
}

// compact removes empty groups, keeping order.
func (p *Partition) compact() {
	k := 0
	for i := 0; i < p.n; i++ {
		if p.groups[i].n == 0 {
			continue
		}
		p.groups[k] = p.groups[i]
		k++
	}
	for i := k; i < p.n; i++ {
		p.groups[i] = Group{}
	}
	p.n = k
}

// Canonical returns a copy with cards inside each group and the groups
// themselves ordered by canonical index. Two partitions that are equal as
// set-of-sets have equal canonical forms.
func (p Partition) Canonical() Partition {
	for i := 0; i < p.n; i++ {
		p.groups[i].sortCards()
	}
	groups := p.groups[:p.n]
	sort.SliceStable(groups, func(i, j int) bool {
		a, b := &groups[i], &groups[j]
		for k := 0; k < a.Len() && k < b.Len(); k++ {
			if a.cards[k] != b.cards[k] {
				return a.cards[k].Less(b.cards[k])
			}
		}
		return a.Len() < b.Len()
	})
	return p
}

// Equivalent reports whether p and o group the same cards, ignoring the order
// of groups and of cards within groups.
func (p Partition) Equivalent(o Partition) bool {
	return p.Canonical().String() == o.Canonical().String()
}

// String renders the partition as nested bracketed lists, e.g.
// "[[[A♣], [2♣], [3♣]], [[5♥]]]".
func (p Partition) String() string {
	parts := make([]string, p.n)
	for i := 0; i < p.n; i++ {
		parts[i] = p.groups[i].String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Tokens renders every group in the parse grammar.
func (p *Partition) Tokens() [][]string {
	out := make([][]string, p.n)
	for i := 0; i < p.n; i++ {
		out[i] = p.groups[i].Tokens()
	}
	return out
}

// PartitionSuit divides a hand into one group per non-empty suit, in the
// order clubs, diamonds, hearts, spades, joker. Cards keep their hand order.
func PartitionSuit(h *domain.Hand) Partition {
	p := newPartition(h)
	for _, suit := range domain.Suits {
		var g Group
		for i := 0; i < h.Len(); i++ {
			if c := h.At(i); c.Suit == suit {
				g.push(i, c)
			}
		}
		if g.n != 0 {
			p.push(g)
		}
	}
	return p
}

// PartitionFromIndices builds a partition from explicit lists of hand
// positions. Every position must be used exactly once and no list may be
// empty; otherwise ErrGroupIndex is returned.
func PartitionFromIndices(h *domain.Hand, groups [][]int) (Partition, error) {
	p := newPartition(h)
	if len(groups) > MaxDecompCount {
		return p, fmt.Errorf("%d groups: %w", len(groups), domain.ErrGroupIndex)
	}
	var used [domain.MaxHandSize]bool
	for _, idx := range groups {
		if len(idx) == 0 {
			return p, fmt.Errorf("empty group: %w", domain.ErrGroupIndex)
		}
		var g Group
		for _, i := range idx {
			if i < 0 || i >= h.Len() {
				return p, fmt.Errorf("position %d outside hand of %d: %w", i, h.Len(), domain.ErrGroupIndex)
			}
			if used[i] {
				return p, fmt.Errorf("position %d used twice: %w", i, domain.ErrGroupIndex)
			}
			used[i] = true
			g.push(i, h.At(i))
		}
		p.push(g)
	}
	for i := 0; i < h.Len(); i++ {
		if !used[i] {
			return p, fmt.Errorf("position %d not covered: %w", i, domain.ErrGroupIndex)
		}
	}
	return p, nil
}
