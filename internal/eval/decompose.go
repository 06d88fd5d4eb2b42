package eval

import "remi/internal/domain"

// NaiveDecomposition is a simple, suboptimal partition that groups each
// suit's cards into maximal ascending runs. The hand is expected to be
// sorted. Jokers stay in their own groups.
//
// It is used to bootstrap OptimalDecomposition.
func NaiveDecomposition(h *domain.Hand) Partition {
	suits := PartitionSuit(h)
	decomp := newPartition(h)
	for i := 0; i < suits.Len(); i++ {
		sg := suits.Group(i)
		var current Group
		for k := 0; k < sg.Len(); k++ {
			c := sg.Card(k)
			if current.n > 0 && !current.last().IsPredecessor(c) {
				decomp.push(current)
				current = Group{}
			}
			current.push(sg.Position(k), c)
		}
		if current.n > 0 {
			decomp.push(current)
		}
	}
	return decomp
}

// OptimalDecomposition refines the naive decomposition of h with the
// default tuning. See Tuning.Optimize.
func OptimalDecomposition(h *domain.Hand) Partition {
	return DefaultTuning.OptimalDecomposition(h)
}

// OptimalDecomposition refines the naive decomposition of h.
func (t Tuning) OptimalDecomposition(h *domain.Hand) Partition {
	return t.Optimize(NaiveDecomposition(h))
}

// Optimize improves a decomposition in three greedy passes:
//
//  1. same-value singletons are merged into one group;
//  2. same-value fragments borrow the first or last card of runs of four or
//     more to become set-melds, repeated until nothing changes;
//  3. with JokersWild, each free joker completes or extends a group.
//
// It does not break quasi-melds and does not search globally. Running it on
// its own output returns an equivalent partition.
func (t Tuning) Optimize(p Partition) Partition {
	mergeSingleNumbers(&p, t.JokersWild)
	for borrowRunEdges(&p) {
	}
	if t.JokersWild {
		placeJokers(&p)
	}
	return p
}

// mergeSingleNumbers merges every singleton group into the first singleton
// of the same value, so {[5c], [5h], [5s]} becomes {[5c, 5h, 5s]}. Groups of
// two or more cards are left alone.
func mergeSingleNumbers(p *Partition, skipJokers bool) {
	for x := 0; x < p.n; x++ {
		gx := &p.groups[x]
		if !gx.IsSingle() || (skipJokers && gx.cards[0].IsJoker()) {
			continue
		}
		v := gx.cards[0].Value
		for y := x + 1; y < p.n; y++ {
			gy := &p.groups[y]
			if gy.IsSingle() && gy.cards[0].Value == v {
				pos, c := gy.removeAt(0)
				gx.push(pos, c)
			}
		}
	}
	p.compact()
}

// edge is a boundary card of a run-meld that can be given away.
type edge struct {
	group int
	first bool
}

// borrowRunEdges looks for a non-meld group of one value and distinct suits
// that can become a set-meld by taking boundary cards from runs that remain
// melds afterwards. It performs at most one completion per group and reports
// whether anything changed.
func borrowRunEdges(p *Partition) bool {
	changed := false
	for x := 0; x < p.n; x++ {
		frag := &p.groups[x]
		if frag.IsMeld() || !frag.isSameValue() || !distinctSuits(frag) {
			continue
		}
		v := frag.cards[0].Value
		need := 3 - frag.Len()

		var taken [len(domain.Suits)]bool
		for _, c := range frag.cards[:frag.n] {
			taken[c.Suit] = true
		}
		edges := make([]edge, 0, need)
		for y := 0; y < p.n && len(edges) < need; y++ {
			run := &p.groups[y]
			if y == x || run.Len() < 4 || !run.IsRunMeld() {
				continue
			}
			if first := run.cards[0]; first.Value == v && !taken[first.Suit] {
				taken[first.Suit] = true
				edges = append(edges, edge{group: y, first: true})
			} else if last := run.last(); last.Value == v && !taken[last.Suit] {
				taken[last.Suit] = true
				edges = append(edges, edge{group: y})
			}
		}
		if need <= 0 || len(edges) < need {
			continue
		}
		for _, e := range edges {
			run := &p.groups[e.group]
			i := run.Len() - 1
			if e.first {
				i = 0
			}
			pos, c := run.removeAt(i)
			frag.push(pos, c)
		}
		frag.sortCards()
		changed = true
	}
	return changed
}

func distinctSuits(g *Group) bool {
	var seen [len(domain.Suits)]bool
	for _, c := range g.cards[:g.n] {
		if seen[c.Suit] {
			return false
		}
		seen[c.Suit] = true
	}
	return true
}

// placeJokers lifts every joker out of joker-only groups and gives it to the
// group it helps most: first a quasi-meld or a same-value pair that it turns
// into a meld, then a singleton that two jokers turn into a meld, then a meld
// that can still grow. Jokers with no taker stay single.
func placeJokers(p *Partition) {
	var jokers []int
	for i := 0; i < p.n; i++ {
		g := &p.groups[i]
		if g.n == 0 || g.jokerCount() != g.Len() {
			continue
		}
		for g.n > 0 {
			pos, _ := g.removeAt(0)
			jokers = append(jokers, pos)
		}
	}

	for len(jokers) > 0 {
		target := -1
		for i := 0; i < p.n && target < 0; i++ {
			g := &p.groups[i]
			if g.IsQuasiMeld() || (g.Len() == 2 && g.isSameValue() && distinctSuits(g)) {
				target = i
			}
		}
		if target < 0 && len(jokers) >= 2 {
			for i := 0; i < p.n && target < 0; i++ {
				if g := &p.groups[i]; g.IsSingle() && !g.cards[0].IsJoker() {
					target = i
				}
			}
			if target >= 0 {
				p.groups[target].push(jokers[0], domain.JokerCard)
				jokers = jokers[1:]
			}
		}
		if target < 0 {
			for i := 0; i < p.n && target < 0; i++ {
				if canGrowWild(&p.groups[i]) {
					target = i
				}
			}
		}
		if target < 0 {
			break
		}
		p.groups[target].push(jokers[0], domain.JokerCard)
		jokers = jokers[1:]
	}

	p.compact()
	for _, pos := range jokers {
		var g Group
		g.push(pos, domain.JokerCard)
		p.push(g)
	}
}

// canGrowWild reports whether a meld accepts one more joker.
func canGrowWild(g *Group) bool {
	if g.Len() >= domain.MaxHandSize {
		return false
	}
	if _, lo, hi, ok := wildRun(g); ok {
		return hi-lo+1 < domain.MaxCardValue
	}
	if _, ok := wildSet(g); ok {
		return g.Len() < 4
	}
	return false
}
