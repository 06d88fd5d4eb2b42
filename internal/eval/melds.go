package eval

import "remi/internal/domain"

// FindMelds lists every distinct meld available in h: for each value, the
// set-meld of its distinct suits, then for each suit, every maximal run of
// three or more. Melds may share cards; the result is not a partition.
// Duplicate copies of a card contribute once.
func FindMelds(h *domain.Hand) []Group {
	// first hand position of each card identity, -1 when absent
	var at [domain.UniqueCards]int
	for i := range at {
		at[i] = -1
	}
	for i := h.Len() - 1; i >= 0; i-- {
		at[h.At(i).Index()] = i
	}

	var melds []Group
	for v := 1; v <= domain.MaxCardValue; v++ {
		var g Group
		for _, s := range domain.Suits[:domain.Joker] {
			c := domain.Card{Value: domain.Value(v), Suit: s}
			if pos := at[c.Index()]; pos >= 0 {
				g.push(pos, c)
			}
		}
		if g.Len() >= 3 {
			melds = append(melds, g)
		}
	}

	for _, s := range domain.Suits[:domain.Joker] {
		var run Group
		flush := func() {
			if run.Len() >= 3 {
				melds = append(melds, run)
			}
			run = Group{}
		}
		for v := 1; v <= domain.MaxCardValue; v++ {
			c := domain.Card{Value: domain.Value(v), Suit: s}
			pos := at[c.Index()]
			if pos < 0 {
				flush()
				continue
			}
			run.push(pos, c)
		}
		flush()
	}
	return melds
}

// Profile summarizes a decomposition's structure.
type Profile struct {
	Groups     int
	Singles    int
	QuasiMelds int
	Fragments  int
	RunMelds   int
	SetMelds   int
	MeldCards  int
	Jokers     int
}

// ProfilePartition counts the kinds of groups in p.
func (t Tuning) ProfilePartition(p *Partition) Profile {
	profile := Profile{Groups: p.Len()}
	for i := 0; i < p.Len(); i++ {
		g := p.Group(i)
		profile.Jokers += g.jokerCount()
		kind := Classify(g, t.JokersWild)
		switch kind {
		case KindSingle:
			profile.Singles++
		case KindQuasiMeld:
			profile.QuasiMelds++
		case KindRunMeld:
			profile.RunMelds++
		case KindSetMeld:
			profile.SetMelds++
		default:
			profile.Fragments++
		}
		if kind.IsMeld() {
			profile.MeldCards += g.Len()
		}
	}
	return profile
}
