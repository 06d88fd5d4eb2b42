package eval

import (
	"math/rand"
	"testing"

	"remi/internal/domain"
)

func TestPartitionSuit(t *testing.T) {
	h := mustHand(t, "Ac 6s 9h 10d 5h 3c Kc 7s 9c 4d Jd X")
	p := PartitionSuit(&h)

	if p.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", p.Len())
	}
	want := "[[[A♣], [3♣], [K♣], [9♣]], [[10♦], [4♦], [J♦]], [[9♥], [5♥]], [[6♠], [7♠]], [[X]]]"
	if got := p.String(); got != want {
		t.Fatalf("PartitionSuit() = %s, want %s", got, want)
	}
	assertCovers(t, p)
}

func TestPartitionSuitSkipsEmptySuits(t *testing.T) {
	h := mustSortedHand(t, "2h 5h Kh")
	p := PartitionSuit(&h)
	if p.Len() != 1 || p.Group(0).Len() != 3 {
		t.Fatalf("PartitionSuit() = %v, want one hearts group", p)
	}
}

func TestNaiveDecomposition(t *testing.T) {
	h := mustSortedHand(t, "Ac 2c 3c 2h 4h 5h Qs Ks 8c 9c 10c Qc Kc")
	p := NaiveDecomposition(&h)

	if p.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", p.Len())
	}
	want := "[[[A♣], [2♣], [3♣]], [[8♣], [9♣], [10♣]], [[Q♣], [K♣]], [[2♥]], [[4♥], [5♥]], [[Q♠], [K♠]]]"
	if got := p.String(); got != want {
		t.Fatalf("NaiveDecomposition() = %s, want %s", got, want)
	}
	assertGroups(t, p, "Ac 2c 3c", "8c 9c 10c", "Qc Kc", "2h", "4h 5h", "Qs Ks")
}

func TestNaiveDecompositionKeepsJokersApart(t *testing.T) {
	h := mustSortedHand(t, "X Ac 2c X")
	p := NaiveDecomposition(&h)
	assertGroups(t, p, "Ac 2c", "X", "X")
}

func TestNaiveDecompositionSplitsDuplicates(t *testing.T) {
	h := mustSortedHand(t, "5d 6d 6d 7d")
	p := NaiveDecomposition(&h)
	assertGroups(t, p, "5d 6d", "6d 7d")
}

func TestOptimalDecomposition(t *testing.T) {
	tests := []struct {
		name string
		hand string
		want string
	}{
		{
			name: "same value singles merge",
			hand: "5s 5h 5c",
			want: "[[[5♣], [5♥], [5♠]]]",
		},
		{
			name: "run and set",
			hand: "Ac 2c 3c 5s 5h 5c",
			want: "[[[A♣], [2♣], [3♣]], [[5♣], [5♥], [5♠]]]",
		},
		{
			name: "duplicate stays single",
			hand: "Ac 2c 3c 4c 4c",
			want: "[[[A♣], [2♣], [3♣], [4♣]], [[4♣]]]",
		},
		{
			name: "run gives its edge to a set",
			hand: "Ac 2c 3c 4c 4d 4h",
			want: "[[[A♣], [2♣], [3♣]], [[4♣], [4♦], [4♥]]]",
		},
		{
			name: "low edge is borrowed",
			hand: "5c 6c 7c 8c 5d 5s",
			want: "[[[5♣], [5♦], [5♠]], [[6♣], [7♣], [8♣]]]",
		},
		{
			name: "three card run is never broken",
			hand: "Ac 2c 3c 3d 3h",
			want: "[[[A♣], [2♣], [3♣]], [[3♦], [3♥]]]",
		},
		{
			name: "single borrows from two runs",
			hand: "5c 6c 7c 8c 5d 6d 7d 8d 8h",
			want: "[[[5♣], [6♣], [7♣]], [[5♦], [6♦], [7♦]], [[8♣], [8♦], [8♥]]]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := mustSortedHand(t, tt.hand)
			p := OptimalDecomposition(&h)
			assertCovers(t, p)
			if got := p.Canonical().String(); got != tt.want {
				t.Fatalf("OptimalDecomposition() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestOptimalDecompositionMergesJokersWhenNotWild(t *testing.T) {
	h := mustSortedHand(t, "Ac 2c X X")
	p := OptimalDecomposition(&h)
	assertGroups(t, p, "Ac 2c", "X X")
	if prof := DefaultTuning.ProfilePartition(&p); prof.RunMelds+prof.SetMelds != 0 {
		t.Fatalf("jokers must not meld without the wild rule: %+v", prof)
	}
}

func TestOptimalDecompositionWildJokers(t *testing.T) {
	wild := DefaultTuning
	wild.JokersWild = true

	tests := []struct {
		name  string
		hand  string
		want  []string
		melds int
	}{
		{name: "completes quasi-meld", hand: "4h 5h X", want: []string{"4h 5h X"}, melds: 1},
		{name: "completes pair into set", hand: "9c 9s X", want: []string{"9c 9s X"}, melds: 1},
		{name: "two jokers lift a single", hand: "Kd X X", want: []string{"Kd X X"}, melds: 1},
		{name: "extends existing meld", hand: "2c 3c 4c X", want: []string{"2c 3c 4c X"}, melds: 1},
		{name: "lonely joker stays single", hand: "2c 9h X", want: []string{"2c", "9h", "X"}, melds: 0},
		{name: "quasi before meld", hand: "2c 3c 4c 7d 8d X", want: []string{"2c 3c 4c", "7d 8d X"}, melds: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := mustSortedHand(t, tt.hand)
			p := wild.OptimalDecomposition(&h)
			assertCovers(t, p)
			assertGroups(t, p, tt.want...)
			prof := wild.ProfilePartition(&p)
			if got := prof.RunMelds + prof.SetMelds; got != tt.melds {
				t.Fatalf("melds = %d, want %d (%+v)", got, tt.melds, prof)
			}
		})
	}
}

func randomHand(rng *rand.Rand) domain.Hand {
	var h domain.Hand
	_ = h.Fill(1+rng.Intn(domain.MaxHandSize), rng)
	h.Sort()
	return h
}

func TestDecompositionsCoverHand(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	wild := DefaultTuning
	wild.JokersWild = true
	for i := 0; i < 500; i++ {
		h := randomHand(rng)
		assertCovers(t, PartitionSuit(&h))
		assertCovers(t, NaiveDecomposition(&h))
		assertCovers(t, OptimalDecomposition(&h))
		assertCovers(t, wild.OptimalDecomposition(&h))
	}
}

func TestNaiveRunsAreMonotone(t *testing.T) {
	rng := rand.New(rand.NewSource(77))
	for i := 0; i < 500; i++ {
		h := randomHand(rng)
		p := NaiveDecomposition(&h)
		for k := 0; k < p.Len(); k++ {
			g := p.Group(k)
			for j := 1; j < g.Len(); j++ {
				prev, cur := g.Card(j-1), g.Card(j)
				if prev.Suit != cur.Suit || !prev.IsPredecessor(cur) {
					t.Fatalf("group %v of %s is not an ascending run", g, h.String())
				}
			}
		}
	}
}

func TestOptimizeIsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(31337))
	wild := DefaultTuning
	wild.JokersWild = true
	for _, tuning := range []Tuning{DefaultTuning, wild} {
		for i := 0; i < 500; i++ {
			h := randomHand(rng)
			once := tuning.OptimalDecomposition(&h)
			twice := tuning.Optimize(once)
			if !once.Equivalent(twice) {
				t.Fatalf("Optimize not idempotent for %s: %v then %v", h.String(), once, twice)
			}
		}
	}
}

func TestPartitionIgnoresLaterHandChanges(t *testing.T) {
	h := mustSortedHand(t, "Ac 2c 3c")
	p := NaiveDecomposition(&h)
	_ = h.Push(domain.Card{Value: 4, Suit: domain.Clubs})
	h.Sort()

	snapshot := p.Hand()
	if snapshot.Len() != 3 {
		t.Fatalf("partition hand changed to %d cards", snapshot.Len())
	}
	assertCovers(t, p)
}
