package eval

import (
	"math"
	"sort"
	"strings"
	"testing"

	"remi/internal/domain"
)

func mustHand(t *testing.T, s string) domain.Hand {
	t.Helper()
	h, err := domain.ParseHand(s)
	if err != nil {
		t.Fatalf("ParseHand(%q) error: %v", s, err)
	}
	return h
}

func mustSortedHand(t *testing.T, s string) domain.Hand {
	t.Helper()
	h, err := domain.ParseHandSorted(s)
	if err != nil {
		t.Fatalf("ParseHandSorted(%q) error: %v", s, err)
	}
	return h
}

func mustPartition(t *testing.T, h *domain.Hand, groups [][]int) Partition {
	t.Helper()
	p, err := PartitionFromIndices(h, groups)
	if err != nil {
		t.Fatalf("PartitionFromIndices(%v) error: %v", groups, err)
	}
	return p
}

// groupKeys renders p as a sorted list of groups, each group's tokens sorted
// by canonical index, so set-of-sets equality becomes slice equality.
func groupKeys(p Partition) []string {
	c := p.Canonical()
	keys := make([]string, 0, c.Len())
	for _, toks := range c.Tokens() {
		keys = append(keys, strings.Join(toks, " "))
	}
	sort.Strings(keys)
	return keys
}

func assertGroups(t *testing.T, p Partition, want ...string) {
	t.Helper()
	wantKeys := make([]string, 0, len(want))
	for _, w := range want {
		h := mustSortedHand(t, w)
		wantKeys = append(wantKeys, h.String())
	}
	sort.Strings(wantKeys)

	got := groupKeys(p)
	if strings.Join(got, " | ") != strings.Join(wantKeys, " | ") {
		t.Fatalf("partition = %v, want %v", got, wantKeys)
	}
}

// assertCovers checks that p uses every position of its hand exactly once
// and that each group member matches the card at that position.
func assertCovers(t *testing.T, p Partition) {
	t.Helper()
	h := p.Hand()
	seen := make([]int, h.Len())
	for i := 0; i < p.Len(); i++ {
		g := p.Group(i)
		if g.Len() == 0 {
			t.Fatalf("group %d is empty in %v", i, p)
		}
		for k := 0; k < g.Len(); k++ {
			pos := g.Position(k)
			seen[pos]++
			if h.At(pos) != g.Card(k) {
				t.Fatalf("group %d member %d = %v, hand has %v", i, k, g.Card(k), h.At(pos))
			}
		}
	}
	for pos, n := range seen {
		if n != 1 {
			t.Fatalf("position %d used %d times in %v", pos, n, p)
		}
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}
