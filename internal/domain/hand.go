package domain

import (
	"sort"
	"strings"
)

// Hand is a bounded, ordered collection of up to MaxHandSize cards. It is a
// value type; copying a Hand copies its cards.
type Hand struct {
	cards [MaxHandSize]Card
	n     int
}

// NewHand returns an empty hand holding the given cards.
func NewHand(cards ...Card) (Hand, error) {
	var h Hand
	for _, c := range cards {
		if err := h.Push(c); err != nil {
			return h, err
		}
	}
	return h, nil
}

// ParseHand parses a single-space separated list of card tokens.
func ParseHand(s string) (Hand, error) {
	var h Hand
	for _, tok := range strings.Split(s, " ") {
		c, err := ParseCard(tok)
		if err != nil {
			return Hand{}, err
		}
		if err := h.Push(c); err != nil {
			return Hand{}, err
		}
	}
	return h, nil
}

// ParseHandSorted parses s and sorts the result by canonical index.
func ParseHandSorted(s string) (Hand, error) {
	h, err := ParseHand(s)
	if err != nil {
		return h, err
	}
	h.Sort()
	return h, nil
}

// Len returns the number of cards held.
func (h *Hand) Len() int { return h.n }

// At returns the card at position i.
func (h *Hand) At(i int) Card {
	if i < 0 || i >= h.n {
		panic("hand position out of range")
	}
	return h.cards[i]
}

// Cards returns a copy of the held cards in order.
func (h *Hand) Cards() []Card {
	out := make([]Card, h.n)
	copy(out, h.cards[:h.n])
	return out
}

// Push appends c, failing with ErrCapacity once the hand is full.
func (h *Hand) Push(c Card) error {
	if h.n == MaxHandSize {
		return capacityExceeded(c)
	}
	h.cards[h.n] = c
	h.n++
	return nil
}

// Sort orders the hand by canonical index. Equal cards are identical, so
// stability does not matter.
func (h *Hand) Sort() {
	cards := h.cards[:h.n]
	sort.Slice(cards, func(i, j int) bool { return cards[i].Less(cards[j]) })
}

// Fill appends n random cards drawn by identity, without consulting a deck.
// It stops with ErrCapacity when the hand is full.
func (h *Hand) Fill(n int, s Sampler) error {
	for i := 0; i < n; i++ {
		if err := h.Push(RandomCard(s)); err != nil {
			return err
		}
	}
	return nil
}

// Tokens renders each card in the parse grammar.
func (h *Hand) Tokens() []string {
	out := make([]string, h.n)
	for i, c := range h.cards[:h.n] {
		out[i] = c.Token()
	}
	return out
}

// String renders the hand in the parse grammar; for a non-empty hand
// ParseHand(h.String()) reproduces h. The value receiver lets fmt print
// both Hand and *Hand.
func (h Hand) String() string {
	return strings.Join(h.Tokens(), " ")
}
