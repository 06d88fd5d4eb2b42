package domain

import (
	"strconv"
	"strings"
)

// Deck is the residual multiset of undrawn cards: slot i holds the remaining
// count of CardFromIndex(i).
type Deck struct {
	counts [UniqueCards]uint32
}

// NewDeck returns a full deck: two copies of every regular card and four jokers.
func NewDeck() *Deck {
	d := &Deck{}
	for i := 0; i < JokerIndex; i++ {
		d.counts[i] = DuplicateCount
	}
	d.counts[JokerIndex] = JokerTotal
	return d
}

// Clone returns an independent copy of the deck.
func (d *Deck) Clone() *Deck {
	c := *d
	return &c
}

// Count returns how many copies of c remain.
func (d *Deck) Count(c Card) uint32 {
	return d.counts[c.Index()]
}

// Total returns the number of cards left, jokers included.
func (d *Deck) Total() int {
	n := 0
	for _, c := range d.counts {
		n += int(c)
	}
	return n
}

// Remove takes one copy of c out of the deck.
func (d *Deck) Remove(c Card) error {
	i := c.Index()
	if d.counts[i] == 0 {
		return notContained(c)
	}
	d.counts[i]--
	return nil
}

// RemoveCards removes every card in order and stops at the first failure.
func (d *Deck) RemoveCards(cards []Card) error {
	for _, c := range cards {
		if err := d.Remove(c); err != nil {
			return err
		}
	}
	return nil
}

// RemoveRandom picks a card identity uniformly among the 53 slots and removes
// it. Selection ignores remaining counts, so it fails with
// ErrCardNotContained when the chosen slot is already empty.
func (d *Deck) RemoveRandom(s Sampler) (Card, error) {
	c := CardFromIndex(samplerOrDefault(s).Intn(UniqueCards))
	if err := d.Remove(c); err != nil {
		return c, err
	}
	return c, nil
}

// Draw removes a card chosen in proportion to the remaining counts, so each
// physical card left is equally likely. It fails only on an empty deck.
func (d *Deck) Draw(s Sampler) (Card, error) {
	total := d.Total()
	if total == 0 {
		return JokerCard, notContained(JokerCard)
	}
	r := samplerOrDefault(s).Intn(total)
	for i, n := range d.counts {
		if r < int(n) {
			d.counts[i]--
			return CardFromIndex(i), nil
		}
		r -= int(n)
	}
	panic("deck total out of sync with slot counts")
}

// OddsToDraw is the remaining count of c over the initial number of regular
// cards. The divisor is fixed and does not track depletion.
func (d *Deck) OddsToDraw(c Card) float64 {
	return float64(d.Count(c)) / RegularCardTotal
}

// String lists every slot as "<card>x<count>" in canonical order.
func (d *Deck) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, n := range d.counts {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(CardFromIndex(i).String())
		b.WriteByte('x')
		b.WriteString(strconv.FormatUint(uint64(n), 10))
	}
	b.WriteByte(']')
	return b.String()
}
