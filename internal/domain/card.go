package domain

import (
	"fmt"
	"math/rand"
)

// Suit is the suit of a card. The joker carries its own suit.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
	Joker
)

// Suits lists every suit in canonical order, joker last.
var Suits = [...]Suit{Clubs, Diamonds, Hearts, Spades, Joker}

var suitGlyphs = [...]string{"♣", "♦", "♥", "♠", ""}

var suitLetters = [...]string{"c", "d", "h", "s", ""}

// String renders the unicode glyph of the suit; the joker has none.
func (s Suit) String() string {
	if int(s) < len(suitGlyphs) {
		return suitGlyphs[s]
	}
	return "?"
}

// SuitFromInt converts an ordinal back into a Suit.
func SuitFromInt(n int) (Suit, bool) {
	if n < 0 || n > int(Joker) {
		return 0, false
	}
	return Suit(n), true
}

func suitFromLetter(b byte) (Suit, error) {
	switch b {
	case 'c':
		return Clubs, nil
	case 'd':
		return Diamonds, nil
	case 'h':
		return Hearts, nil
	case 's':
		return Spades, nil
	default:
		return 0, ErrParse
	}
}

// Value is the canonical value of a card: 0 for the joker, Ace=1 .. King=13.
//
// Meld point values (face cards capped at 10) are a different notion and are
// not modelled here.
type Value uint8

// NewValue panics if n exceeds a King.
func NewValue(n int) Value {
	if n < 0 || n > MaxCardValue {
		panic(fmt.Sprintf("card value %d out of range", n))
	}
	return Value(n)
}

func (v Value) String() string {
	switch {
	case v == 0:
		return "X"
	case v == 1:
		return "A"
	case v <= 10:
		return fmt.Sprintf("%d", uint8(v))
	case v == 11:
		return "J"
	case v == 12:
		return "Q"
	case v == 13:
		return "K"
	}
	panic(fmt.Sprintf("card value %d out of range", uint8(v)))
}

// Card is a single playing card identity. Two physical copies of the same
// card compare equal.
type Card struct {
	Value Value
	Suit  Suit
}

// JokerCard is the unique joker identity.
var JokerCard = Card{Value: 0, Suit: Joker}

// IsJoker reports whether c is the joker.
func (c Card) IsJoker() bool {
	return c.Suit == Joker
}

// Index converts a Card to its position among the sorted unique cards:
// Ac = 0, Ad = 1, ..., Ks = 51, X = 52.
func (c Card) Index() int {
	if c.Suit == Joker {
		return JokerIndex
	}
	return (int(c.Value)-1)*4 + int(c.Suit)
}

// CardFromIndex is the inverse of Card.Index. It panics outside [0, 52].
func CardFromIndex(i int) Card {
	if i < 0 || i >= UniqueCards {
		panic(fmt.Sprintf("card index %d out of range", i))
	}
	if i == JokerIndex {
		return JokerCard
	}
	suit, _ := SuitFromInt(i % 4)
	return Card{Value: NewValue(i/4 + 1), Suit: suit}
}

// Less orders cards by canonical index.
func (c Card) Less(o Card) bool {
	return c.Index() < o.Index()
}

// IsPredecessor reports whether c comes directly before o by value.
// Suits are not compared.
func (c Card) IsPredecessor(o Card) bool {
	return c.Value+1 == o.Value
}

// String renders the debug form, e.g. "[10♥]" or "[X]".
func (c Card) String() string {
	return "[" + c.Value.String() + c.Suit.String() + "]"
}

// Token renders the card in the parse grammar, e.g. "10h" or "X".
func (c Card) Token() string {
	if c.IsJoker() {
		return "X"
	}
	return c.Value.String() + suitLetters[c.Suit]
}

// ParseCard parses a single token: "X" for the joker, otherwise a value glyph
// (A, 2..10, J, Q, K) followed by a suit letter (c, d, h, s).
func ParseCard(s string) (Card, error) {
	if s == "X" {
		return JokerCard, nil
	}
	if len(s) != 2 && len(s) != 3 {
		return Card{}, ErrParse
	}
	v, err := parseValue(s[:len(s)-1])
	if err != nil {
		return Card{}, err
	}
	suit, err := suitFromLetter(s[len(s)-1])
	if err != nil {
		return Card{}, err
	}
	return Card{Value: v, Suit: suit}, nil
}

func parseValue(glyph string) (Value, error) {
	switch glyph {
	case "A":
		return 1, nil
	case "J":
		return 11, nil
	case "Q":
		return 12, nil
	case "K":
		return 13, nil
	case "10":
		return 10, nil
	}
	if len(glyph) == 1 && glyph[0] >= '2' && glyph[0] <= '9' {
		return Value(glyph[0] - '0'), nil
	}
	return 0, ErrParse
}

// Sampler draws a uniform integer in [0, n). *rand.Rand satisfies it.
type Sampler interface {
	Intn(n int) int
}

type globalSampler struct{}

func (globalSampler) Intn(n int) int { return rand.Intn(n) }

// DefaultSampler uses the process-wide, automatically seeded math/rand source.
var DefaultSampler Sampler = globalSampler{}

func samplerOrDefault(s Sampler) Sampler {
	if s == nil {
		return DefaultSampler
	}
	return s
}

// RandomCard returns a card whose canonical index is uniform over [0, 53).
// A nil sampler falls back to DefaultSampler.
func RandomCard(s Sampler) Card {
	return CardFromIndex(samplerOrDefault(s).Intn(UniqueCards))
}
