package domain

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func TestParseHand(t *testing.T) {
	h, err := ParseHand("Ac 10d X Ks")
	if err != nil {
		t.Fatalf("ParseHand() error: %v", err)
	}
	want := []Card{
		{Value: 1, Suit: Clubs},
		{Value: 10, Suit: Diamonds},
		JokerCard,
		{Value: 13, Suit: Spades},
	}
	if !reflect.DeepEqual(h.Cards(), want) {
		t.Fatalf("ParseHand() = %v, want %v", h.Cards(), want)
	}
	if h.String() != "Ac 10d X Ks" {
		t.Fatalf("String() = %q", h.String())
	}
}

func TestParseHandErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "empty", input: "", want: ErrParse},
		{name: "double space", input: "Ac  2c", want: ErrParse},
		{name: "bad glyph", input: "Ac Zc", want: ErrParse},
		{name: "sixteen cards", input: "Ac 2c 3c 4c 5c 6c 7c 8c 9c 10c Jc Qc Kc Ad 2d 3d", want: ErrCapacity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseHand(tt.input); !errors.Is(err, tt.want) {
				t.Fatalf("ParseHand(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestCapacityErrorCarriesCard(t *testing.T) {
	_, err := ParseHand("Ac 2c 3c 4c 5c 6c 7c 8c 9c 10c Jc Qc Kc Ad 2d 3d")
	var cardErr *CardError
	if !errors.As(err, &cardErr) {
		t.Fatalf("expected *CardError, got %T", err)
	}
	if cardErr.Card != (Card{Value: 3, Suit: Diamonds}) {
		t.Fatalf("CapacityError card = %v, want 3d", cardErr.Card)
	}
}

func TestParseHandSorted(t *testing.T) {
	h, err := ParseHandSorted("X 2c Ac 3h 2h 3c 3c")
	if err != nil {
		t.Fatalf("ParseHandSorted() error: %v", err)
	}
	if got := h.String(); got != "Ac 2c 2h 3c 3c 3h X" {
		t.Fatalf("ParseHandSorted() = %q", got)
	}
}

func TestHandFillBoundedByCapacity(t *testing.T) {
	var h Hand
	rng := rand.New(rand.NewSource(5))
	if err := h.Fill(10, rng); err != nil {
		t.Fatalf("Fill(10) error: %v", err)
	}
	if h.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", h.Len())
	}
	if err := h.Fill(10, rng); !errors.Is(err, ErrCapacity) {
		t.Fatalf("Fill past capacity error = %v, want ErrCapacity", err)
	}
	if h.Len() != MaxHandSize {
		t.Fatalf("Len() = %d, want %d", h.Len(), MaxHandSize)
	}
}

func TestHandIsValueType(t *testing.T) {
	h, _ := ParseHand("Kc Ac")
	snapshot := h
	h.Sort()
	if snapshot.At(0) != (Card{Value: 13, Suit: Clubs}) {
		t.Fatalf("sorting a copy must not affect the snapshot")
	}
	if h.At(0) != (Card{Value: 1, Suit: Clubs}) {
		t.Fatalf("Sort() did not order the hand")
	}
}
