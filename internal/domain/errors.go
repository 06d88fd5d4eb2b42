package domain

import (
	"errors"
	"fmt"
)

var (
	ErrCardNotContained = errors.New("card not contained in deck")
	ErrParse            = errors.New("couldn't parse card or hand string")
	ErrCapacity         = errors.New("hand is full")
	ErrGroupIndex       = errors.New("incorrect index given for group")
)

// CardError attaches the offending card to ErrCardNotContained or ErrCapacity.
type CardError struct {
	Err  error
	Card Card
}

func (e *CardError) Error() string {
	switch e.Err {
	case ErrCardNotContained:
		return fmt.Sprintf("no cards of type %s left", e.Card)
	case ErrCapacity:
		return fmt.Sprintf("can't add card %s, hand is full", e.Card)
	}
	return fmt.Sprintf("%s: %v", e.Card, e.Err)
}

func (e *CardError) Unwrap() error {
	return e.Err
}

func notContained(c Card) error {
	return &CardError{Err: ErrCardNotContained, Card: c}
}

func capacityExceeded(c Card) error {
	return &CardError{Err: ErrCapacity, Card: c}
}
