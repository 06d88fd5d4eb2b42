package app

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"remi/internal/config"
	"remi/internal/domain"
	"remi/internal/eval"
)

// Service contains the hand analysis use-cases.
type Service struct {
	mu       sync.Mutex
	rng      *rand.Rand
	tuning   eval.Tuning
	dealSize int
}

// NewService constructs a Service with the provided rng, or one seeded from
// cfg.Seed, or a time-seeded default.
func NewService(rng *rand.Rand, cfg config.AnalysisConfig) *Service {
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	dealSize := cfg.DealSize
	if dealSize == 0 {
		dealSize = config.DefaultDealSize
	}
	return &Service{rng: rng, tuning: cfg.Tuning(), dealSize: dealSize}
}

var (
	ErrEmptyHand        = errors.New("hand is empty")
	ErrInvalidDealSize  = errors.New("deal size out of range")
	ErrHandSizeMismatch = errors.New("hands differ in size")
)

// AnalyzeRequest is a hand together with cards known to be out of the deck,
// such as discards already seen on the table.
type AnalyzeRequest struct {
	Hand domain.Hand
	Seen []domain.Card
}

// Report is the analysis of one hand.
type Report struct {
	Hand      domain.Hand
	Partition eval.Partition
	Profile   eval.Profile
	Score     float64
	// DeckLeft is the number of cards still in the deck the score was computed against.
	DeckLeft int
}

// Comparison scores two hands against the same residual deck.
type Comparison struct {
	First  Report
	Second Report
	// Diff is First.Score - Second.Score.
	Diff float64
}

// Tuning returns the scoring weights in use.
func (s *Service) Tuning() eval.Tuning { return s.tuning }

// Analyze removes the hand and the seen cards from a fresh deck and scores
// the hand's optimal decomposition against what remains.
func (s *Service) Analyze(req AnalyzeRequest) (Report, error) {
	if req.Hand.Len() == 0 {
		return Report{}, ErrEmptyHand
	}
	deck := domain.NewDeck()
	if err := deck.RemoveCards(req.Hand.Cards()); err != nil {
		return Report{}, fmt.Errorf("hand: %w", err)
	}
	if err := deck.RemoveCards(req.Seen); err != nil {
		return Report{}, fmt.Errorf("seen cards: %w", err)
	}
	return s.report(req.Hand, deck), nil
}

// Deal draws size cards from a fresh deck and analyzes the resulting hand.
// A size of 0 uses the configured deal size.
func (s *Service) Deal(size int) (Report, error) {
	if size == 0 {
		size = s.dealSize
	}
	if size < 1 || size > domain.MaxHandSize {
		return Report{}, fmt.Errorf("%w: %d", ErrInvalidDealSize, size)
	}

	deck := domain.NewDeck()
	var hand domain.Hand
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < size; i++ {
		c, err := deck.Draw(s.rng)
		if err != nil {
			return Report{}, err
		}
		if err := hand.Push(c); err != nil {
			return Report{}, err
		}
	}
	return s.report(hand, deck), nil
}

// Compare scores two hands of equal size against a deck from which both
// hands have been removed.
func (s *Service) Compare(a, b domain.Hand) (Comparison, error) {
	if a.Len() == 0 || b.Len() == 0 {
		return Comparison{}, ErrEmptyHand
	}
	if a.Len() != b.Len() {
		return Comparison{}, fmt.Errorf("%w: %d and %d", ErrHandSizeMismatch, a.Len(), b.Len())
	}
	deck := domain.NewDeck()
	if err := deck.RemoveCards(a.Cards()); err != nil {
		return Comparison{}, fmt.Errorf("first hand: %w", err)
	}
	if err := deck.RemoveCards(b.Cards()); err != nil {
		return Comparison{}, fmt.Errorf("second hand: %w", err)
	}

	first, second := s.report(a, deck), s.report(b, deck)
	return Comparison{First: first, Second: second, Diff: first.Score - second.Score}, nil
}

func (s *Service) report(h domain.Hand, deck *domain.Deck) Report {
	h.Sort()
	p := s.tuning.OptimalDecomposition(&h)
	return Report{
		Hand:      h,
		Partition: p,
		Profile:   s.tuning.ProfilePartition(&p),
		Score:     s.tuning.DecompScore(&p, deck),
		DeckLeft:  deck.Total(),
	}
}
