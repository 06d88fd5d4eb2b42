package nakama

import (
	"remi/internal/app"
	"remi/internal/domain"
	"remi/internal/eval"
)

type analyzeRequest struct {
	Hand string   `json:"hand"`
	Seen []string `json:"seen,omitempty"`
}

type dealRequest struct {
	Size int `json:"size,omitempty"`
}

type compareRequest struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

type groupResponse struct {
	Cards []string `json:"cards"`
	Kind  string   `json:"kind"`
}

type profileResponse struct {
	Singles    int `json:"singles"`
	QuasiMelds int `json:"quasi_melds"`
	Fragments  int `json:"fragments"`
	RunMelds   int `json:"run_melds"`
	SetMelds   int `json:"set_melds"`
	MeldCards  int `json:"meld_cards"`
	Jokers     int `json:"jokers"`
}

// ReportResponse is the JSON shape of an analyzed hand.
type ReportResponse struct {
	Hand     string          `json:"hand"`
	Groups   []groupResponse `json:"groups"`
	Profile  profileResponse `json:"profile"`
	Score    float64         `json:"score"`
	DeckLeft int             `json:"deck_left"`
}

// CompareResponse is the JSON shape of a hand comparison.
type CompareResponse struct {
	First  ReportResponse `json:"first"`
	Second ReportResponse `json:"second"`
	Diff   float64        `json:"diff"`
}

func cardsFromTokens(tokens []string) ([]domain.Card, error) {
	out := make([]domain.Card, 0, len(tokens))
	for _, tok := range tokens {
		c, err := domain.ParseCard(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func reportToResponse(r app.Report, tuning eval.Tuning) ReportResponse {
	canonical := r.Partition.Canonical()
	groups := make([]groupResponse, 0, canonical.Len())
	for _, g := range canonical.Groups() {
		groups = append(groups, groupResponse{
			Cards: g.Tokens(),
			Kind:  eval.Classify(&g, tuning.JokersWild).String(),
		})
	}
	return ReportResponse{
		Hand:   r.Hand.String(),
		Groups: groups,
		Profile: profileResponse{
			Singles:    r.Profile.Singles,
			QuasiMelds: r.Profile.QuasiMelds,
			Fragments:  r.Profile.Fragments,
			RunMelds:   r.Profile.RunMelds,
			SetMelds:   r.Profile.SetMelds,
			MeldCards:  r.Profile.MeldCards,
			Jokers:     r.Profile.Jokers,
		},
		Score:    r.Score,
		DeckLeft: r.DeckLeft,
	}
}
