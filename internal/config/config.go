package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"remi/internal/domain"
	"remi/internal/eval"
)

// AnalysisConfig tunes hand analysis and dealing.
type AnalysisConfig struct {
	JokersWild        bool    `json:"jokers_wild"`
	PartialCardWeight float64 `json:"partial_card_weight"`
	MeldCardWeight    float64 `json:"meld_card_weight"`
	ExtensionWeight   float64 `json:"extension_weight"`
	// DealSize is the number of cards Deal draws when the caller gives none.
	DealSize int `json:"deal_size"`
	// Seed fixes the random source; 0 uses a time-based seed.
	Seed int64 `json:"seed"`
}

// DefaultDealSize is the usual opening hand.
const DefaultDealSize = 14

// Default returns the configuration matching eval.DefaultTuning.
func Default() AnalysisConfig {
	return AnalysisConfig{
		JokersWild:        eval.DefaultTuning.JokersWild,
		PartialCardWeight: eval.DefaultTuning.PartialCardWeight,
		MeldCardWeight:    eval.DefaultTuning.MeldCardWeight,
		ExtensionWeight:   eval.DefaultTuning.ExtensionWeight,
		DealSize:          DefaultDealSize,
	}
}

var (
	cfg      *AnalysisConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadAnalysisConfig loads the analysis configuration from the given path.
// Only the first call reads the file.
func LoadAnalysisConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read analysis config: %w", err)
			return
		}

		c, err := Parse(data)
		if err != nil {
			loadErr = err
			return
		}
		cfg = &c
	})
	return loadErr
}

// Parse decodes a JSON configuration. Fields left out keep their defaults.
func Parse(data []byte) (AnalysisConfig, error) {
	c := Default()
	if err := json.Unmarshal(data, &c); err != nil {
		return AnalysisConfig{}, fmt.Errorf("failed to unmarshal analysis config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return AnalysisConfig{}, err
	}
	return c, nil
}

// Validate rejects negative weights and deal sizes a hand cannot hold.
func (c AnalysisConfig) Validate() error {
	if c.PartialCardWeight < 0 || c.MeldCardWeight < 0 || c.ExtensionWeight < 0 {
		return errors.New("analysis config: weights must not be negative")
	}
	if c.DealSize < 1 || c.DealSize > domain.MaxHandSize {
		return fmt.Errorf("analysis config: deal_size %d outside [1, %d]", c.DealSize, domain.MaxHandSize)
	}
	return nil
}

// Tuning maps the configuration onto scoring weights.
func (c AnalysisConfig) Tuning() eval.Tuning {
	return eval.Tuning{
		PartialCardWeight: c.PartialCardWeight,
		MeldCardWeight:    c.MeldCardWeight,
		ExtensionWeight:   c.ExtensionWeight,
		JokersWild:        c.JokersWild,
	}
}

// GetAnalysisConfig returns the loaded configuration, or the defaults when
// nothing was loaded.
func GetAnalysisConfig() AnalysisConfig {
	if cfg == nil {
		return Default()
	}
	return *cfg
}
