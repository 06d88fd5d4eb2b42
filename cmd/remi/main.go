package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"k8s.io/klog/v2"

	"remi/internal/app"
	"remi/internal/config"
	"remi/internal/domain"
)

var (
	flagHand   = flag.String("hand", "", "Hand to analyze, e.g. \"Ac 2c 3c 5d 5h 5s\"")
	flagSeen   = flag.String("seen", "", "Cards already out of the deck, same format as -hand")
	flagDeal   = flag.Int("deal", 0, "Deal and analyze a random hand of this size")
	flagConfig = flag.String("config", "", "Analysis config JSON (default: $REMI_CONFIG)")
	flagSeed   = flag.Int64("seed", 0, "Random seed (default: $REMI_SEED, else time-based)")
)

func main() {
	klog.InitFlags(nil)
	// a missing .env is fine
	_ = godotenv.Load()
	flag.Parse()
	defer klog.Flush()

	cfg, err := loadConfig()
	if err != nil {
		klog.Exitf("config: %v", err)
	}
	sampler := domain.DefaultSampler
	if cfg.Seed != 0 {
		sampler = rand.New(rand.NewSource(cfg.Seed))
	}
	svc := app.NewService(nil, cfg)

	deck := domain.NewDeck()
	fmt.Println(deck)
	card, err := deck.RemoveRandom(sampler)
	if err != nil {
		klog.Warningf("random card %s was not in the deck: %v", card, err)
	}
	fmt.Printf("Random card: %s\n", card)

	if *flagHand != "" {
		hand, err := domain.ParseHand(*flagHand)
		if err != nil {
			klog.Exitf("hand %q: %v", *flagHand, err)
		}
		var seen []domain.Card
		if *flagSeen != "" {
			seenHand, err := domain.ParseHand(*flagSeen)
			if err != nil {
				klog.Exitf("seen %q: %v", *flagSeen, err)
			}
			seen = seenHand.Cards()
		}
		report, err := svc.Analyze(app.AnalyzeRequest{Hand: hand, Seen: seen})
		if err != nil {
			klog.Exitf("analyze: %v", err)
		}
		printReport(report)
	}

	if *flagDeal != 0 {
		report, err := svc.Deal(*flagDeal)
		if err != nil {
			klog.Exitf("deal: %v", err)
		}
		printReport(report)
	}
}

// loadConfig applies, in increasing priority, the defaults, the config file
// and the seed from the environment or flags.
func loadConfig() (config.AnalysisConfig, error) {
	cfg := config.Default()
	path := *flagConfig
	if path == "" {
		path = os.Getenv("REMI_CONFIG")
	}
	if path != "" {
		if err := config.LoadAnalysisConfig(path); err != nil {
			return cfg, err
		}
		cfg = config.GetAnalysisConfig()
		klog.V(1).Infof("loaded analysis config from %s", path)
	}

	if s := os.Getenv("REMI_SEED"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("REMI_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if *flagSeed != 0 {
		cfg.Seed = *flagSeed
	}
	return cfg, nil
}

func printReport(r app.Report) {
	fmt.Printf("Hand: %s\n", r.Hand.String())
	fmt.Printf("Decomposition: %v\n", r.Partition.Canonical())
	fmt.Printf("Melds: %d runs, %d sets, %d cards in melds\n", r.Profile.RunMelds, r.Profile.SetMelds, r.Profile.MeldCards)
	fmt.Printf("Score: %.4f against %d cards left\n", r.Score, r.DeckLeft)
}
