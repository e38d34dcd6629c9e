// Trains a Kuhn Poker strategy with external-sampling MCCFR and prints
// the average strategy at every infoset.
//
// Defaults are read from KUHN_* environment variables and may be
// overridden with flags.
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/timpalpant/kuhn-mccfr/internal/config"
	"github.com/timpalpant/kuhn-mccfr/kuhn"
)

func main() {
	cfg, cfgErr := config.Load()
	iterations := flag.Int("iterations", cfg.Iterations, "Number of training iterations")
	deckSize := flag.Int("deck_size", cfg.DeckSize, "Number of cards in the deck")
	numPlayers := flag.Int("num_players", cfg.NumPlayers, "Number of players")
	numActions := flag.Int("num_actions", cfg.NumActions, "Number of actions per infoset (must be 2)")
	seed := flag.Int64("seed", cfg.Seed, "Random seed")
	flag.Parse()
	defer glog.Flush()

	if cfgErr != nil {
		glog.Exit(cfgErr)
	}

	params := kuhn.Params{
		Iterations: *iterations,
		DeckSize:   *deckSize,
		NumPlayers: *numPlayers,
		NumActions: *numActions,
		Seed:       *seed,
	}

	trainer, err := kuhn.NewTrainer(params)
	if err != nil {
		glog.Exit(err)
	}

	trainer.Train()
	if err := trainer.Report(os.Stdout); err != nil {
		glog.Exit(err)
	}
}
