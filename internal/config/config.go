// Package config loads training configuration from KUHN_* environment variables.
package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"github.com/timpalpant/kuhn-mccfr/kuhn"
)

const prefix = "kuhn"

// Config provides configuration for a training run.
type Config struct {
	Iterations int   `envconfig:"iterations" default:"10000"`
	DeckSize   int   `envconfig:"deck_size" default:"3"`
	NumPlayers int   `envconfig:"num_players" default:"2"`
	NumActions int   `envconfig:"num_actions" default:"2"`
	Seed       int64 `envconfig:"seed" default:"123"`
}

// Load reads the configuration from the environment, falling back to
// the defaults for standard Kuhn Poker.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, errors.Wrap(err, "error loading config from environment")
	}

	return c, nil
}

// Params converts the configuration to kuhn.Params.
func (c Config) Params() kuhn.Params {
	return kuhn.Params{
		Iterations: c.Iterations,
		DeckSize:   c.DeckSize,
		NumPlayers: c.NumPlayers,
		NumActions: c.NumActions,
		Seed:       c.Seed,
	}
}
