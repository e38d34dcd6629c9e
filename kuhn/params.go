package kuhn

import (
	"github.com/pkg/errors"
)

// NumActions is the only supported number of actions per infoset:
// the terminal rules are defined in terms of Check and Bet.
const NumActions = 2

// ErrInvalidParams is the cause of every error returned by Params.Validate.
var ErrInvalidParams = errors.New("invalid params")

// Params are the configuration options for a training run.
type Params struct {
	Iterations int   // Number of iterations; each traverses once per player.
	DeckSize   int   // Cards are ranks 0..DeckSize-1.
	NumPlayers int   // Number of seats.
	NumActions int   // Must be NumActions.
	Seed       int64 // Seed for deals and sampled actions.
}

// DefaultParams returns the parameters for standard two-player Kuhn Poker.
func DefaultParams() Params {
	return Params{
		Iterations: 10000,
		DeckSize:   3,
		NumPlayers: 2,
		NumActions: NumActions,
		Seed:       123,
	}
}

// Validate returns an error if the parameters do not describe a
// supported game.
func (p Params) Validate() error {
	if p.Iterations <= 0 {
		return errors.Wrapf(ErrInvalidParams, "iterations must be positive, got %d", p.Iterations)
	}

	if p.NumPlayers < 2 {
		return errors.Wrapf(ErrInvalidParams, "need at least 2 players, got %d", p.NumPlayers)
	}

	if p.DeckSize < p.NumPlayers {
		return errors.Wrapf(ErrInvalidParams, "deck of %d cards cannot deal %d players",
			p.DeckSize, p.NumPlayers)
	}

	if p.NumActions != NumActions {
		return errors.Wrapf(ErrInvalidParams, "only %d actions are supported, got %d",
			NumActions, p.NumActions)
	}

	return nil
}
