// Package kuhn trains an approximate Nash equilibrium for Kuhn Poker with
// external-sampling Monte Carlo CFR.
//
// Each player antes one chip and is dealt one private card. Players then
// act in seat order with two actions: Check (check, or fold when facing a
// bet) and Bet (bet, or call when facing a bet). The hand ends when a bet
// is folded to, or when two consecutive actions match (check-check or
// bet-call), in which case the higher card wins the pot.
package kuhn

import (
	"math/rand"

	"github.com/timpalpant/kuhn-mccfr"
)

// Action is a player decision. Its value is the number of chips it adds to the pot.
type Action byte

const (
	Check Action = iota // Check, or fold when facing a bet.
	Bet                 // Bet, or call when facing a bet.
)

// Card is the rank of a private card, in [0, deck size).
type Card int

// History is the sequence of actions taken so far, one byte per action.
type History string

// Append returns a new History with a appended.
func (h History) Append(a Action) History {
	return h + History([]byte{byte(a)})
}

// At returns the ith action of the history.
func (h History) At(i int) Action {
	return Action(h[i])
}

// Key returns the infoset key observed by a player holding card.
func (h History) Key(card Card) cfr.InfoSetKey {
	return cfr.InfoSetKey{Card: int(card), History: string(h)}
}

// ActingPlayer returns the seat of the player to act after history.
func ActingPlayer(h History, numPlayers int) int {
	return len(h) % numPlayers
}

// IsTerminal returns true if no further actions may be taken after h.
func IsTerminal(h History) bool {
	n := len(h)
	if n < 2 {
		return false
	}

	prev, last := h.At(n-2), h.At(n-1)
	return prev == last || (prev == Bet && last == Check)
}

// Utility returns the payoff to player at the end of a hand, and false
// if history is not terminal. The two players involved are those who
// took the last two actions; any other player's payoff is 0.
func Utility(cards []Card, h History, pot int, player int) (float64, bool) {
	if !IsTerminal(h) {
		return 0, false
	}

	n := len(h)
	first := (n - 2) % len(cards)
	last := (n - 1) % len(cards)

	var winner, loser int
	var amount float64
	if h.At(n-2) == Bet && h.At(n-1) == Check {
		// Last player folded to a bet.
		winner, loser = first, last
		amount = 1.0
	} else {
		// Showdown after check-check or bet-call.
		winner, loser = first, last
		if cards[last] > cards[first] {
			winner, loser = last, first
		}

		amount = float64(pot) / 2
	}

	switch player {
	case winner:
		return amount, true
	case loser:
		return -amount, true
	}

	return 0, true
}

// Deal draws a fresh uniformly random permutation of the deck and
// returns its first numPlayers cards, in seat order.
func Deal(rng *rand.Rand, deckSize, numPlayers int) []Card {
	perm := rng.Perm(deckSize)
	cards := make([]Card, numPlayers)
	for i := range cards {
		cards[i] = Card(perm[i])
	}

	return cards
}
