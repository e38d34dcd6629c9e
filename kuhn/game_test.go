package kuhn

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func history(actions ...Action) History {
	var h History
	for _, a := range actions {
		h = h.Append(a)
	}

	return h
}

func TestIsTerminal(t *testing.T) {
	testCases := []struct {
		history  History
		terminal bool
	}{
		{history(), false},
		{history(Check), false},
		{history(Bet), false},
		{history(Check, Check), true},
		{history(Check, Bet), false},
		{history(Bet, Check), true},
		{history(Bet, Bet), true},
		{history(Check, Bet, Check), true},
		{history(Check, Bet, Bet), true},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.terminal, IsTerminal(tc.history), "history %v", []byte(tc.history))
	}
}

func TestUtility_NotTerminal(t *testing.T) {
	_, ok := Utility([]Card{2, 1}, history(Check, Bet), 3, 0)
	assert.False(t, ok)
	_, ok = Utility([]Card{2, 1}, history(), 2, 0)
	assert.False(t, ok)
}

func TestUtility_Showdown(t *testing.T) {
	cards := []Card{2, 1}
	u, ok := Utility(cards, history(Check, Check), 2, 0)
	assert.True(t, ok)
	assert.Equal(t, 1.0, u)

	u, _ = Utility(cards, history(Check, Check), 2, 1)
	assert.Equal(t, -1.0, u)

	u, _ = Utility(cards, history(Bet, Bet), 4, 0)
	assert.Equal(t, 2.0, u)
	u, _ = Utility([]Card{0, 1}, history(Bet, Bet), 4, 0)
	assert.Equal(t, -2.0, u)

	u, _ = Utility([]Card{0, 2}, history(Check, Bet, Bet), 4, 1)
	assert.Equal(t, 2.0, u)
	u, _ = Utility([]Card{0, 2}, history(Check, Bet, Bet), 4, 0)
	assert.Equal(t, -2.0, u)
}

func TestUtility_Fold(t *testing.T) {
	// Player 0 bets, player 1 folds: player 0 wins regardless of cards.
	for _, cards := range [][]Card{{0, 2}, {2, 0}} {
		u, ok := Utility(cards, history(Bet, Check), 3, 1)
		assert.True(t, ok)
		assert.Equal(t, -1.0, u)

		u, _ = Utility(cards, history(Bet, Check), 3, 0)
		assert.Equal(t, 1.0, u)
	}

	// Player 0 checks, player 1 bets, player 0 folds.
	u, _ := Utility([]Card{2, 0}, history(Check, Bet, Check), 3, 0)
	assert.Equal(t, -1.0, u)
	u, _ = Utility([]Card{2, 0}, history(Check, Bet, Check), 3, 1)
	assert.Equal(t, 1.0, u)
}

func TestUtility_UninvolvedPlayer(t *testing.T) {
	cards := []Card{0, 1, 2}
	u, ok := Utility(cards, history(Check, Check), 3, 2)
	assert.True(t, ok)
	assert.Equal(t, 0.0, u)

	u, _ = Utility(cards, history(Check, Check), 3, 1)
	assert.Equal(t, 1.5, u)
}

func TestHistory_Key(t *testing.T) {
	h := history(Check, Bet)
	assert.Equal(t, "2|01", h.Key(2).String())
	assert.Equal(t, Bet, h.At(1))
	assert.Equal(t, 0, ActingPlayer(h, 2))
	assert.Equal(t, 2, ActingPlayer(h, 3))
}

func TestDeal(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		cards := Deal(rng, 5, 3)
		assert.Len(t, cards, 3)
		seen := make(map[Card]bool)
		for _, c := range cards {
			assert.True(t, c >= 0 && c < 5)
			assert.False(t, seen[c], "card %d dealt twice", c)
			seen[c] = true
		}
	}

	a := Deal(rand.New(rand.NewSource(9)), 3, 2)
	b := Deal(rand.New(rand.NewSource(9)), 3, 2)
	assert.Equal(t, a, b)
}
