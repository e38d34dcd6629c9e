package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timpalpant/kuhn-mccfr/kuhn"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, kuhn.DefaultParams(), c.Params())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("KUHN_ITERATIONS", "500")
	t.Setenv("KUHN_DECK_SIZE", "13")
	t.Setenv("KUHN_SEED", "7")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 500, c.Iterations)
	assert.Equal(t, 13, c.DeckSize)
	assert.Equal(t, 2, c.NumPlayers)
	assert.Equal(t, int64(7), c.Params().Seed)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("KUHN_NUM_PLAYERS", "two")
	_, err := Load()
	assert.Error(t, err)
}
