package kuhn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/timpalpant/kuhn-mccfr"
)

func TestPoker_BettingTree(t *testing.T) {
	nNodes := 0
	VisitHistories(func(h History, terminal bool) { nNodes++ })
	assert.Equal(t, 9, nNodes)
	assert.Equal(t, 5, CountTerminalHistories())
}

func TestPoker_InfoSets(t *testing.T) {
	assert.Equal(t, 12, CountInfoSets(3, 2))
	assert.Equal(t, 40, CountInfoSets(10, 2))

	players := make(map[cfr.InfoSetKey]int)
	VisitInfoSets(3, 2, func(player int, key cfr.InfoSetKey) {
		players[key] = player
	})

	assert.Len(t, players, 12)
	assert.Equal(t, 0, players[History("").Key(0)])
	assert.Equal(t, 1, players[history(Bet).Key(2)])
	assert.Equal(t, 0, players[history(Check, Bet).Key(1)])
}
