package kuhn

import (
	"github.com/timpalpant/kuhn-mccfr"
)

// VisitHistories calls visitor for every history reachable from the root
// of the betting tree, in depth-first order with Check before Bet.
func VisitHistories(visitor func(h History, terminal bool)) {
	visitHistories("", visitor)
}

func visitHistories(h History, visitor func(h History, terminal bool)) {
	terminal := IsTerminal(h)
	visitor(h, terminal)
	if terminal {
		return
	}

	for a := 0; a < NumActions; a++ {
		visitHistories(h.Append(Action(a)), visitor)
	}
}

// VisitInfoSets calls visitor once for every decision infoset reachable
// in a game with the given deck size and number of players. Any card
// may be held by the acting player, so each non-terminal history yields
// one infoset per card.
func VisitInfoSets(deckSize, numPlayers int, visitor func(player int, key cfr.InfoSetKey)) {
	VisitHistories(func(h History, terminal bool) {
		if terminal {
			return
		}

		player := ActingPlayer(h, numPlayers)
		for c := 0; c < deckSize; c++ {
			visitor(player, h.Key(Card(c)))
		}
	})
}

func CountInfoSets(deckSize, numPlayers int) int {
	total := 0
	VisitInfoSets(deckSize, numPlayers, func(player int, key cfr.InfoSetKey) { total++ })
	return total
}

func CountTerminalHistories() int {
	total := 0
	VisitHistories(func(h History, terminal bool) {
		if terminal {
			total++
		}
	})

	return total
}
