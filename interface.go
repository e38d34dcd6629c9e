// Package cfr implements the tabular accumulators behind counterfactual
// regret minimization: per-infoset regret and strategy sums, regret
// matching, and the stores that own them for the duration of a run.
package cfr

import (
	"strconv"
)

// InfoSetKey identifies an information set by the acting player's
// private card and the public action history that led to it.
//
// History holds one byte per action. Keeping the card and history in
// separate fields means distinct (card, history) pairs never alias,
// whatever the deck size.
type InfoSetKey struct {
	Card    int
	History string
}

// String implements fmt.Stringer. Actions are rendered as their
// numeric value, e.g. card 2 after check-bet is "2|01".
func (k InfoSetKey) String() string {
	buf := make([]byte, 0, len(k.History)+4)
	buf = strconv.AppendInt(buf, int64(k.Card), 10)
	buf = append(buf, '|')
	for i := 0; i < len(k.History); i++ {
		buf = strconv.AppendInt(buf, int64(k.History[i]), 10)
	}

	return string(buf)
}

// Less orders keys by card, then lexicographically by history.
func (k InfoSetKey) Less(other InfoSetKey) bool {
	if k.Card != other.Card {
		return k.Card < other.Card
	}

	return k.History < other.History
}

// InfoSetSummary is a read-only snapshot of one Node, used for reporting.
type InfoSetSummary struct {
	Key             InfoSetKey
	AverageStrategy []float64
	Visits          int
	UtilSum         float64
}

// MeanUtil returns UtilSum / Visits, or 0 if the infoset was never
// visited by its owner as the traversing player.
func (s InfoSetSummary) MeanUtil() float64 {
	if s.Visits == 0 {
		return 0
	}

	return s.UtilSum / float64(s.Visits)
}

// StrategyProfile owns one Node per discovered information set.
// Nodes are created lazily on first access and are never evicted.
type StrategyProfile interface {
	// NumActions is the number of actions available at every infoset.
	NumActions() int
	// CurrentStrategy returns a fresh copy of the regret-matching
	// strategy at the given infoset, creating its node if needed.
	CurrentStrategy(key InfoSetKey) []float64
	// AddRegret adds the given per-action regrets to the infoset's
	// cumulative regret.
	AddRegret(key InfoSetKey, instantaneousRegrets []float64)
	// AddStrategyWeight adds the given per-action weights to the
	// infoset's cumulative strategy.
	AddStrategyWeight(key InfoSetKey, weights []float64)
	// RecordVisit records diagnostics for one traversal of the infoset
	// by its owner.
	RecordVisit(key InfoSetKey, util float64)
	// AverageStrategy returns the time-averaged strategy at the infoset.
	AverageStrategy(key InfoSetKey) []float64
	// Len returns the number of discovered infosets.
	Len() int
	// Summaries returns a snapshot of every infoset, sorted by key.
	Summaries() []InfoSetSummary
}
