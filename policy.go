package cfr

import (
	"github.com/timpalpant/kuhn-mccfr/internal/f64"
)

// Node accumulates regrets and strategy weights for one information set.
type Node struct {
	regretSum   []float64
	strategySum []float64

	// Diagnostics only, no effect on the learned strategy.
	visits  int
	utilSum float64
}

// NewNode returns a new Node for an infoset with the given number of actions.
func NewNode(nActions int) *Node {
	return &Node{
		regretSum:   make([]float64, nActions),
		strategySum: make([]float64, nActions),
	}
}

func (n *Node) NumActions() int {
	return len(n.regretSum)
}

// CurrentStrategy returns the regret-matching strategy: positive
// cumulative regrets normalized to sum to 1, or the uniform distribution
// if no action has positive regret. The result is freshly allocated.
func (n *Node) CurrentStrategy() []float64 {
	strat := make([]float64, len(n.regretSum))
	copy(strat, n.regretSum)
	f64.ClampNegative(strat)
	normalize(strat)
	return strat
}

// AverageStrategy returns the normalized cumulative strategy, which is
// the node's estimate of its equilibrium strategy.
func (n *Node) AverageStrategy() []float64 {
	avgStrat := make([]float64, len(n.strategySum))
	copy(avgStrat, n.strategySum)
	normalize(avgStrat)
	return avgStrat
}

func (n *Node) RecordRegret(action int, delta float64) {
	n.regretSum[action] += delta
}

func (n *Node) RecordStrategyWeight(action int, weight float64) {
	n.strategySum[action] += weight
}

func (n *Node) RecordVisit(util float64) {
	n.visits++
	n.utilSum += util
}

func (n *Node) Visits() int {
	return n.visits
}

func (n *Node) UtilSum() float64 {
	return n.utilSum
}

// RegretSum returns a copy of the cumulative regrets.
func (n *Node) RegretSum() []float64 {
	return append([]float64(nil), n.regretSum...)
}

// StrategySum returns a copy of the cumulative strategy weights.
func (n *Node) StrategySum() []float64 {
	return append([]float64(nil), n.strategySum...)
}

func (n *Node) summary(key InfoSetKey) InfoSetSummary {
	return InfoSetSummary{
		Key:             key,
		AverageStrategy: n.AverageStrategy(),
		Visits:          n.visits,
		UtilSum:         n.utilSum,
	}
}

// normalize scales v in place to sum to 1. v must be non-negative.
// A zero vector becomes the uniform distribution.
func normalize(v []float64) {
	total := f64.Sum(v)
	if total > 0 {
		f64.ScalUnitary(1.0/total, v)
		return
	}

	for i := range v {
		v[i] = 1.0 / float64(len(v))
	}
}
