package kuhn

import (
	"math/rand"

	"github.com/timpalpant/kuhn-mccfr"
	"github.com/timpalpant/kuhn-mccfr/internal/f64"
	"github.com/timpalpant/kuhn-mccfr/internal/sampling"
)

// ExternalSampling implements the external-sampling MCCFR update over the
// Kuhn Poker game tree: every action of the traversing player is explored,
// while a single action is sampled at each other player's decision.
type ExternalSampling struct {
	profile cfr.StrategyProfile
	rng     *rand.Rand

	slicePool    *floatSlicePool
	nodesTouched int64
}

func NewExternalSampling(profile cfr.StrategyProfile, rng *rand.Rand) *ExternalSampling {
	return &ExternalSampling{
		profile:   profile,
		rng:       rng,
		slicePool: &floatSlicePool{},
	}
}

// Run performs one traversal for traversingPlayer from the given history
// with the dealt cards held fixed, and returns the traversing player's
// sampled counterfactual value.
//
// iter is the current iteration. No iteration-dependent weighting is applied.
func (es *ExternalSampling) Run(cards []Card, history History, pot, traversingPlayer, iter int) float64 {
	return es.runHelper(cards, history, pot, traversingPlayer)
}

// NodesTouched returns the number of decision nodes visited so far.
func (es *ExternalSampling) NodesTouched() int64 {
	return es.nodesTouched
}

func (es *ExternalSampling) runHelper(cards []Card, history History, pot, traversingPlayer int) float64 {
	if u, ok := Utility(cards, history, pot, traversingPlayer); ok {
		return u
	}

	es.nodesTouched++
	player := ActingPlayer(history, len(cards))
	key := history.Key(cards[player])
	if player == traversingPlayer {
		return es.handleTraversingPlayerNode(key, cards, history, pot, traversingPlayer)
	}

	return es.handleSampledPlayerNode(key, cards, history, pot, traversingPlayer)
}

func (es *ExternalSampling) handleTraversingPlayerNode(key cfr.InfoSetKey, cards []Card, history History, pot, traversingPlayer int) float64 {
	strategy := es.profile.CurrentStrategy(key)
	regrets := es.slicePool.alloc(len(strategy))
	defer es.slicePool.free(regrets)
	for i := range regrets {
		a := Action(i)
		regrets[i] = es.runHelper(cards, history.Append(a), pot+int(a), traversingPlayer)
	}

	nodeUtil := f64.DotUnitary(strategy, regrets)
	f64.AddConst(-nodeUtil, regrets)
	es.profile.AddRegret(key, regrets)
	es.profile.RecordVisit(key, nodeUtil)
	return nodeUtil
}

// Sample one action according to the current strategy and accumulate the
// full strategy into the average. Sampling probabilities cancel out in
// expectation, so the child value is returned unweighted.
func (es *ExternalSampling) handleSampledPlayerNode(key cfr.InfoSetKey, cards []Card, history History, pot, traversingPlayer int) float64 {
	strategy := es.profile.CurrentStrategy(key)
	a := Action(sampling.SampleOne(strategy, es.rng.Float64()))
	util := es.runHelper(cards, history.Append(a), pot+int(a), traversingPlayer)
	es.profile.AddStrategyWeight(key, strategy)
	return util
}
