package kuhn

import (
	"math/rand"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/kuhn-mccfr"
)

// Trainer owns the strategy profile for a run and drives external
// sampling over freshly dealt hands.
type Trainer struct {
	params  Params
	profile cfr.StrategyProfile
	rng     *rand.Rand
	es      *ExternalSampling

	iter      int
	valueSums []float64
}

// NewTrainer returns a Trainer backed by a new in-memory PolicyTable.
func NewTrainer(params Params) (*Trainer, error) {
	return NewTrainerWithProfile(params, cfr.NewPolicyTable(params.NumActions))
}

// NewTrainerWithProfile returns a Trainer that accumulates into the given profile.
func NewTrainerWithProfile(params Params, profile cfr.StrategyProfile) (*Trainer, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	if profile.NumActions() != params.NumActions {
		return nil, errors.Wrapf(ErrInvalidParams, "profile has %d actions, params have %d",
			profile.NumActions(), params.NumActions)
	}

	rng := rand.New(rand.NewSource(params.Seed))
	return &Trainer{
		params:    params,
		profile:   profile,
		rng:       rng,
		es:        NewExternalSampling(profile, rng),
		valueSums: make([]float64, params.NumPlayers),
	}, nil
}

// Train runs Params.Iterations iterations.
func (t *Trainer) Train() {
	nIter := t.params.Iterations
	logEvery := nIter / 10
	if logEvery == 0 {
		logEvery = 1
	}

	glog.Infof("Training for %d iterations: deck size %d, %d players, seed %d",
		nIter, t.params.DeckSize, t.params.NumPlayers, t.params.Seed)
	for i := 1; i <= nIter; i++ {
		t.RunIteration()
		if i%logEvery == 0 {
			glog.V(1).Infof("[iter=%d] Expected game value: %.4f, %d infosets, %d nodes touched",
				t.iter, t.GameValue(), t.profile.Len(), t.es.NodesTouched())
		}
	}

	glog.Infof("Finished %d iterations: game value %.4f, discovered %d/%d infosets",
		t.iter, t.GameValue(), t.profile.Len(), CountInfoSets(t.params.DeckSize, t.params.NumPlayers))
}

// RunIteration deals a fresh hand for each player in seat order and
// traverses the game tree once with that player as the traverser.
func (t *Trainer) RunIteration() {
	t.iter++
	for player := 0; player < t.params.NumPlayers; player++ {
		cards := Deal(t.rng, t.params.DeckSize, t.params.NumPlayers)
		t.valueSums[player] += t.es.Run(cards, "", t.params.NumPlayers, player, t.iter)
	}
}

// Iter returns the number of completed iterations.
func (t *Trainer) Iter() int {
	return t.iter
}

// ExpectedValue returns the mean traversal value for the given player
// across all completed iterations.
func (t *Trainer) ExpectedValue(player int) float64 {
	if t.iter == 0 {
		return 0
	}

	return t.valueSums[player] / float64(t.iter)
}

// GameValue returns the estimated value of the game for player 0.
func (t *Trainer) GameValue() float64 {
	return t.ExpectedValue(0)
}

// NodesTouched returns the number of decision nodes visited so far.
func (t *Trainer) NodesTouched() int64 {
	return t.es.NodesTouched()
}

func (t *Trainer) Profile() cfr.StrategyProfile {
	return t.profile
}

// Summaries returns every discovered infoset, sorted by key.
func (t *Trainer) Summaries() []cfr.InfoSetSummary {
	return t.profile.Summaries()
}
