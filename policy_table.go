package cfr

import (
	"fmt"
	"sort"
	"sync"
)

// PolicyTable implements StrategyProfile by keeping every Node in memory,
// looked up by its InfoSetKey. It is not safe for concurrent use.
type PolicyTable struct {
	nActions int

	// Map of InfoSetKey -> accumulators for that infoset.
	nodes map[InfoSetKey]*Node
}

// NewPolicyTable creates a new PolicyTable for a game with nActions
// actions at every infoset.
func NewPolicyTable(nActions int) *PolicyTable {
	return &PolicyTable{
		nActions: nActions,
		nodes:    make(map[InfoSetKey]*Node),
	}
}

// NumActions implements StrategyProfile.
func (pt *PolicyTable) NumActions() int {
	return pt.nActions
}

// CurrentStrategy implements StrategyProfile.
func (pt *PolicyTable) CurrentStrategy(key InfoSetKey) []float64 {
	return pt.GetNode(key).CurrentStrategy()
}

// AddRegret implements StrategyProfile.
func (pt *PolicyTable) AddRegret(key InfoSetKey, instantaneousRegrets []float64) {
	n := pt.GetNode(key)
	checkLen(key, n, instantaneousRegrets)
	for a, r := range instantaneousRegrets {
		n.RecordRegret(a, r)
	}
}

// AddStrategyWeight implements StrategyProfile.
func (pt *PolicyTable) AddStrategyWeight(key InfoSetKey, weights []float64) {
	n := pt.GetNode(key)
	checkLen(key, n, weights)
	for a, w := range weights {
		n.RecordStrategyWeight(a, w)
	}
}

// RecordVisit implements StrategyProfile.
func (pt *PolicyTable) RecordVisit(key InfoSetKey, util float64) {
	pt.GetNode(key).RecordVisit(util)
}

// AverageStrategy implements StrategyProfile.
func (pt *PolicyTable) AverageStrategy(key InfoSetKey) []float64 {
	return pt.GetNode(key).AverageStrategy()
}

// Len implements StrategyProfile.
func (pt *PolicyTable) Len() int {
	return len(pt.nodes)
}

// Summaries implements StrategyProfile.
func (pt *PolicyTable) Summaries() []InfoSetSummary {
	keys := make([]InfoSetKey, 0, len(pt.nodes))
	for key := range pt.nodes {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	result := make([]InfoSetSummary, len(keys))
	for i, key := range keys {
		result[i] = pt.nodes[key].summary(key)
	}

	return result
}

// GetNode returns the Node for the given infoset, creating it on first use.
func (pt *PolicyTable) GetNode(key InfoSetKey) *Node {
	n, ok := pt.nodes[key]
	if !ok {
		n = NewNode(pt.nActions)
		pt.nodes[key] = n
	}

	return n
}

func checkLen(key InfoSetKey, n *Node, v []float64) {
	if len(v) != n.NumActions() {
		panic(fmt.Errorf("node %v has n_actions=%v but got %d values: %v",
			key, n.NumActions(), len(v), v))
	}
}

// ThreadSafePolicyTable wraps PolicyTable and is safe to use from multiple goroutines.
// Node creation and every accumulator update happen under a single lock, so each
// infoset gets exactly one Node and no update is lost.
type ThreadSafePolicyTable struct {
	mu sync.Mutex
	pt *PolicyTable
}

func NewThreadSafePolicyTable(nActions int) *ThreadSafePolicyTable {
	return &ThreadSafePolicyTable{pt: NewPolicyTable(nActions)}
}

func (st *ThreadSafePolicyTable) NumActions() int {
	return st.pt.NumActions()
}

func (st *ThreadSafePolicyTable) CurrentStrategy(key InfoSetKey) []float64 {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.pt.CurrentStrategy(key)
}

func (st *ThreadSafePolicyTable) AddRegret(key InfoSetKey, instantaneousRegrets []float64) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.pt.AddRegret(key, instantaneousRegrets)
}

func (st *ThreadSafePolicyTable) AddStrategyWeight(key InfoSetKey, weights []float64) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.pt.AddStrategyWeight(key, weights)
}

func (st *ThreadSafePolicyTable) RecordVisit(key InfoSetKey, util float64) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.pt.RecordVisit(key, util)
}

func (st *ThreadSafePolicyTable) AverageStrategy(key InfoSetKey) []float64 {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.pt.AverageStrategy(key)
}

func (st *ThreadSafePolicyTable) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.pt.Len()
}

func (st *ThreadSafePolicyTable) Summaries() []InfoSetSummary {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.pt.Summaries()
}
