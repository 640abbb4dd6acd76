package agent

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"kuhn/game"
)

// Tabular is a Monte Carlo learner over (observation, action) pairs. It
// keeps a running average return and a visit count per pair and explores
// epsilon-greedily. Exploration draws come from the agent's own generator,
// never from shared state, so two seats train independently.
type Tabular struct {
	epsilon float64
	rng     *rand.Rand
	values  map[game.Observation]map[game.Action]float64
	counts  map[game.Observation]map[game.Action]int
}

// NewTabular returns an agent with the given initial exploration rate and
// its own exploration generator.
func NewTabular(epsilon float64, rng *rand.Rand) *Tabular {
	return &Tabular{
		epsilon: epsilon,
		rng:     rng,
		values:  make(map[game.Observation]map[game.Action]float64),
		counts:  make(map[game.Observation]map[game.Action]int),
	}
}

// SelectAction picks an action epsilon-greedily: with probability epsilon a
// uniform legal action, otherwise the legal action with the highest current
// average return. Unseen actions count as 0.0 and ties go to the first
// action in the supplied ordering, so selection is deterministic for a fixed
// ordering once exploration is off.
func (t *Tabular) SelectAction(obs game.Observation, legal []game.Action) (game.Action, error) {
	if len(legal) == 0 {
		return 0, errors.Wrapf(ErrNoLegalActions, "observation %s", obs.Key())
	}

	if t.rng.Float64() < t.epsilon {
		return legal[t.rng.Intn(len(legal))], nil
	}

	values := t.values[obs]
	best := legal[0]
	bestValue := values[best]
	for _, action := range legal[1:] {
		if values[action] > bestValue {
			bestValue = values[action]
			best = action
		}
	}
	return best, nil
}

// Update folds an observed episode return into the running average for the
// pair: n += 1, v += (reward - v) / n.
func (t *Tabular) Update(obs game.Observation, action game.Action, reward float64) {
	counts := t.counts[obs]
	if counts == nil {
		counts = make(map[game.Action]int)
		t.counts[obs] = counts
	}
	values := t.values[obs]
	if values == nil {
		values = make(map[game.Action]float64)
		t.values[obs] = values
	}

	counts[action]++
	n := counts[action]
	values[action] += (reward - values[action]) / float64(n)
}

// actionOrder fixes the iteration order over recorded actions so argmax
// ties resolve the same way on every derivation.
var actionOrder = []game.Action{game.Check, game.Bet, game.Call, game.Fold}

// GreedyPolicy derives the deterministic argmax policy from the current
// estimates. States with no recorded action are omitted. The returned
// snapshot shares no storage with the agent, so training can continue
// without invalidating it.
func (t *Tabular) GreedyPolicy() Policy {
	policy := make(Policy, len(t.values))
	for obs, values := range t.values {
		var best game.Action
		bestValue := 0.0
		first := true
		for _, action := range actionOrder {
			value, ok := values[action]
			if !ok {
				continue
			}
			if first || value > bestValue {
				best = action
				bestValue = value
				first = false
			}
		}
		if !first {
			policy[obs] = best
		}
	}
	return policy
}

// ValueTable returns a deep copy of the average-return table. Mutating the
// copy cannot corrupt the agent.
func (t *Tabular) ValueTable() map[game.Observation]map[game.Action]float64 {
	table := make(map[game.Observation]map[game.Action]float64, len(t.values))
	for obs, values := range t.values {
		row := make(map[game.Action]float64, len(values))
		for action, value := range values {
			row[action] = value
		}
		table[obs] = row
	}
	return table
}

// Visits returns how many times the pair has been updated.
func (t *Tabular) Visits(obs game.Observation, action game.Action) int {
	return t.counts[obs][action]
}

// Epsilon returns the current exploration rate.
func (t *Tabular) Epsilon() float64 {
	return t.epsilon
}

// SetEpsilon overrides the exploration rate.
func (t *Tabular) SetEpsilon(epsilon float64) {
	t.epsilon = epsilon
}

// Decay multiplies the exploration rate by factor, clamped below at floor.
func (t *Tabular) Decay(factor, floor float64) {
	t.epsilon *= factor
	if t.epsilon < floor {
		t.epsilon = floor
	}
}
