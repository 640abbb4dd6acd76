package agent

import (
	"github.com/pkg/errors"

	"kuhn/game"
)

// Policy is a frozen greedy policy: one action per known observation. It is
// a value snapshot derived from an agent, never a live view of its tables.
type Policy map[game.Observation]game.Action

// Action returns the policy's choice for obs, falling back to the first
// legal action for observations the policy never visited during training.
func (p Policy) Action(obs game.Observation, legal []game.Action) (game.Action, error) {
	if len(legal) == 0 {
		return 0, errors.Wrapf(ErrNoLegalActions, "observation %s", obs.Key())
	}
	if action, ok := p[obs]; ok {
		return action, nil
	}
	return legal[0], nil
}

// SelectAction implements Actor so a frozen policy can play hands directly.
func (p Policy) SelectAction(obs game.Observation, legal []game.Action) (game.Action, error) {
	return p.Action(obs, legal)
}
