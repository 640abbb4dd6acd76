// Package agent holds the tabular Monte Carlo learner and the opponents it
// is trained and evaluated against.
package agent

import (
	"github.com/pkg/errors"

	"kuhn/game"
)

// ErrNoLegalActions is returned when an actor is asked to choose from an
// empty legal set. That only happens when the caller breaks the protocol
// with the state machine.
var ErrNoLegalActions = errors.New("no legal actions")

// Actor selects one of the legal actions for an observation.
type Actor interface {
	SelectAction(obs game.Observation, legal []game.Action) (game.Action, error)
}
