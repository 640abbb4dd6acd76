package engine

import (
	"github.com/pkg/errors"

	"kuhn/agent"
	"kuhn/game"
)

// HandResult is the outcome of a single played hand.
type HandResult struct {
	Winner  int
	History string
}

// PlayHand resets the env and plays one hand to termination with the given
// actor per seat. Used for the post-training sample hand and for evaluation
// matches.
func PlayHand(env *game.Env, actors [2]agent.Actor) (HandResult, error) {
	obs := env.Reset()
	for {
		legal := env.LegalActions()
		action, err := actors[obs.Player].SelectAction(obs, legal)
		if err != nil {
			return HandResult{}, err
		}

		result, err := env.Step(action)
		if err != nil {
			return HandResult{}, err
		}
		if result.Done {
			if result.Winner == game.NoWinner {
				return HandResult{}, errors.Wrapf(ErrMissingWinner, "history %q", result.History)
			}
			return HandResult{Winner: result.Winner, History: result.History}, nil
		}
		if result.Obs == nil {
			return HandResult{}, errors.Wrapf(ErrMissingObservation, "history %q", result.History)
		}
		obs = *result.Obs
	}
}
