package agent

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"kuhn/game"
)

// Random plays uniformly over the legal set. It is the baseline opponent
// for policy evaluation.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a uniform-random actor with its own generator.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

// SelectAction implements Actor.
func (r *Random) SelectAction(obs game.Observation, legal []game.Action) (game.Action, error) {
	if len(legal) == 0 {
		return 0, errors.Wrapf(ErrNoLegalActions, "observation %s", obs.Key())
	}
	return legal[r.rng.Intn(len(legal))], nil
}
