// Package evaluation measures trained greedy policies against a
// uniform-random opponent and records the results.
package evaluation

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"kuhn/agent"
	"kuhn/engine"
	"kuhn/game"
)

// VsRandom estimates the win rate of a frozen policy holding the given seat
// against a uniform-random opponent over the given number of hands. The env
// is seeded with seed and the opponent with seed+seat+1, so a run is fully
// reproducible.
func VsRandom(policy agent.Policy, seat, games int, seed uint64) (float64, error) {
	if seat != 0 && seat != 1 {
		return 0, errors.Errorf("seat must be 0 or 1, got %d", seat)
	}
	if games <= 0 {
		return 0, errors.Errorf("games must be positive, got %d", games)
	}

	env := game.NewEnv(seed)
	opponent := agent.NewRandom(rand.New(rand.NewSource(seed + uint64(seat) + 1)))

	var actors [2]agent.Actor
	actors[seat] = policy
	actors[1-seat] = opponent

	wins := 0
	for i := 0; i < games; i++ {
		result, err := engine.PlayHand(env, actors)
		if err != nil {
			return 0, errors.Wrapf(err, "game %d", i+1)
		}
		if result.Winner == seat {
			wins++
		}
	}
	return float64(wins) / float64(games), nil
}
