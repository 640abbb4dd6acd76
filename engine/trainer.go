// Package engine drives hands of Kuhn poker: the self-play training loop
// that updates both seats' agents from episode outcomes, and single-hand
// playouts between fixed actors.
package engine

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"kuhn/agent"
	"kuhn/config"
	"kuhn/game"
)

// ErrMissingWinner reports a terminal step without a winner. It means the
// state machine broke its contract; there is no recovery.
var ErrMissingWinner = errors.New("episode finished without a winner")

// ErrMissingObservation reports a non-terminal step without a next
// observation, the other half of the same contract.
var ErrMissingObservation = errors.New("no observation before the episode finished")

// Result aggregates a training run for reporting. The counters have no
// effect on training dynamics.
type Result struct {
	Wins     [2]int
	Episodes int
}

// WinRate returns the fraction of episodes won by seat.
func (r Result) WinRate(seat int) float64 {
	total := r.Wins[0] + r.Wins[1]
	if total == 0 {
		return 0
	}
	return float64(r.Wins[seat]) / float64(total)
}

// visit is one recorded (observation, action) pair of a trajectory.
type visit struct {
	obs    game.Observation
	action game.Action
}

// Trainer runs self-play episodes between two independently owned tabular
// agents. Episodes are fully sequential; the two value tables are disjoint.
type Trainer struct {
	cfg    config.Train
	env    *game.Env
	agents [2]*agent.Tabular
	wins   [2]int
}

// NewTrainer wires an env and two agents from one base seed: the deck uses
// seed, seat 0's exploration seed+1, seat 1's seed+2. With cfg.Seed == 0 the
// base seed comes from the clock and runs are not reproducible.
func NewTrainer(cfg config.Train) *Trainer {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Trainer{
		cfg: cfg,
		env: game.NewEnv(seed),
		agents: [2]*agent.Tabular{
			agent.NewTabular(cfg.Epsilon, rand.New(rand.NewSource(seed+1))),
			agent.NewTabular(cfg.Epsilon, rand.New(rand.NewSource(seed+2))),
		},
	}
}

// Agents exposes the two seats' agents, e.g. to derive policies after a run.
func (t *Trainer) Agents() [2]*agent.Tabular {
	return t.agents
}

// GreedyPolicies snapshots both seats' greedy policies.
func (t *Trainer) GreedyPolicies() [2]agent.Policy {
	return [2]agent.Policy{t.agents[0].GreedyPolicy(), t.agents[1].GreedyPolicy()}
}

// Run executes the configured number of episodes. After every episode both
// agents' exploration rates decay toward the configured floor, and progress
// is logged every ReportEvery episodes (0 disables).
func (t *Trainer) Run() (Result, error) {
	for episode := 1; episode <= t.cfg.Episodes; episode++ {
		winner, err := t.runEpisode()
		if err != nil {
			return Result{}, errors.Wrapf(err, "episode %d", episode)
		}
		t.wins[winner]++

		for _, a := range t.agents {
			a.Decay(t.cfg.EpsilonDecay, t.cfg.MinEpsilon)
		}

		if t.cfg.ReportEvery > 0 && episode%t.cfg.ReportEvery == 0 {
			total := t.wins[0] + t.wins[1]
			log.Info().
				Int("episode", episode).
				Int("p0_wins", t.wins[0]).
				Int("p1_wins", t.wins[1]).
				Float64("p0_win_rate", float64(t.wins[0])/float64(total)).
				Float64("epsilon", t.agents[0].Epsilon()).
				Msg("training progress")
		}
	}
	return Result{Wins: t.wins, Episodes: t.cfg.Episodes}, nil
}

// runEpisode plays one hand to termination, recording each seat's
// (observation, action) pairs, then propagates the terminal outcome over
// both full trajectories: +1 to every pair of the winning seat, -1 to every
// pair of the losing seat.
func (t *Trainer) runEpisode() (int, error) {
	obs := t.env.Reset()
	var trajectories [2][]visit

	for {
		seat := obs.Player
		legal := t.env.LegalActions()
		action, err := t.agents[seat].SelectAction(obs, legal)
		if err != nil {
			return 0, err
		}
		trajectories[seat] = append(trajectories[seat], visit{obs: obs, action: action})

		result, err := t.env.Step(action)
		if err != nil {
			return 0, err
		}

		if result.Done {
			if result.Winner == game.NoWinner {
				return 0, errors.Wrapf(ErrMissingWinner, "history %q", result.History)
			}
			for seat := range trajectories {
				reward := -1.0
				if seat == result.Winner {
					reward = 1.0
				}
				for _, v := range trajectories[seat] {
					t.agents[seat].Update(v.obs, v.action, reward)
				}
			}
			return result.Winner, nil
		}

		if result.Obs == nil {
			return 0, errors.Wrapf(ErrMissingObservation, "history %q", result.History)
		}
		obs = *result.Obs
	}
}
