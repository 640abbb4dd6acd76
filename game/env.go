package game

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// NoWinner marks a StepResult for a hand that is still live.
const NoWinner = -1

// StepResult is everything Step reports back to the caller: the next
// observation (nil once the hand is over), the immediate reward from the
// acting player's perspective, the terminal flag, and the winner's seat plus
// the final history once terminal.
type StepResult struct {
	Obs     *Observation
	Reward  float64
	Done    bool
	Winner  int
	History string
}

// Env is one hand of two-player Kuhn poker. Each player antes one chip,
// holds one of three cards, and at most one bet is made per hand. The env
// owns its random source; deals are reproducible given the seed.
type Env struct {
	rng     *rand.Rand
	cards   [2]Card
	history string
	current int
	done    bool
}

// NewEnv returns an env with its own generator seeded by seed. There is no
// global randomness anywhere in the package.
func NewEnv(seed uint64) *Env {
	return &Env{rng: rand.New(rand.NewSource(seed))}
}

// Reseed rebases the env's generator so that subsequent deals replay
// deterministically.
func (e *Env) Reseed(seed uint64) {
	e.rng.Seed(seed)
}

// Reset starts a new hand: shuffle the three-card deck, deal the top two
// cards, clear the history, player 0 to act.
func (e *Env) Reset() Observation {
	deck := Deck()
	e.rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	e.cards = [2]Card{deck[0], deck[1]}
	e.history = ""
	e.current = 0
	e.done = false
	return e.observation()
}

// ResetWithDeal starts a new hand with a forced deal instead of a shuffle.
// Each seat must hold a distinct card.
func (e *Env) ResetWithDeal(p0, p1 Card) (Observation, error) {
	if p0 == p1 {
		return Observation{}, errors.Wrapf(ErrSameCards, "card %s", p0)
	}
	e.cards = [2]Card{p0, p1}
	e.history = ""
	e.current = 0
	e.done = false
	return e.observation(), nil
}

// LegalActions returns the actions open to the acting player, or nil once
// the hand is over.
func (e *Env) LegalActions() []Action {
	if e.done {
		return nil
	}
	return LegalActions(e.history)
}

// Step applies an action for the acting player. The returned reward is from
// that player's perspective: +1 for an immediate win, -1 for a loss, 0 while
// the hand continues.
func (e *Env) Step(action Action) (StepResult, error) {
	if e.done {
		return StepResult{}, errors.Wrapf(ErrHandOver, "history %q", e.history)
	}
	if !legal(action, e.LegalActions()) {
		return StepResult{}, errors.Wrapf(ErrIllegalAction, "%s for history %q", action, e.history)
	}

	reward := 0.0
	winner := NoWinner

	switch action {
	case Check:
		e.history += string(Check)
		if e.history == "pp" {
			winner = e.compareCards()
			reward = payoff(winner, e.current)
		}
	case Bet:
		e.history += string(Bet)
	case Call:
		e.history += string(Call)
		winner = e.compareCards()
		reward = payoff(winner, e.current)
	case Fold:
		e.history += string(Fold)
		winner = 1 - e.current
		reward = -1.0
	}

	if winner != NoWinner {
		e.done = true
		return StepResult{Reward: reward, Done: true, Winner: winner, History: e.history}, nil
	}

	e.current = 1 - e.current
	obs := e.observation()
	return StepResult{Obs: &obs, Winner: NoWinner, History: e.history}, nil
}

// Done reports whether the current hand has terminated.
func (e *Env) Done() bool {
	return e.done
}

// History returns the public action history of the current hand.
func (e *Env) History() string {
	return e.history
}

// CurrentPlayer returns the seat to act.
func (e *Env) CurrentPlayer() int {
	return e.current
}

// compareCards returns the seat holding the stronger card. Equal strength
// cannot happen with three distinct cards; the branch defensively awards
// seat 0 so the comparison stays deterministic.
func (e *Env) compareCards() int {
	if e.cards[1] > e.cards[0] {
		return 1
	}
	return 0
}

func (e *Env) observation() Observation {
	return Observation{
		Player:  e.current,
		Card:    e.cards[e.current],
		History: e.history,
	}
}

func payoff(winner, actor int) float64 {
	if winner == actor {
		return 1.0
	}
	return -1.0
}

func legal(action Action, legalSet []Action) bool {
	for _, a := range legalSet {
		if a == action {
			return true
		}
	}
	return false
}
