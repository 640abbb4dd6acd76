package game

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestLegalActions(t *testing.T) {
	cases := []struct {
		history string
		want    []Action
	}{
		{"", []Action{Check, Bet}},
		{"p", []Action{Check, Bet}},
		{"b", []Action{Call, Fold}},
		{"pb", []Action{Call, Fold}},
		{"pp", nil},
		{"bc", nil},
		{"bf", nil},
		{"pbc", nil},
		{"pbf", nil},
	}
	for _, c := range cases {
		require.Equal(t, c.want, LegalActions(c.history), "history %q", c.history)
	}
}

func TestReset(t *testing.T) {
	t.Run("deals two distinct cards with player 0 to act", func(t *testing.T) {
		env := NewEnv(1)
		for i := 0; i < 50; i++ {
			obs := env.Reset()
			require.Equal(t, 0, obs.Player)
			require.Empty(t, obs.History)
			require.NotEqual(t, env.cards[0], env.cards[1])
			require.Equal(t, env.cards[0], obs.Card)
		}
	})

	t.Run("same seed replays the same deals", func(t *testing.T) {
		a := NewEnv(7)
		b := NewEnv(7)
		for i := 0; i < 20; i++ {
			a.Reset()
			b.Reset()
			require.Equal(t, a.cards, b.cards)
		}
	})

	t.Run("reseed makes subsequent deals reproducible", func(t *testing.T) {
		env := NewEnv(1)
		env.Reseed(99)
		first := [][2]Card{}
		for i := 0; i < 10; i++ {
			env.Reset()
			first = append(first, env.cards)
		}
		env.Reseed(99)
		for i := 0; i < 10; i++ {
			env.Reset()
			require.Equal(t, first[i], env.cards)
		}
	})
}

func TestResetWithDeal(t *testing.T) {
	env := NewEnv(1)

	obs, err := env.ResetWithDeal(Queen, Jack)
	require.NoError(t, err)
	require.Equal(t, Observation{Player: 0, Card: Queen, History: ""}, obs)

	_, err = env.ResetWithDeal(King, King)
	require.ErrorIs(t, errors.Cause(err), ErrSameCards)
}

func TestStepErrors(t *testing.T) {
	t.Run("rejects illegal actions", func(t *testing.T) {
		env := NewEnv(1)
		env.Reset()
		_, err := env.Step(Call)
		require.ErrorIs(t, errors.Cause(err), ErrIllegalAction)

		_, err = env.Step(Fold)
		require.ErrorIs(t, errors.Cause(err), ErrIllegalAction)
	})

	t.Run("rejects steps after the hand is over", func(t *testing.T) {
		env := NewEnv(1)
		_, err := env.ResetWithDeal(King, Jack)
		require.NoError(t, err)

		_, err = env.Step(Bet)
		require.NoError(t, err)
		result, err := env.Step(Fold)
		require.NoError(t, err)
		require.True(t, result.Done)
		require.True(t, env.Done())

		_, err = env.Step(Check)
		require.ErrorIs(t, errors.Cause(err), ErrHandOver)
		require.Empty(t, env.LegalActions())
	})
}

func TestStepShowdowns(t *testing.T) {
	t.Run("two checks: higher card wins", func(t *testing.T) {
		env := NewEnv(1)
		_, err := env.ResetWithDeal(King, Jack)
		require.NoError(t, err)

		result, err := env.Step(Check)
		require.NoError(t, err)
		require.False(t, result.Done)
		require.Zero(t, result.Reward)
		require.Equal(t, NoWinner, result.Winner)
		require.NotNil(t, result.Obs)
		require.Equal(t, Observation{Player: 1, Card: Jack, History: "p"}, *result.Obs)

		result, err = env.Step(Check)
		require.NoError(t, err)
		require.True(t, result.Done)
		require.Nil(t, result.Obs)
		require.Equal(t, 0, result.Winner)
		require.Equal(t, -1.0, result.Reward, "acting player 1 lost the showdown")
		require.Equal(t, "pp", result.History)
	})

	t.Run("check bet call: higher card wins", func(t *testing.T) {
		env := NewEnv(1)
		_, err := env.ResetWithDeal(Queen, King)
		require.NoError(t, err)

		for _, a := range []Action{Check, Bet} {
			result, err := env.Step(a)
			require.NoError(t, err)
			require.False(t, result.Done)
		}
		result, err := env.Step(Call)
		require.NoError(t, err)
		require.True(t, result.Done)
		require.Equal(t, 1, result.Winner)
		require.Equal(t, -1.0, result.Reward, "caller holds the weaker card")
		require.Equal(t, "pbc", result.History)
	})

	t.Run("bet call: higher card wins", func(t *testing.T) {
		env := NewEnv(1)
		_, err := env.ResetWithDeal(King, Queen)
		require.NoError(t, err)

		result, err := env.Step(Bet)
		require.NoError(t, err)
		require.False(t, result.Done)

		result, err = env.Step(Call)
		require.NoError(t, err)
		require.True(t, result.Done)
		require.Equal(t, 0, result.Winner)
		require.Equal(t, -1.0, result.Reward)
		require.Equal(t, "bc", result.History)
	})
}

func TestStepFold(t *testing.T) {
	t.Run("folding loses regardless of cards", func(t *testing.T) {
		// Seat 1 folds holding the King: cards must not matter.
		env := NewEnv(1)
		_, err := env.ResetWithDeal(Jack, King)
		require.NoError(t, err)

		_, err = env.Step(Bet)
		require.NoError(t, err)
		result, err := env.Step(Fold)
		require.NoError(t, err)
		require.True(t, result.Done)
		require.Equal(t, 0, result.Winner)
		require.Equal(t, -1.0, result.Reward)
		require.Equal(t, "bf", result.History)
	})

	t.Run("bet then fold awards seat 0", func(t *testing.T) {
		env := NewEnv(1)
		_, err := env.ResetWithDeal(Jack, Queen)
		require.NoError(t, err)

		_, err = env.Step(Bet)
		require.NoError(t, err)
		result, err := env.Step(Fold)
		require.NoError(t, err)
		require.Equal(t, 0, result.Winner)
	})

	t.Run("check bet fold awards the bettor", func(t *testing.T) {
		env := NewEnv(1)
		_, err := env.ResetWithDeal(King, Jack)
		require.NoError(t, err)

		_, err = env.Step(Check)
		require.NoError(t, err)
		_, err = env.Step(Bet)
		require.NoError(t, err)
		result, err := env.Step(Fold)
		require.NoError(t, err)
		require.True(t, result.Done)
		require.Equal(t, 1, result.Winner, "seat 0 folded to the bet")
		require.Equal(t, "pbf", result.History)
	})
}

// Every legal playout must end with exactly one winner and a terminal reward
// of +1 when the last actor won, -1 otherwise.
func TestZeroSumOverAllPlayouts(t *testing.T) {
	deals := [][2]Card{
		{Jack, Queen}, {Jack, King}, {Queen, Jack},
		{Queen, King}, {King, Jack}, {King, Queen},
	}
	playouts := [][]Action{
		{Check, Check},
		{Check, Bet, Call},
		{Check, Bet, Fold},
		{Bet, Call},
		{Bet, Fold},
	}

	env := NewEnv(1)
	for _, deal := range deals {
		for _, playout := range playouts {
			_, err := env.ResetWithDeal(deal[0], deal[1])
			require.NoError(t, err)

			var last StepResult
			lastActor := -1
			for _, a := range playout {
				lastActor = env.CurrentPlayer()
				last, err = env.Step(a)
				require.NoError(t, err)
			}
			require.True(t, last.Done)
			require.Contains(t, []int{0, 1}, last.Winner)
			if last.Winner == lastActor {
				require.Equal(t, 1.0, last.Reward)
			} else {
				require.Equal(t, -1.0, last.Reward)
			}
		}
	}
}

func TestCompareCards(t *testing.T) {
	env := NewEnv(1)

	env.cards = [2]Card{King, Jack}
	require.Equal(t, 0, env.compareCards())

	env.cards = [2]Card{Jack, Queen}
	require.Equal(t, 1, env.compareCards())

	// Dead branch with three distinct cards: equal strength defaults to
	// seat 0 so the comparison stays deterministic.
	env.cards = [2]Card{Queen, Queen}
	require.Equal(t, 0, env.compareCards())
}
