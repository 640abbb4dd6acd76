package game

// Action is a single player decision, encoded as the byte appended to the
// hand history: 'p' check (pass), 'b' bet, 'c' call, 'f' fold.
type Action byte

const (
	Check Action = 'p'
	Bet   Action = 'b'
	Call  Action = 'c'
	Fold  Action = 'f'
)

func (a Action) String() string {
	switch a {
	case Check:
		return "check"
	case Bet:
		return "bet"
	case Call:
		return "call"
	case Fold:
		return "fold"
	default:
		return "?"
	}
}

// LegalActions returns the actions allowed after the given history. Legality
// is a pure function of the history alone: before any bet the player may
// check or bet, facing a bet the player may call or fold, and every other
// history is terminal with no legal actions.
func LegalActions(history string) []Action {
	switch history {
	case "", "p":
		return []Action{Check, Bet}
	case "b", "pb":
		return []Action{Call, Fold}
	default:
		return nil
	}
}
