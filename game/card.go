package game

// Card is one of the three Kuhn poker cards. The declaration order is the
// hand-strength order: a higher value beats a lower one.
type Card int

const (
	Jack Card = iota
	Queen
	King
)

var cardNames = [...]string{"J", "Q", "K"}

func (c Card) String() string {
	if c < Jack || c > King {
		return "?"
	}
	return cardNames[c]
}

// Deck returns the full three-card deck in rank order.
func Deck() []Card {
	return []Card{Jack, Queen, King}
}
