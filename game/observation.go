package game

import "fmt"

// Observation is the information available to the acting player: their seat,
// their private card, and the public history. It never carries the
// opponent's card. The struct is comparable and is used directly as the
// lookup key in tabular value stores.
type Observation struct {
	Player  int
	Card    Card
	History string
}

// Key renders the observation for logs and reports. Seat, card and history
// are delimited so distinct observations can never collide.
func (o Observation) Key() string {
	return fmt.Sprintf("P%d:%s:%s", o.Player, o.Card, o.History)
}
