package game

import "github.com/pkg/errors"

var (
	// ErrHandOver is returned by Step once the hand has terminated.
	ErrHandOver = errors.New("hand already over")
	// ErrIllegalAction is returned by Step for an action outside the
	// current legal set.
	ErrIllegalAction = errors.New("illegal action")
	// ErrSameCards is returned by ResetWithDeal when both seats are given
	// the same card.
	ErrSameCards = errors.New("both players dealt the same card")
)
