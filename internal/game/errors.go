package game

import "errors"

var (
	ErrNotYourTurn      = errors.New("not your turn")
	ErrNotBettingPhase  = errors.New("no betting in this phase")
	ErrCannotAct        = errors.New("player cannot act")
	ErrCannotCheck      = errors.New("cannot check facing a bet")
	ErrNothingToCall    = errors.New("nothing to call")
	ErrRaiseTooSmall    = errors.New("raise below minimum")
	ErrRaiseTooLarge    = errors.New("raise exceeds chip stack")
	ErrHandInProgress   = errors.New("hand still in progress")
	ErrNotEnoughPlayers = errors.New("not enough players with chips")
	ErrNoSuchSeat       = errors.New("no such seat")
)
