package apperror

import "errors"

// ErrMoveRejected wraps every reason a move can be refused. A rejected move leaves the game untouched.
var ErrMoveRejected = errors.New("move rejected")

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrIllegalMove  = errors.New("illegal move")
	ErrKoRule       = errors.New("move would recreate the previous board")

	ErrInvalidDirection = errors.New("invalid direction")
	ErrNotYourMarble    = errors.New("cell does not hold your marble")
	ErrPushBlocked      = errors.New("marble is blocked from behind")
	ErrLineFull         = errors.New("line has no empty cell")
	ErrSelfPush         = errors.New("move would push off your own marble")
)

var (
	ErrUnknownPlayer  = errors.New("unknown player")
	ErrOutOfBounds    = errors.New("coordinate is out of board bounds")
	ErrInvalidPlayers = errors.New("invalid players")
	ErrInvalidState   = errors.New("invalid game state")
)
