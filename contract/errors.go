package contract

import "github.com/pkg/errors"

// Every precondition failure is a synchronous, atomic rejection: the call
// has no effect and reports one of these reasons. Callers match with
// errors.Is; the wrapped message carries the call-site specifics.
var (
	ErrUnknownGame         = errors.New("unknown game id")
	ErrNotOwner            = errors.New("caller is not the instance owner")
	ErrNotParticipant      = errors.New("caller is not a participant of this game")
	ErrWrongPhase          = errors.New("wrong phase for this operation")
	ErrBadGuest            = errors.New("invalid guest")
	ErrGameLive            = errors.New("existing game for this guest is not withdrawn")
	ErrAlreadyStaked       = errors.New("stake already deposited")
	ErrBadAllowance        = errors.New("allowance must equal the stake exactly")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNullCommitment      = errors.New("null commitment")
	ErrAlreadyMoved        = errors.New("move already submitted")
	ErrAlreadyRevealed     = errors.New("move already revealed")
	ErrCommitmentMismatch  = errors.New("commitment mismatch")
	ErrTooLate             = errors.New("incentive deadline passed")
	ErrNotWinner           = errors.New("caller is not the winner")
	ErrRematchPending      = errors.New("rematch pending")
	ErrNotEligible         = errors.New("not eligible to incentivize")
	ErrTransferFailed      = errors.New("ledger transfer failed")
	ErrCorruptState        = errors.New("corrupt stored state")
)

func wrongPhase(g *Game) error {
	return errors.Wrapf(ErrWrongPhase, "game %d is %s", g.ID, g.State)
}

func wrapUnknown(id uint64) error {
	return errors.Wrapf(ErrUnknownGame, "id %d", id)
}
