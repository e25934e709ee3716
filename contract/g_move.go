package contract

import "github.com/pkg/errors"

// SubmitMove records the caller's commitment digest for this round. Once
// both sides have committed the game advances to the reveal phase and the
// move-phase deadline (if armed) is retired.
func (c *Contract) SubmitMove(gameID uint64, commitment Digest) error {
	env, g, side, err := c.loadFor(gameID)
	if err != nil {
		return err
	}
	if g.State != StateAwaitingMoves {
		return wrongPhase(g)
	}
	now := parseISO8601ToUnix(env.Timestamp)
	if g.Deadline != 0 && now > g.Deadline {
		return errors.Wrapf(ErrTooLate, "game %d", g.ID)
	}
	if commitment == NullDigest {
		return errors.Wrapf(ErrNullCommitment, "game %d", g.ID)
	}
	slot := &g.Slots[side]
	if slot.State == PlayerMoveSubmitted {
		return errors.Wrapf(ErrAlreadyMoved, "game %d, caller %s", g.ID, env.Sender)
	}

	slot.State = PlayerMoveSubmitted
	slot.Commitment = commitment
	if g.Slots[opponent(side)].State == PlayerMoveSubmitted {
		g.State = StateAwaitingReveals
		g.Deadline = 0
	}
	c.saveGame(g)

	c.emitMoveSubmitted(env.Sender, g.ID, commitment)
	return nil
}
