package contract

import "github.com/pkg/errors"

// RevealMove discloses the caller's committed choice. The reveal must match
// the stored commitment exactly; a mismatch changes nothing. Revealing a
// void (non-playable) choice the caller genuinely committed to folds the
// round: both slots drop back to Staked with cleared commitments and the
// move phase restarts, stakes untouched.
//
// When the second legal reveal lands, the resolver runs and the game
// finishes in the same transition.
func (c *Contract) RevealMove(gameID uint64, choice Choice, salt Salt) error {
	env, g, side, err := c.loadFor(gameID)
	if err != nil {
		return err
	}
	if g.State != StateAwaitingReveals {
		return wrongPhase(g)
	}
	now := parseISO8601ToUnix(env.Timestamp)
	if g.Deadline != 0 && now > g.Deadline {
		return errors.Wrapf(ErrTooLate, "game %d", g.ID)
	}
	slot := &g.Slots[side]
	if slot.State == PlayerRevealed {
		return errors.Wrapf(ErrAlreadyRevealed, "game %d, caller %s", g.ID, env.Sender)
	}
	if Commit(choice, salt) != slot.Commitment {
		return errors.Wrapf(ErrCommitmentMismatch, "game %d, caller %s", g.ID, env.Sender)
	}

	if !choice.Legal() {
		for i := range g.Slots {
			g.Slots[i].State = PlayerStaked
			g.Slots[i].Commitment = NullDigest
		}
		g.State = StateAwaitingMoves
		g.Deadline = 0
		c.saveGame(g)
		c.emitMoveRevealed(env.Sender, g.ID, ChoiceNone)
		return nil
	}

	slot.Commitment = Canonical(choice)
	slot.State = PlayerRevealed

	finished := g.Slots[opponent(side)].State == PlayerRevealed
	if finished {
		w := resolveWinner(g.Slots[hostSlot].Commitment, g.Slots[guestSlot].Commitment)
		if w != drawSlot {
			g.Winner = g.player(w)
		}
		g.State = StateFinished
		g.Deadline = 0
	}
	c.saveGame(g)

	c.emitMoveRevealed(env.Sender, g.ID, choice)
	if finished {
		c.emitGameFinished(g)
	}
	return nil
}
