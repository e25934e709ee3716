package contract

import "github.com/pkg/errors"

// incentiveTimeout is the grace period a stalling counterparty gets after
// the first incentive claim, in seconds.
const incentiveTimeout uint64 = 3600

// Incentivize lets a party who already acted this phase force resolution
// against a stalled counterparty. Eligibility: the caller's slot is in the
// state this phase expects (committed during the move phase, revealed
// during the reveal phase) while the opponent's is not.
//
// The first eligible call arms the game's deadline one hour out. An
// eligible call before it passes is a no-op. An eligible call after it
// passes declares the caller the winner and finishes the game on the spot,
// bypassing reveal and resolution; the pot is then claimed via Withdraw.
func (c *Contract) Incentivize(gameID uint64) error {
	env, g, side, err := c.loadFor(gameID)
	if err != nil {
		return err
	}

	var expect PlayerState
	switch g.State {
	case StateAwaitingMoves:
		expect = PlayerMoveSubmitted
	case StateAwaitingReveals:
		expect = PlayerRevealed
	default:
		return wrongPhase(g)
	}
	if g.Slots[side].State != expect || g.Slots[opponent(side)].State == expect {
		return errors.Wrapf(ErrNotEligible, "game %d, caller %s", g.ID, env.Sender)
	}

	now := parseISO8601ToUnix(env.Timestamp)
	if g.Deadline == 0 {
		g.Deadline = now + incentiveTimeout
		c.saveGame(g)
		return nil
	}
	if now <= g.Deadline {
		return nil
	}

	g.Winner = g.player(side)
	g.State = StateFinished
	g.Deadline = 0
	c.saveGame(g)
	c.emitGameFinished(g)
	return nil
}
