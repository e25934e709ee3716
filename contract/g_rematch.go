package contract

import (
	"github.com/pkg/errors"

	"okinoko-roshambo/sdk"
)

// RequestRematch re-arms the caller for another round of the same pairing.
//
// After a draw both stakes are still escrowed: each side re-arms its own
// slot, and when both have re-armed the match restarts directly in the
// move phase with carried-over stakes.
//
// After a decided round the winner opens the offer: they reclaim the
// excess stake (leaving one stake escrowed for the next round), re-arm,
// and the loser's slot is marked RematchRequested. The loser's own
// RequestRematch accepts: the winner mark is cleared and the game returns
// to AwaitingStakes for the loser's fresh deposit.
func (c *Contract) RequestRematch(gameID uint64) error {
	env, g, side, err := c.loadFor(gameID)
	if err != nil {
		return err
	}
	if g.State != StateFinished {
		return wrongPhase(g)
	}
	mine := &g.Slots[side]
	theirs := &g.Slots[opponent(side)]

	if g.Winner == sdk.NullAddress {
		if mine.State == PlayerStaked {
			return errors.Wrapf(ErrAlreadyStaked, "game %d already re-armed by %s", g.ID, env.Sender)
		}
		mine.State = PlayerStaked
		mine.Commitment = NullDigest
		if theirs.State == PlayerStaked {
			g.State = StateAwaitingMoves
		}
		c.saveGame(g)
		if g.State == StateAwaitingMoves {
			c.emitGameStarted(g)
		}
		return nil
	}

	if env.Sender == g.Winner {
		if theirs.State == PlayerRematchRequested {
			return errors.Wrapf(ErrRematchPending, "game %d offer already open", g.ID)
		}
		mine.State = PlayerStaked
		mine.Commitment = NullDigest
		theirs.State = PlayerRematchRequested
		theirs.Commitment = NullDigest
		c.saveGame(g)
		return c.payout(g, g.Winner, g.Stake)
	}

	// The loser can only answer an open offer.
	if mine.State != PlayerRematchRequested {
		return errors.Wrapf(ErrNotWinner, "game %d, caller %s", g.ID, env.Sender)
	}
	mine.State = PlayerInitialized
	g.Winner = sdk.NullAddress
	g.State = StateAwaitingStakes
	c.saveGame(g)
	return nil
}

// RematchWithWinnings rolls the winner's pot forward: the stake doubles,
// the winner is cleared, and the caller's slot re-arms with the full
// winnings left in escrow as their next stake. No value moves. The loser
// must then deposit the doubled stake to play on.
func (c *Contract) RematchWithWinnings(gameID uint64) error {
	env, g, side, err := c.loadFor(gameID)
	if err != nil {
		return err
	}
	if g.State != StateFinished {
		return wrongPhase(g)
	}
	if g.Winner == sdk.NullAddress {
		return errors.Wrapf(ErrNotWinner, "game %d has no winner to roll forward", g.ID)
	}
	if env.Sender != g.Winner {
		return errors.Wrapf(ErrNotWinner, "game %d, caller %s", g.ID, env.Sender)
	}
	mine := &g.Slots[side]
	theirs := &g.Slots[opponent(side)]
	if theirs.State == PlayerRematchRequested {
		return errors.Wrapf(ErrRematchPending, "game %d offer already open", g.ID)
	}

	g.Stake *= 2
	g.Winner = sdk.NullAddress
	mine.State = PlayerStaked
	mine.Commitment = NullDigest
	theirs.State = PlayerInitialized
	theirs.Commitment = NullDigest
	g.State = StateAwaitingStakes
	c.saveGame(g)
	return nil
}
