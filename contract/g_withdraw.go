package contract

import (
	"github.com/pkg/errors"

	"okinoko-roshambo/sdk"
)

// Withdraw settles a finished game. A winner takes both stakes; a draw pays
// each side its own stake back in the one successful call. The record moves
// to Withdrawn before any transfer executes, so a re-entrant ledger only
// ever observes the committed terminal state, and a second withdraw is
// rejected rather than double-paid.
//
// An open rematch offer blocks withdrawal for both sides: the sides marked
// RematchRequested or re-armed to Staked have funds earmarked for the next
// round, not for release.
func (c *Contract) Withdraw(gameID uint64) error {
	env, g, _, err := c.loadFor(gameID)
	if err != nil {
		return err
	}
	if g.State != StateFinished {
		return wrongPhase(g)
	}

	if g.Stake == 0 {
		g.State = StateWithdrawn
		c.saveGame(g)
		return nil
	}

	for i := range g.Slots {
		if g.Slots[i].State == PlayerRematchRequested {
			return errors.Wrapf(ErrRematchPending, "game %d", g.ID)
		}
	}

	if g.Winner == sdk.NullAddress {
		// Draw. A slot re-armed to Staked is a rematch in progress and its
		// backing stake must stay escrowed.
		for i := range g.Slots {
			if g.Slots[i].State == PlayerStaked {
				return errors.Wrapf(ErrRematchPending, "game %d", g.ID)
			}
		}
		g.State = StateWithdrawn
		c.saveGame(g)
		if err := c.payout(g, g.Host, g.Stake); err != nil {
			return err
		}
		return c.payout(g, g.Guest, g.Stake)
	}

	if env.Sender != g.Winner {
		return errors.Wrapf(ErrNotWinner, "game %d, caller %s", g.ID, env.Sender)
	}
	g.State = StateWithdrawn
	c.saveGame(g)
	return c.payout(g, g.Winner, 2*g.Stake)
}

// WithdrawBeforeStart is the escape hatch for a stake that never reached a
// game: any participant can unwind a match that has not entered the reveal
// phase. Every side whose stake reached escrow is refunded independently.
func (c *Contract) WithdrawBeforeStart(gameID uint64) error {
	_, g, _, err := c.loadFor(gameID)
	if err != nil {
		return err
	}
	switch g.State {
	case StateCreated, StateAwaitingStakes, StateAwaitingMoves:
	default:
		return wrongPhase(g)
	}

	refundHost := g.Slots[hostSlot].State.funded()
	refundGuest := g.Slots[guestSlot].State.funded()
	g.State = StateWithdrawn
	c.saveGame(g)

	if refundHost {
		if err := c.payout(g, g.Host, g.Stake); err != nil {
			return err
		}
	}
	if refundGuest {
		return c.payout(g, g.Guest, g.Stake)
	}
	return nil
}
