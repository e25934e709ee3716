package contract

import "github.com/pkg/errors"

// Stake deposits the caller's stake for the game into escrow. When both
// sides have staked the match starts; until then the game waits in
// AwaitingStakes. Zero-stake (practice) games skip the ledger entirely but
// still walk the same transitions.
func (c *Contract) Stake(gameID uint64) error {
	env, g, side, err := c.loadFor(gameID)
	if err != nil {
		return err
	}
	if g.State != StateCreated && g.State != StateAwaitingStakes {
		return wrongPhase(g)
	}
	slot := &g.Slots[side]
	if slot.State != PlayerInitialized {
		return errors.Wrapf(ErrAlreadyStaked, "game %d, caller %s", g.ID, env.Sender)
	}

	if err := c.deposit(env.Sender, g.Stake); err != nil {
		return err
	}

	slot.State = PlayerStaked
	if g.Slots[hostSlot].State == PlayerStaked && g.Slots[guestSlot].State == PlayerStaked {
		g.State = StateAwaitingMoves
	} else {
		g.State = StateAwaitingStakes
	}
	c.saveGame(g)

	if g.State == StateAwaitingMoves {
		c.emitGameStarted(g)
	}
	return nil
}
