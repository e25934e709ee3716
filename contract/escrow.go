package contract

import (
	"github.com/pkg/errors"

	"okinoko-roshambo/sdk"
)

// Escrow adapter: the only two places value crosses the ledger boundary.

// deposit pulls exactly amount from player into the escrow account. The
// pre-authorized allowance must equal the stake exactly; over- or
// under-authorization is rejected rather than clamped, so a player can
// never be drawn for more than they signed off on this specific round.
func (c *Contract) deposit(player sdk.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	if a := c.ledger.Allowance(player, c.self); a != amount {
		return errors.Wrapf(ErrBadAllowance, "allowance %d, stake %d", a, amount)
	}
	if b := c.ledger.BalanceOf(player); b < amount {
		return errors.Wrapf(ErrInsufficientBalance, "balance %d, stake %d", b, amount)
	}
	if !c.ledger.TransferFrom(player, c.self, amount) {
		return errors.Wrapf(ErrTransferFailed, "deposit of %d from %s", amount, player)
	}
	return nil
}

// payout pushes amount from escrow to the recipient and emits the
// funds-withdrawn notification. Callers commit their state transition
// before invoking this: the ledger is untrusted and may call back.
func (c *Contract) payout(g *Game, to sdk.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	if !c.ledger.Transfer(to, amount) {
		return errors.Wrapf(ErrTransferFailed, "payout of %d to %s", amount, to)
	}
	c.emitFundsWithdrawn(to, g.ID, amount)
	return nil
}
