package main

import (
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"okinoko-roshambo/contract"
	"okinoko-roshambo/sdk"
)

const escrowAccount = sdk.Address("contract:roshambo")

// demoCmd plays one full escrowed match end to end against an in-memory
// host: create, stake both sides, commit, reveal, withdraw.
func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Play one full escrowed match locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd)
		},
	}
}

func runDemo(cmd *cobra.Command) error {
	host := sdk.Address(cfg.Host)
	guest := sdk.Address(cfg.Guest)

	chain := sdk.NewMemoryChain(clock.New(), logger)
	ledger := sdk.NewMemoryLedger(escrowAccount)
	ledger.Mint(host, cfg.Funding)
	ledger.Mint(guest, cfg.Funding)

	chain.SetSender(host)
	c := contract.New(chain, ledger, escrowAccount, host, logger)

	id, err := c.CreateGame(guest, cfg.Stake)
	if err != nil {
		return err
	}
	logger.Info().Uint64("game", id).Uint64("stake", cfg.Stake).Msg("game created")

	for _, player := range []sdk.Address{host, guest} {
		chain.SetSender(player)
		ledger.Approve(player, escrowAccount, cfg.Stake)
		if err := c.Stake(id); err != nil {
			return err
		}
	}

	hostChoice, guestChoice := contract.Rock, contract.Scissors
	hostSalt, guestSalt := newSalt(), newSalt()

	chain.SetSender(host)
	if err := c.SubmitMove(id, contract.Commit(hostChoice, hostSalt)); err != nil {
		return err
	}
	chain.SetSender(guest)
	if err := c.SubmitMove(id, contract.Commit(guestChoice, guestSalt)); err != nil {
		return err
	}

	chain.SetSender(host)
	if err := c.RevealMove(id, hostChoice, hostSalt); err != nil {
		return err
	}
	chain.SetSender(guest)
	if err := c.RevealMove(id, guestChoice, guestSalt); err != nil {
		return err
	}

	snap, err := c.Snapshot(id)
	if err != nil {
		return err
	}
	if snap.Winner == sdk.NullAddress {
		fmt.Fprintln(cmd.OutOrStdout(), "round drawn")
		return nil
	}

	chain.SetSender(snap.Winner)
	if err := c.Withdraw(id); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "winner: %s (%s vs %s)\n", snap.Winner, hostChoice, guestChoice)
	fmt.Fprintf(cmd.OutOrStdout(), "balances: %s=%d %s=%d escrow=%d\n",
		host, ledger.BalanceOf(host),
		guest, ledger.BalanceOf(guest),
		ledger.BalanceOf(escrowAccount))
	return nil
}

// newSalt draws a fresh 32-byte blinder from two random UUIDs.
func newSalt() contract.Salt {
	var s contract.Salt
	a, b := uuid.New(), uuid.New()
	copy(s[:16], a[:])
	copy(s[16:], b[:])
	return s
}
