package main

import (
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"okinoko-roshambo/contract"
)

// commitCmd computes the digest a player would submit during the move
// phase, from a choice name and a hex-encoded 32-byte salt.
func commitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commit <rock|paper|scissors> <salt-hex>",
		Short: "Compute the commitment digest for a choice under a salt",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			choice := contract.ParseChoice(args[0])
			if !choice.Legal() {
				return errors.Errorf("unknown choice %q", args[0])
			}
			raw, err := hex.DecodeString(args[1])
			if err != nil {
				return errors.Wrap(err, "decode salt")
			}
			var salt contract.Salt
			if len(raw) != len(salt) {
				return errors.Errorf("salt must be %d bytes, got %d", len(salt), len(raw))
			}
			copy(salt[:], raw)
			fmt.Fprintln(cmd.OutOrStdout(), contract.Commit(choice, salt))
			return nil
		},
	}
}
