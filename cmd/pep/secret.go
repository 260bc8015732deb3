package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/polyspora/pep/elgamal"
	"github.com/polyspora/pep/kdf"
)

// elgamalFromHexArg decodes a ciphertext CLI argument, logging and returning any decoding error.
func elgamalFromHexArg(h string) (elgamal.Ciphertext, error) {
	c, err := elgamal.FromHex(h)
	if err != nil {
		logger.Error().Err(err).Msg("invalid encrypted pseudonym")
		return elgamal.Ciphertext{}, err
	}
	return c, nil
}

func newDeriveServerSecretCmd() *cobra.Command {
	var outLen int

	cmd := &cobra.Command{
		Use:   "derive-server-secret <master-secret-hex> <subkey-id> <context>",
		Short: "Derive a server subkey from a master secret using Blake2b",
		Long: "Derives a subkey from a 32-byte master secret, a numeric subkey id, and a context " +
			"string. The same three inputs always reproduce the same subkey; this command carries " +
			"no opinion on how the master secret itself is stored or rotated.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := hex.DecodeString(args[0])
			if err != nil {
				logger.Error().Err(err).Msg("master secret must be 64 hex characters")
				return err
			}
			if len(raw) != kdf.MasterSecretSize {
				err := fmt.Errorf("master secret must be 64 hex characters")
				logger.Error().Err(err).Msg("master secret must be 64 hex characters")
				return err
			}
			var master [kdf.MasterSecretSize]byte
			copy(master[:], raw)

			subkeyID, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				logger.Error().Err(err).Msg("invalid subkey id")
				return err
			}

			subkey, err := kdf.DeriveSubkey(master, subkeyID, args[2], outLen)
			if err != nil {
				logger.Error().Err(err).Msg("failed to derive subkey")
				return err
			}
			printValue("derived subkey", hex.EncodeToString(subkey))
			return nil
		},
	}
	cmd.Flags().IntVar(&outLen, "length", 32, "length in bytes of the derived subkey")
	return cmd
}
