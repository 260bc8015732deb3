package main

import (
	"github.com/spf13/cobra"

	"github.com/polyspora/pep/group"
	"github.com/polyspora/pep/pep"
)

func newGeneratePseudonymCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate-pseudonym <identity> <global-public-key>",
		Short: "Generate an encrypted global pseudonym for an identity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pk, err := group.ElementFromHex(args[1])
			if err != nil {
				logger.Error().Err(err).Msg("invalid global public key")
				return err
			}
			enc, err := pep.GeneratePseudonym(args[0], pk)
			if err != nil {
				logger.Error().Err(err).Msg("failed to generate pseudonym")
				return err
			}
			printValue("encrypted global pseudonym", enc.Hex())
			return nil
		},
	}
}

func newConvertToLocalPseudonymCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert-to-local-pseudonym <pseudonym> <server-secret> <decryption-context> <pseudonymisation-context>",
		Short: "Convert a global encrypted pseudonym to the form local to one server",
		Long: "Converts a global encrypted pseudonym to a local encrypted pseudonym, decryptable by " +
			"anybody holding the key produced by make-local-decryption-key with the same decryption " +
			"context. The pseudonym is stable across calls given the same pseudonymisation context. " +
			"The server secret should be a random string so the derived factors are not guessable.",
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := elgamalFromHexArg(args[0])
			if err != nil {
				return err
			}
			local, err := pep.ConvertToLocalPseudonym(enc, args[1], args[2], args[3])
			if err != nil {
				logger.Error().Err(err).Msg("failed to convert pseudonym")
				return err
			}
			local, err = pep.RerandomizeLocal(local)
			if err != nil {
				logger.Error().Err(err).Msg("failed to rerandomize local pseudonym")
				return err
			}
			printValue("local encrypted pseudonym", local.Hex())
			return nil
		},
	}
}

func newDecryptLocalPseudonymCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt-local-pseudonym <pseudonym> <local-decryption-key>",
		Short: "Decrypt a local encrypted pseudonym with a matching local decryption key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := elgamalFromHexArg(args[0])
			if err != nil {
				return err
			}
			sk, err := group.ScalarFromHex(args[1])
			if err != nil {
				logger.Error().Err(err).Msg("invalid local decryption key")
				return err
			}
			p, err := pep.DecryptLocalPseudonym(enc, sk)
			if err != nil {
				logger.Error().Err(err).Msg("failed to decrypt local pseudonym")
				return err
			}
			printValue("decrypted local pseudonym", p.Hex())
			return nil
		},
	}
}
