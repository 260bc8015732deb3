package main

import (
	"github.com/spf13/cobra"

	"github.com/polyspora/pep/group"
	"github.com/polyspora/pep/pep"
)

func newGenerateGlobalKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate-global-keys",
		Short: "Generate a fresh global public/secret key pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pk, sk, err := pep.GenerateGlobalKeys()
			if err != nil {
				logger.Error().Err(err).Msg("failed to generate global keys")
				return err
			}
			printValue("public global key", pk.Hex())
			printValue("secret global key", sk.Hex())
			return nil
		},
	}
}

func newMakeLocalDecryptionKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "make-local-decryption-key <global-secret-key> <server-secret> <decryption-context>",
		Short: "Derive a key a server can use to decrypt its own local pseudonyms",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			sk, err := group.ScalarFromHex(args[0])
			if err != nil {
				logger.Error().Err(err).Msg("invalid global secret key")
				return err
			}
			localSk := pep.MakeLocalDecryptionKey(sk, args[1], args[2])
			printValue("local decryption key", localSk.Hex())
			return nil
		},
	}
}
