// Command pep drives the polymorphic encryption and pseudonymisation pipeline from the shell:
// key generation, pseudonym derivation, context-scoped local conversion, and local decryption.
// Every result value is written to stdout so scripts can capture it; diagnostic labels go to
// stderr via zerolog.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
	With().Timestamp().Logger()

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "pep",
		Short:        "Polymorphic encryption and pseudonymisation over ristretto255",
		SilenceUsage: true,
	}

	root.AddCommand(
		newGenerateGlobalKeysCmd(),
		newGeneratePseudonymCmd(),
		newConvertToLocalPseudonymCmd(),
		newMakeLocalDecryptionKeyCmd(),
		newDecryptLocalPseudonymCmd(),
		newDeriveServerSecretCmd(),
	)
	return root
}

// printValue writes a value to stdout and, if label is non-empty, logs it to stderr first.
func printValue(label, value string) {
	if label != "" {
		logger.Info().Msg(label)
	}
	fmt.Println(value)
}
