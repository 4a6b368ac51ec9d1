// Package cli implements the ecmctl command tree.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ecmctl",
	Short: "Inspect and validate Firefly ECM adapter configurations",
	Long: `ecmctl works offline against the built-in adapter metadata registry.

It lists the known adapter technologies and capability contracts, and
validates a YAML adapter configuration before the application boots with it.`,
	// SilenceUsage is set so errors we report (invalid config, unknown
	// adapter) do not dump the usage text.
	SilenceUsage: true,
}

// SetVersion sets the version reported by the root command.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute runs the command tree. It is called once from main.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "ecmctl version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newAdaptersCmd())
	rootCmd.AddCommand(newCapabilitiesCmd())
	rootCmd.AddCommand(newValidateCmd())
}
