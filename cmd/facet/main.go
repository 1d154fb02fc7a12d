package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "facet",
		Short: "Attribute-based variant selection for component resolution",
		Long: `Facet selects exactly one variant of a component for a consumer's
requested attributes and capabilities, or explains why it cannot:
either no variant matches, or several do and none dominates.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		resolveCmd(),
		variantsCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		// Selection diagnostics are a literal-text contract; print them
		// verbatim, without a prefix.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
