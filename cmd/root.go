package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dramfinder",
	Short: "Backend for the dramfinder price-comparison extension",
	Long: "Backend service that syncs the BAXUS marketplace catalog and fuzzy-matches\n" +
		"scraped retail product names against it to find cheaper listings.",
	Example: `  dramfinder serve
  dramfinder sync`,
}

func init() {
	rootCmd.SilenceUsage = true
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
