package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cdl",
		Short: "Tooling for crystal description language files",
	}

	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newFmtCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
