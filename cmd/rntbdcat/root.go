package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rntbdcat",
	Short: "Encode and decode RNTBD request-header frames",
	Long: `rntbdcat drives the Projector -> HeaderStream -> wire pipeline (and its
inverse) from the command line, for inspecting and debugging the RNTBD
request-header codec without a live replica connection.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.AddCommand(newEncodeCmd())
	rootCmd.AddCommand(newDecodeCmd())
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
