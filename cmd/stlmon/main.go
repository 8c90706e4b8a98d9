// Command stlmon streams causation-optimized STL robustness bounds for a
// trace read from a CSV file, against a formula and horizon read from a
// YAML config file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd.AddCommand(monitorCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stlmon",
	Short: "Online STL monitor with causation-optimized robustness bounds",
	Long:  `stlmon evaluates a Signal Temporal Logic formula against a streaming trace, emitting sound (upper, lower) robustness bounds after every sample.`,
}
