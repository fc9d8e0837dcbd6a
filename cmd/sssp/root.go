package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

// execute wires the command tree and runs it under ctx.
func execute(ctx context.Context) {
	rootCmd := &cobra.Command{
		Use:          "sssp",
		Short:        "Generate, solve and benchmark single-source shortest-path workloads",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newCompareCmd())
	rootCmd.AddCommand(newBenchCmd())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
