package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Xavierblaze6/sssp-algorithm/experiment"
)

func newBenchCmd() *cobra.Command {
	var (
		planPath string
		outPath  string
		source   int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run an experiment plan and write the results as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			if source < 0 {
				return fmt.Errorf("--source must be non-negative, got %d", source)
			}
			plan, err := experiment.LoadPlan(planPath)
			if err != nil {
				return err
			}

			runner := experiment.NewRunner(experiment.WithSource(source))
			report, err := runner.Run(cmd.Context(), plan)
			if err != nil {
				return err
			}

			var w io.Writer = os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := experiment.WriteCSV(w, report); err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"run_id":  report.RunID,
				"rows":    len(report.Records),
				"elapsed": report.Elapsed.String(),
				"out":     outPath,
			}).Info("bench complete")
			return nil
		},
	}

	cmd.Flags().StringVarP(&planPath, "plan", "p", "", "experiment plan YAML (required)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "CSV output path (default stdout)")
	cmd.Flags().IntVarP(&source, "source", "s", 0, "source vertex for every solve")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}
