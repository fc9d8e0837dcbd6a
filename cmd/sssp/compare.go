package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Xavierblaze6/sssp-algorithm/graphio"
	"github.com/Xavierblaze6/sssp-algorithm/hybrid"
)

func newCompareCmd() *cobra.Command {
	var (
		file      string
		source    int
		tolerance float64
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run both solvers over a graph and report disagreements",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !(tolerance >= 0) {
				return fmt.Errorf("--tolerance must be non-negative, got %g", tolerance)
			}
			g, err := graphio.Load(file)
			if err != nil {
				return err
			}

			cmp, err := hybrid.Compare(g, source, hybrid.WithTolerance(tolerance))
			if err != nil {
				return err
			}
			fmt.Println(cmp)
			log.WithFields(log.Fields{
				"dijkstra_ms": cmp.DijkstraDuration.Milliseconds(),
				"bmssp_ms":    cmp.BMSSPDuration.Milliseconds(),
			}).Debug("compare timings")

			for _, mm := range cmp.Mismatches {
				fmt.Printf("mismatch vertex=%d bmssp=%g dijkstra=%g\n", mm.Vertex, mm.BMSSP, mm.Dijkstra)
			}
			for _, v := range cmp.ExtraInBMSSP {
				fmt.Printf("extra vertex=%d\n", v)
			}
			if !cmp.Agree() {
				return fmt.Errorf("engines disagree on %d vertices", len(cmp.Mismatches)+len(cmp.ExtraInBMSSP))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "graph file in the text interchange format (required)")
	cmd.Flags().IntVarP(&source, "source", "s", 0, "source vertex")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 1e-9, "absolute distance tolerance")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
