package main

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Xavierblaze6/sssp-algorithm/bmssp"
	"github.com/Xavierblaze6/sssp-algorithm/graphio"
	"github.com/Xavierblaze6/sssp-algorithm/hybrid"
)

func newSolveCmd() *cobra.Command {
	var (
		file      string
		source    int
		useHybrid bool
		stats     bool
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Load a graph and compute shortest paths from a source vertex",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.Load(file)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{"path": file, "n": g.VertexCount(), "m": g.EdgeCount()}).Debug("graph loaded")

			var dist map[int]float64
			if useHybrid {
				if timeout <= 0 {
					return fmt.Errorf("--timeout must be positive, got %s", timeout)
				}
				res, err := hybrid.Solve(cmd.Context(), g, source, hybrid.WithTimeout(timeout))
				if err != nil {
					return err
				}
				dist = res.Dist
				if stats {
					fmt.Printf("engine=%s degraded=%v filled=%d primary=%s fallback=%s\n",
						res.Engine, res.Degraded, res.Filled, res.PrimaryDuration, res.FallbackDuration)
					if res.Diag != nil {
						fmt.Println(res.Diag.String())
					}
					return nil
				}
			} else {
				res, err := bmssp.Solve(g, source)
				if err != nil {
					return err
				}
				dist = res.Dist
				if stats {
					fmt.Println(res.Diag.String())
					return nil
				}
			}

			vertices := make([]int, 0, len(dist))
			for v := range dist {
				vertices = append(vertices, v)
			}
			sort.Ints(vertices)
			for _, v := range vertices {
				fmt.Printf("%d %s\n", v, strconv.FormatFloat(dist[v], 'g', -1, 64))
			}
			log.WithFields(log.Fields{"reached": len(dist), "n": g.VertexCount()}).Info("solve finished")
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "graph file in the text interchange format (required)")
	cmd.Flags().IntVarP(&source, "source", "s", 0, "source vertex")
	cmd.Flags().BoolVar(&useHybrid, "hybrid", false, "run the budgeted hybrid instead of the bare recursion")
	cmd.Flags().BoolVar(&stats, "stats", false, "print run diagnostics instead of distances")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "primary solver budget (with --hybrid)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
