package main

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Xavierblaze6/sssp-algorithm/builder"
	"github.com/Xavierblaze6/sssp-algorithm/experiment"
	"github.com/Xavierblaze6/sssp-algorithm/graphio"
)

// shapeFlags holds the generator knobs shared by the generate command.
type shapeFlags struct {
	shape       string
	avgDegree   float64
	probability float64
	width       int
	fanout      int
}

func (sf *shapeFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&sf.shape, "shape", experiment.ShapeSparse, "graph shape: sparse, dense, path or layered")
	fs.Float64Var(&sf.avgDegree, "avg-degree", 5.0, "average out-degree (sparse shape)")
	fs.Float64Var(&sf.probability, "probability", 0.3, "arc probability (dense shape)")
	fs.IntVar(&sf.width, "width", 4, "vertices per layer (layered shape)")
	fs.IntVar(&sf.fanout, "fanout", 2, "arcs per vertex into the next layer (layered shape)")
}

// constructor maps the flags onto a builder constructor for n vertices.
func (sf *shapeFlags) constructor(n int) (builder.Constructor, error) {
	switch sf.shape {
	case experiment.ShapeSparse:
		return builder.Sparse(sf.avgDegree), nil
	case experiment.ShapeDense:
		return builder.Dense(sf.probability), nil
	case experiment.ShapePath:
		return builder.Path(), nil
	case experiment.ShapeLayered:
		if sf.width < 1 || n%sf.width != 0 {
			return nil, fmt.Errorf("layered shape needs --vertices divisible by --width, got n=%d width=%d", n, sf.width)
		}
		return builder.Layered(n/sf.width, sf.width, sf.fanout), nil
	}
	return nil, fmt.Errorf("unknown shape %q (want sparse, dense, path or layered)", sf.shape)
}

func newGenerateCmd() *cobra.Command {
	var (
		out       string
		n         int
		seed      int64
		seedLabel string
		minWeight float64
		maxWeight float64
		shapes    shapeFlags
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a graph and save it in the text interchange format",
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 1 {
				return fmt.Errorf("--vertices must be at least 1, got %d", n)
			}
			if math.IsNaN(minWeight) || math.IsInf(minWeight, 0) ||
				math.IsNaN(maxWeight) || math.IsInf(maxWeight, 0) ||
				minWeight < 0 || maxWeight < minWeight {
				return fmt.Errorf("bad weight range [%g, %g)", minWeight, maxWeight)
			}
			cons, err := shapes.constructor(n)
			if err != nil {
				return err
			}

			opts := []builder.Option{builder.WithWeightRange(minWeight, maxWeight)}
			if seedLabel != "" {
				opts = append(opts, builder.WithSeedLabel(seedLabel))
			} else {
				opts = append(opts, builder.WithSeed(seed))
			}

			g, err := builder.Build(n, opts, cons)
			if err != nil {
				return err
			}
			if err := graphio.Save(out, g); err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"path":  out,
				"shape": shapes.shape,
				"n":     g.VertexCount(),
				"m":     g.EdgeCount(),
			}).Info("graph written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (required)")
	cmd.Flags().IntVarP(&n, "vertices", "n", 1000, "number of vertices")
	cmd.Flags().Int64Var(&seed, "seed", 1, "generator seed")
	cmd.Flags().StringVar(&seedLabel, "seed-label", "", "derive the seed from a label instead of --seed")
	cmd.Flags().Float64Var(&minWeight, "min-weight", 0.1, "minimum arc weight")
	cmd.Flags().Float64Var(&maxWeight, "max-weight", 10.0, "maximum arc weight")
	shapes.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
