package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/preflow/builder"
	"github.com/katalvlaran/preflow/netio"
)

// Topologies accepted by gen --topology.
const (
	topoRandom  = "random"
	topoLayered = "layered"
)

type genOptions struct {
	topology string
	nodes    int
	prob     float64
	layers   int
	width    int
	seed     int64
	maxCap   int64
	output   string
}

func newGenCmd() *cobra.Command {
	o := &genOptions{}

	c := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random network in the preflow input format",
		Example: `  preflow gen --nodes 1000 --prob 0.01 --seed 7 > net.txt
  preflow gen --topology layered --layers 20 --width 50 --max-cap 100 | preflow -w 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd)
		},
	}

	f := c.Flags()
	f.StringVar(&o.topology, "topology", topoRandom, "random or layered")
	f.IntVarP(&o.nodes, "nodes", "n", 100, "node count (random topology)")
	f.Float64VarP(&o.prob, "prob", "p", 0.05, "edge probability per node pair (random topology)")
	f.IntVar(&o.layers, "layers", 4, "number of layers (layered topology)")
	f.IntVar(&o.width, "width", 8, "nodes per layer (layered topology)")
	f.Int64Var(&o.seed, "seed", 1, "random seed")
	f.Int64Var(&o.maxCap, "max-cap", 100, "maximum edge capacity (capacities are uniform in [1, max-cap])")
	f.StringVarP(&o.output, "output", "o", "", "output file (default standard output)")

	return c
}

func (o *genOptions) run(cmd *cobra.Command) error {
	if o.maxCap < 1 {
		return fmt.Errorf("--max-cap must be at least 1, got %d", o.maxCap)
	}
	bopts := []builder.BuilderOption{
		builder.WithSeed(o.seed),
		builder.WithUniformCapacity(1, o.maxCap),
		builder.WithRandomOrientation(),
	}

	var (
		n    int
		cons builder.Constructor
	)
	switch o.topology {
	case topoRandom:
		n, cons = o.nodes, builder.RandomSparse(o.nodes, o.prob)
	case topoLayered:
		n, cons = o.layers*o.width+2, builder.Layered(o.layers, o.width)
	default:
		return fmt.Errorf("unknown topology %q", o.topology)
	}

	spec, err := builder.BuildSpec(n, bopts, cons)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"topology": o.topology,
		"nodes":    spec.Nodes,
		"edges":    len(spec.Edges),
		"seed":     o.seed,
	}).Debug("generated network")

	w := cmd.OutOrStdout()
	if o.output != "" {
		f, err := os.Create(o.output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	return netio.WriteSpec(w, spec)
}
