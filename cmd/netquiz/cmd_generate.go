package main

import (
	"github.com/katalvlaran/netquiz/builder"
	"github.com/katalvlaran/netquiz/logger"
	"github.com/spf13/cobra"
)

func newGenerateCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random stimulus graph",
	}
	cmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	build := func(cmd *cobra.Command, cons builder.Constructor) error {
		g, err := builder.BuildGraph(a.cfg.BuilderOptions(), cons)
		if err != nil {
			return err
		}
		logger.Logger.Info().
			Str("mode", cmd.Name()).
			Int("nodes", g.NodeCount()).
			Int("edges", g.EdgeCount()).
			Msg("graph generated")
		return writeGraph(cmd, output, g)
	}

	var n, layers int
	var d float64
	plain := &cobra.Command{
		Use:   "plain",
		Short: "Exact-edge-count random graph with an RCM ordering",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, _ []string) error { return build(cmd, builder.Plain(n, d)) },
	}
	layered := &cobra.Command{
		Use:   "layered",
		Short: "Random graph with edges only between adjacent layers",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, _ []string) error { return build(cmd, builder.Layered(n, d, layers)) },
	}
	social := &cobra.Command{
		Use:   "social",
		Short: "Friendship network with named nodes and friendship attributes",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, _ []string) error { return build(cmd, builder.SocialNetwork(n, d)) },
	}
	for _, c := range []*cobra.Command{plain, layered, social} {
		c.Flags().IntVarP(&n, "nodes", "n", 20, "number of nodes")
		c.Flags().Float64VarP(&d, "density", "d", 0.1, "edge density in [0,1]")
	}
	layered.Flags().IntVar(&layers, "layers", 3, "number of layers")

	var sizes []int
	var densities []float64
	subnetworks := &cobra.Command{
		Use:   "subnetworks",
		Short: "Disjoint groups, each with its own density",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return build(cmd, builder.Subnetworks(sizes, densities))
		},
	}
	subnetworks.Flags().IntSliceVar(&sizes, "sizes", []int{10, 10}, "group sizes")
	subnetworks.Flags().Float64SliceVar(&densities, "densities", []float64{0.2, 0.2}, "group densities")

	cmd.AddCommand(plain, layered, subnetworks, social)
	return cmd
}
