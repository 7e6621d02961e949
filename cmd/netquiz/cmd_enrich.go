package main

import (
	"time"

	"github.com/katalvlaran/netquiz/centrality"
	"github.com/katalvlaran/netquiz/layout"
	"github.com/katalvlaran/netquiz/logger"
	"github.com/katalvlaran/netquiz/rcm"
	"github.com/spf13/cobra"
)

// enrichFlags are shared by the graph-in, graph-out commands.
type enrichFlags struct {
	output string
	strict bool
}

func (f *enrichFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "reject links to unknown nodes instead of dropping them")
}

func newRCMCmd(a *app) *cobra.Command {
	var f enrichFlags
	cmd := &cobra.Command{
		Use:   "rcm [graph.json]",
		Short: "Attach the reverse Cuthill-McKee ordering",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(cmd, args, f.strict)
			if err != nil {
				return err
			}
			out := g.Clone()
			out.RCM = rcm.Order(out)
			logger.Logger.Info().
				Int("nodes", out.NodeCount()).
				Int("bandwidth", rcm.Bandwidth(out, out.RCM)).
				Msg("rcm ordering computed")
			return writeGraph(cmd, f.output, out)
		},
	}
	f.bind(cmd)
	return cmd
}

func newLayoutCmd(a *app) *cobra.Command {
	var f enrichFlags
	var engine string
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "layout [graph.json]",
		Short: "Attach gansner ranks and hierarchical/radial coordinates",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("engine") {
				a.cfg.Layout.Engine = engine
			}
			if cmd.Flags().Changed("timeout") {
				a.cfg.Layout.Timeout = timeout
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			g, err := readGraph(cmd, args, f.strict)
			if err != nil {
				return err
			}
			out, err := layout.Extract(cmd.Context(), g, a.cfg.Provider(),
				layout.WithTimeout(a.cfg.Layout.Timeout),
				layout.WithLogger(logger.Logger),
			)
			if err != nil {
				return err
			}
			return writeGraph(cmd, f.output, out)
		},
	}
	f.bind(cmd)
	cmd.Flags().StringVar(&engine, "engine", "", "layout oracle: graphviz or native")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "deadline per layout call")
	return cmd
}

func newCentralityCmd(a *app) *cobra.Command {
	var f enrichFlags
	var structural bool
	cmd := &cobra.Command{
		Use:   "centrality [graph.json]",
		Short: "Replace node attributes with degree, closeness, betweenness and eigenvector",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(cmd, args, f.strict)
			if err != nil {
				return err
			}
			opts := a.cfg.CentralityOptions()
			if structural {
				opts = append(opts, centrality.WithStructuralDegree())
			}
			out, err := centrality.Enrich(cmd.Context(), g, opts...)
			if err != nil {
				return err
			}
			return writeGraph(cmd, f.output, out)
		},
	}
	f.bind(cmd)
	cmd.Flags().BoolVar(&structural, "structural-degree", false,
		"take degree from the graph structure instead of the existing degree attribute")
	return cmd
}
