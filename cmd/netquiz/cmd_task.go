package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/netquiz/builder"
	"github.com/katalvlaran/netquiz/codec"
	"github.com/katalvlaran/netquiz/task"
	"github.com/spf13/cobra"
)

func newTaskCmd(a *app) *cobra.Command {
	var f enrichFlags
	var kindName string
	var count int
	cmd := &cobra.Command{
		Use:   "task [graph.json]",
		Short: "Synthesize quiz tasks with verified solutions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := task.ParseKind(kindName)
			if err != nil {
				return err
			}
			if count < 1 {
				return fmt.Errorf("--count must be positive, got %d", count)
			}
			g, err := readGraph(cmd, args, f.strict)
			if err != nil {
				return err
			}
			synth := task.NewSynthesizer(a.cfg.TaskOptions()...)
			rng := builder.DeriveRand(a.cfg.Seed, 0)
			tasks := make([]*task.Task, 0, count)
			for i := 0; i < count; i++ {
				t, err := synth.Generate(g, kind, rng)
				if err != nil {
					return err
				}
				tasks = append(tasks, t)
			}
			return writeOutput(cmd, f.output, func(w io.Writer) error { return codec.EncodeTasks(w, tasks) })
		},
	}
	f.bind(cmd)
	cmd.Flags().StringVarP(&kindName, "kind", "k", string(task.KindPlain), "task kind: plain, one or two")
	cmd.Flags().IntVarP(&count, "count", "c", 1, "number of tasks")
	return cmd
}
