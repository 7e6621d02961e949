package main

import (
	"io"
	"path/filepath"

	"github.com/katalvlaran/netquiz/codec"
	"github.com/katalvlaran/netquiz/logger"
	"github.com/katalvlaran/netquiz/study"
	"github.com/spf13/cobra"
)

// taskSetFile holds the combined task set next to the per-technique files.
const taskSetFile = "tasks/task_set.json"

func newStudyCmd(a *app) *cobra.Command {
	var outputDir string
	var concurrency int
	cmd := &cobra.Command{
		Use:   "study",
		Short: "Build the full study task set and its data graphs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("output-dir") {
				a.cfg.Study.OutputDir = outputDir
			}
			if cmd.Flags().Changed("concurrency") {
				a.cfg.Study.Concurrency = concurrency
			}
			design, err := a.cfg.Design()
			if err != nil {
				return err
			}
			opts := []study.Option{
				study.WithLogger(logger.Logger),
				study.WithSynthesizerOptions(a.cfg.TaskOptions()...),
			}
			if a.cfg.Study.Concurrency > 0 {
				opts = append(opts, study.WithConcurrency(a.cfg.Study.Concurrency))
			}
			res, err := study.Build(cmd.Context(), design, opts...)
			if err != nil {
				return err
			}
			return writeStudy(cmd, a.cfg.Study.OutputDir, design, res)
		},
	}
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "directory receiving tasks/ (default from config)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "conditions built in parallel (0 = GOMAXPROCS)")
	return cmd
}

// writeStudy writes every data graph, one file per technique and the combined
// task set under dir.
func writeStudy(cmd *cobra.Command, dir string, d study.Design, res *study.Result) error {
	for file, g := range res.Graphs {
		if err := writeGraph(cmd, filepath.Join(dir, file), g); err != nil {
			return err
		}
	}
	for _, tech := range d.Techniques {
		path := filepath.Join(dir, "tasks", string(tech)+".json")
		err := writeOutput(cmd, path, func(w io.Writer) error { return codec.EncodeTechnique(w, res.Sets, tech) })
		if err != nil {
			return err
		}
	}
	err := writeOutput(cmd, filepath.Join(dir, taskSetFile), func(w io.Writer) error {
		return codec.EncodeTaskSet(w, res.Sets)
	})
	if err != nil {
		return err
	}
	logger.Logger.Info().
		Str("dir", dir).
		Int("graphs", len(res.Graphs)).
		Int("records", res.Sets.Len()).
		Msg("study written")
	return nil
}
