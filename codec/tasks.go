package codec

import (
	"io"

	"github.com/katalvlaran/netquiz/task"
)

type wireTask struct {
	Type         string        `json:"type"`
	Root         int           `json:"root"`
	Task         string        `json:"task"`
	AnswerOption string        `json:"answer_option"`
	Ordering     task.Ordering `json:"ordering"`
	Solution     []wireNode    `json:"solution"`
	TextSolution string        `json:"text_solution"`
}

// EncodeTasks writes tasks as a JSON array of unrendered task descriptors.
func EncodeTasks(w io.Writer, tasks []*task.Task, opts ...Option) error {
	out := make([]wireTask, 0, len(tasks))
	for _, t := range tasks {
		solution := make([]wireNode, len(t.Solution))
		for i := range t.Solution {
			solution[i] = toWireNode(&t.Solution[i])
		}
		out = append(out, wireTask{
			Type:         string(t.Kind),
			Root:         t.Root,
			Task:         t.Description,
			AnswerOption: string(t.AnswerType),
			Ordering:     t.Ordering,
			Solution:     solution,
			TextSolution: t.TextSolution,
		})
	}
	return encode(w, out, newConfig(opts))
}
