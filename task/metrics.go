package task

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// tasksGenerated counts synthesized tasks by kind.
	tasksGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "netquiz_tasks_generated_total",
		Help: "Synthesized tasks by kind",
	}, []string{"kind"})

	// taskRejections counts rejected samples by kind.
	taskRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "netquiz_task_rejections_total",
		Help: "Rejected task samples by kind",
	}, []string{"kind"})
)
