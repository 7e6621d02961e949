package layout

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("netquiz.layout")

var (
	// layoutCalls counts provider invocations by engine and result.
	layoutCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "netquiz_layout_calls_total",
		Help: "Layout provider invocations by engine and result",
	}, []string{"engine", "result"})

	// degenerateAxes counts axes normalised through the max == min guard.
	degenerateAxes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "netquiz_layout_degenerate_axis_total",
		Help: "Layout axes with zero extent, normalised to 0.5",
	}, []string{"engine", "axis"})
)
