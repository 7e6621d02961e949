// Command netquiz generates, enriches and quizzes the stimulus graphs of the
// visualization study.
//
// Usage:
//
//	netquiz generate social --nodes 20 --density 0.1 > g.json
//	netquiz rcm g.json | netquiz layout --engine native | netquiz centrality --structural-degree > enriched.json
//	netquiz task enriched.json --kind two --count 5
//	netquiz study --output-dir out --metrics-file out/metrics.prom
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, a := newRootCmd()
	if err := a.execute(ctx, root); err != nil {
		stop()
		os.Exit(1)
	}
}
