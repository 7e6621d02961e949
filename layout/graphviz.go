// SPDX-License-Identifier: MIT
// Package: netquiz/layout
//
// graphviz.go - Provider backed by the Graphviz command-line tools.
//
// The graph is written as DOT text on stdin and laid out with -Tplain; the
// "node <name> <x> <y> ..." records of the plain output are parsed back.
// Node names in the DOT text are the integer node ids.

package layout

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/katalvlaran/netquiz/core"
)

// Default Graphviz program names, resolved through PATH.
const (
	DefaultDotBinary   = "dot"
	DefaultCircoBinary = "circo"
)

// GraphvizProvider lays graphs out with the dot and circo programs.
type GraphvizProvider struct {
	DotBinary   string
	CircoBinary string
}

// NewGraphvizProvider returns a provider using binaries found on PATH.
func NewGraphvizProvider() *GraphvizProvider {
	return &GraphvizProvider{DotBinary: DefaultDotBinary, CircoBinary: DefaultCircoBinary}
}

// Layout implements Provider.
func (p *GraphvizProvider) Layout(ctx context.Context, g *core.Graph, req Request) (Positions, error) {
	bin := p.DotBinary
	if req.Engine == Radial {
		bin = p.CircoBinary
	}
	if bin == "" {
		return nil, fmt.Errorf("graphviz: no binary configured for %s", req.Engine)
	}

	var dot bytes.Buffer
	if err := WriteDOT(&dot, g, req.SameRank); err != nil {
		return nil, err
	}
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "-Tplain")
	cmd.Stdin = &dot
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("graphviz: %s: %w: %s", bin, err, strings.TrimSpace(stderr.String()))
	}
	return ParsePlain(&stdout)
}

// WriteDOT renders g as an undirected DOT graph. Every node is declared so
// isolated nodes receive a position; with sameRank all nodes are put into a
// single {rank = same; ...} group.
func WriteDOT(w io.Writer, g *core.Graph, sameRank bool) error {
	bw := bufio.NewWriter(w)
	ids := g.NodeIDs()

	fmt.Fprintln(bw, "graph {")
	for _, id := range ids {
		fmt.Fprintf(bw, "%d;\n", id)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%d -- %d;\n", e.Source, e.Target)
	}
	if sameRank && len(ids) > 0 {
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = strconv.Itoa(id)
		}
		fmt.Fprintf(bw, "{rank = same; %s};\n", strings.Join(parts, "; "))
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// ParsePlain reads Graphviz -Tplain output and returns the node positions.
// Records other than "node" are ignored.
func ParsePlain(r io.Reader) (Positions, error) {
	pos := make(Positions)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || fields[0] != "node" {
			continue
		}
		if len(fields) < 4 {
			return nil, fmt.Errorf("graphviz: line %d: short node record", line)
		}
		id, err := strconv.Atoi(strings.Trim(fields[1], `"`))
		if err != nil {
			return nil, fmt.Errorf("graphviz: line %d: node name %q: %w", line, fields[1], err)
		}
		x, errX := strconv.ParseFloat(fields[2], 64)
		y, errY := strconv.ParseFloat(fields[3], 64)
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("graphviz: line %d: bad coordinates %q %q", line, fields[2], fields[3])
		}
		pos[id] = core.Point{x, y}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphviz: read plain output: %w", err)
	}
	return pos, nil
}
