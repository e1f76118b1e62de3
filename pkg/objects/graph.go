package objects

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/vitrine-dev/vitrine/pkg/cache"
	"github.com/vitrine-dev/vitrine/pkg/errors"
)

// Graph is a small directed graph whose image representations are rendered
// from DOT through Graphviz. Node order is preserved as given, so the DOT
// output and the fingerprint are deterministic.
type Graph struct {
	Name  string
	Nodes []string
	Edges []GraphEdge
}

// GraphEdge is a directed edge between two named nodes.
type GraphEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// NewGraph creates a named graph.
func NewGraph(name string, nodes []string, edges []GraphEdge) *Graph {
	if name == "" {
		name = "G"
	}
	return &Graph{Name: name, Nodes: nodes, Edges: edges}
}

// ToDOT converts the graph to Graphviz DOT format.
func (g *Graph) ToDOT() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", g.Name)
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		fmt.Fprintf(&buf, "  %q;\n", n)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders the graph to SVG using Graphviz.
func (g *Graph) RenderSVG() ([]byte, error) {
	return g.render(graphviz.SVG)
}

// RenderPNG renders the graph to PNG using Graphviz.
func (g *Graph) RenderPNG() ([]byte, error) {
	return g.render(graphviz.PNG)
}

// render lays the DOT out with Graphviz in the requested format.
func (g *Graph) render(format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "init graphviz")
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(g.ToDOT()))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "parse DOT")
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
	}
	return buf.Bytes(), nil
}

// String implements fmt.Stringer for the textual fallback.
func (g *Graph) String() string {
	edges := make([]string, len(g.Edges))
	for i, e := range g.Edges {
		edges[i] = e.From + "->" + e.To
	}
	return fmt.Sprintf("Graph(%s: %d nodes, %s)", g.Name, len(g.Nodes), strings.Join(edges, ", "))
}

// Fingerprint identifies the object's content for engine-level caching.
// Graphs with identical DOT render identical payloads.
func (g *Graph) Fingerprint() string {
	return cache.Hash([]byte(g.ToDOT()))
}
