package formatters

import (
	"fmt"
	"strings"

	"github.com/CodeAtlasHQ/atlas/depgraph"
)

// DOTFormatter formats dependency graphs in Graphviz DOT format.
type DOTFormatter struct{}

// kindColors maps file kinds to node fill colors.
var kindColors = map[depgraph.FileKind]string{
	depgraph.FileKindCode:   "white",
	depgraph.FileKindImage:  "lightyellow",
	depgraph.FileKindLog:    "lightgrey",
	depgraph.FileKindMetric: "lightblue",
	depgraph.FileKindIssue:  "lightpink",
}

// Format converts the dependency graph to DOT format.
// If opts.Label is not empty, it is displayed at the top of the graph.
func (f *DOTFormatter) Format(g depgraph.Graph, opts FormatOptions) (string, error) {
	var sb strings.Builder
	sb.WriteString("digraph dependencies {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=box];\n")

	if opts.Label != "" {
		sb.WriteString(fmt.Sprintf("  label=%q;\n", opts.Label))
		sb.WriteString("  labelloc=t;\n")
		sb.WriteString("  labeljust=l;\n")
		sb.WriteString("  fontsize=10;\n")
		sb.WriteString("  fontname=Courier;\n")
	}
	sb.WriteString("\n")

	for _, node := range g.Nodes {
		color := kindColors[node.Kind]
		if color == "" {
			color = "white"
		}
		sb.WriteString(fmt.Sprintf("  %q [style=filled, fillcolor=%s];\n", node.ID, color))
	}

	if len(g.Edges) > 0 {
		sb.WriteString("\n")
	}
	for _, edge := range g.Edges {
		sb.WriteString(fmt.Sprintf("  %q -> %q;\n", edge.Source, edge.Target))
	}

	sb.WriteString("}\n")
	return sb.String(), nil
}
