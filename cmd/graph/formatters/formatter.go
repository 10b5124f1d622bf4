// Package formatters renders a dependency graph in viewer-consumable text
// formats.
package formatters

import (
	"fmt"

	"github.com/CodeAtlasHQ/atlas/depgraph"
)

// FormatOptions contains optional parameters for formatting dependency graphs.
type FormatOptions struct {
	// Label is an optional title or label for the graph
	Label string
}

// Formatter is the interface that all graph formatters must implement.
type Formatter interface {
	// Format converts a dependency graph to a formatted string representation.
	Format(g depgraph.Graph, opts FormatOptions) (string, error)
}

// NewFormatter creates a Formatter for the specified format type.
// Supported formats: "json", "dot"
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case "json":
		return &JSONFormatter{}, nil
	case "dot":
		return &DOTFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (valid options: json, dot)", format)
	}
}
