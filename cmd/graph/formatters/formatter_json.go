package formatters

import (
	"encoding/json"

	"github.com/CodeAtlasHQ/atlas/depgraph"
)

// JSONFormatter formats dependency graphs as JSON.
type JSONFormatter struct{}

// Format converts the dependency graph to JSON. Node and edge order follow
// the graph, so repeated runs over the same input give identical output.
// The opts parameter is accepted for interface compatibility but not used.
func (f *JSONFormatter) Format(g depgraph.Graph, _ FormatOptions) (string, error) {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
