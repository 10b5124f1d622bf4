package depgraph

import (
	"errors"
	"sort"

	graphlib "github.com/dominikbraun/graph"
)

// AdjacencyList returns the graph as a map from node ID to its edge targets
// in edge order. Every node is present, isolated nodes with an empty slice.
func AdjacencyList(g Graph) map[string][]string {
	adjacency := make(map[string][]string, len(g.Nodes))
	for _, node := range g.Nodes {
		adjacency[node.ID] = []string{}
	}
	for _, edge := range g.Edges {
		adjacency[edge.Source] = append(adjacency[edge.Source], edge.Target)
	}
	return adjacency
}

// Cycles returns the dependency cycles in g: every strongly connected
// component with more than one member, plus single-file self-imports. Each
// cycle's members are sorted and cycles are ordered by their first member,
// so the result is stable regardless of build order.
func Cycles(g Graph) ([][]string, error) {
	directed := graphlib.New(graphlib.StringHash, graphlib.Directed())

	adjacency := AdjacencyList(g)
	for _, node := range g.Nodes {
		if err := directed.AddVertex(node.ID); err != nil && !errors.Is(err, graphlib.ErrVertexAlreadyExists) {
			return nil, err
		}
	}

	selfLoops := make(map[string]bool)
	for _, node := range g.Nodes {
		for _, target := range adjacency[node.ID] {
			if target == node.ID {
				selfLoops[node.ID] = true
				continue
			}
			if err := directed.AddEdge(node.ID, target); err != nil && !errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
				return nil, err
			}
		}
	}

	components, err := graphlib.StronglyConnectedComponents(directed)
	if err != nil {
		return nil, err
	}

	var cycles [][]string
	for _, component := range components {
		if len(component) < 2 {
			continue
		}
		members := append([]string(nil), component...)
		sort.Strings(members)
		cycles = append(cycles, members)
	}
	for id := range selfLoops {
		cycles = append(cycles, []string{id})
	}

	sort.Slice(cycles, func(i, j int) bool {
		return cycles[i][0] < cycles[j][0]
	})

	return cycles, nil
}
