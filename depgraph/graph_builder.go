package depgraph

import (
	"path"

	"github.com/CodeAtlasHQ/atlas/depgraph/registry"
)

// BuildDependencyGraph analyzes the supplied files and returns their
// dependency graph: one node per file in input order, and one edge per
// resolved import. Imports that do not resolve to a supplied file (typically
// third-party packages) are dropped silently; the build always produces a
// graph rather than failing.
//
// Resolution is closed-world: only files in this call are ever edge targets.
// The computation is pure and synchronous, so edge order is deterministic:
// file order first, extraction order within a file.
func BuildDependencyGraph(files []FileEntry) Graph {
	ids := make([]string, len(files))
	for i, file := range files {
		ids[i] = file.ID
	}
	index := NewFileIndex(ids)

	graph := Graph{
		Nodes: make([]Node, 0, len(files)),
		Edges: []Edge{},
	}

	for _, file := range files {
		graph.Nodes = append(graph.Nodes, Node{ID: file.ID, Kind: file.Kind})

		if file.Kind != FileKindCode {
			continue
		}

		ext := path.Ext(file.ID)
		module, ok := registry.ModuleForExtension(ext)
		if !ok {
			continue
		}

		for _, rawImport := range module.Imports([]byte(file.Content), ext) {
			target, resolved := ResolveImportPath(file.ID, rawImport, index)
			if !resolved {
				continue
			}
			graph.Edges = append(graph.Edges, Edge{Source: file.ID, Target: target})
		}
	}

	return graph
}
