package fileset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeAtlasHQ/atlas/depgraph"
)

func TestClassifyPath(t *testing.T) {
	tests := []struct {
		id   string
		kind depgraph.FileKind
	}{
		{"src/app.ts", depgraph.FileKindCode},
		{"src/main.py", depgraph.FileKindCode},
		{"README.md", depgraph.FileKindCode},
		{"assets/logo.png", depgraph.FileKindImage},
		{"assets/icon.SVG", depgraph.FileKindImage},
		{"server.log", depgraph.FileKindLog},
		{"metrics/cpu.csv", depgraph.FileKindMetric},
		{"metrics/node.prom", depgraph.FileKindMetric},
		{"issues/crash-on-boot.md", depgraph.FileKindIssue},
		{"docs/issues/login.md", depgraph.FileKindIssue},
		{"Makefile", depgraph.FileKindCode},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.kind, ClassifyPath(tt.id), "id %q", tt.id)
	}
}

func TestLoadDirectory(t *testing.T) {
	root := t.TempDir()

	writeFile(t, root, "src/a.ts", `import {x} from "./b"`)
	writeFile(t, root, "src/b.ts", "export const x = 1")
	writeFile(t, root, "assets/logo.png", "binary-bytes")
	writeFile(t, root, "server.log", "boot ok")

	entries, err := LoadDirectory(root)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	byID := make(map[string]depgraph.FileEntry)
	for _, entry := range entries {
		byID[entry.ID] = entry
	}

	assert.Equal(t, depgraph.FileKindCode, byID["src/a.ts"].Kind)
	assert.Equal(t, `import {x} from "./b"`, byID["src/a.ts"].Content)

	// Non-code content is never loaded.
	assert.Equal(t, depgraph.FileKindImage, byID["assets/logo.png"].Kind)
	assert.Empty(t, byID["assets/logo.png"].Content)
	assert.Equal(t, depgraph.FileKindLog, byID["server.log"].Kind)
}

func TestLoadDirectory_FeedsGraphBuild(t *testing.T) {
	root := t.TempDir()

	writeFile(t, root, "src/a.ts", `import {x} from "./b"`)
	writeFile(t, root, "src/b.ts", "export const x = 1")

	entries, err := LoadDirectory(root)
	require.NoError(t, err)

	graph := depgraph.BuildDependencyGraph(entries)

	require.Len(t, graph.Edges, 1)
	assert.Equal(t, depgraph.Edge{Source: "src/a.ts", Target: "src/b.ts"}, graph.Edges[0])
}

func TestLoadDirectory_SkipsIgnoredAndHiddenDirs(t *testing.T) {
	root := t.TempDir()

	writeFile(t, root, ".gitignore", "generated/\n")
	writeFile(t, root, "generated/out.ts", "import './x'")
	writeFile(t, root, "node_modules/react/index.js", "module.exports = {}")
	writeFile(t, root, "src/keep.ts", "export {}")

	entries, err := LoadDirectory(root)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "src/keep.ts", entries[0].ID)
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}
