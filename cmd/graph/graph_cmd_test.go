package graph

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeAtlasHQ/atlas/depgraph"
	"github.com/CodeAtlasHQ/atlas/depgraph/registry"
)

func TestGraphCommand_JSONOutput(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "src/a.ts", `import {x} from "./b"`)
	writeTestFile(t, root, "src/b.ts", "export const x = 1")
	writeTestFile(t, root, "server.log", "boot ok")

	cmd := NewCommand()
	cmd.SetArgs([]string{root})

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)

	require.NoError(t, cmd.Execute())

	var graph depgraph.Graph
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &graph))

	require.Len(t, graph.Nodes, 3)
	require.Len(t, graph.Edges, 1)
	assert.Equal(t, depgraph.Edge{Source: "src/a.ts", Target: "src/b.ts"}, graph.Edges[0])
}

func TestGraphCommand_DOTOutput(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "main.py", "import helpers\n")
	writeTestFile(t, root, "helpers.py", "x = 1\n")

	cmd := NewCommand()
	cmd.SetArgs([]string{root, "-f", "dot"})

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)

	require.NoError(t, cmd.Execute())

	output := stdout.String()
	assert.True(t, strings.Contains(output, `"main.py" -> "helpers.py";`), "expected python import edge, got:\n%s", output)
}

func TestGraphCommand_OutputFile(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "a.js", "const b = require('./b');")
	writeTestFile(t, root, "b.js", "module.exports = {};")

	outFile := filepath.Join(t.TempDir(), "graph.json")

	cmd := NewCommand()
	cmd.SetArgs([]string{root, "-o", outFile})

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)

	require.NoError(t, cmd.Execute())
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"source": "a.js"`)
}

func TestGraphCommand_HelpListsSupportedExtensions(t *testing.T) {
	cmd := NewCommand()
	for _, ext := range registry.SupportedExtensions() {
		assert.Contains(t, cmd.Long, ext)
	}
}

func TestGraphCommand_UnknownFormat(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "a.ts", "")

	cmd := NewCommand()
	cmd.SetArgs([]string{root, "-f", "yaml"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	assert.Error(t, cmd.Execute())
}

func writeTestFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}
