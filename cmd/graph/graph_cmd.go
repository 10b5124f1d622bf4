package graph

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CodeAtlasHQ/atlas/cmd/graph/formatters"
	"github.com/CodeAtlasHQ/atlas/depgraph"
	"github.com/CodeAtlasHQ/atlas/depgraph/registry"
	"github.com/CodeAtlasHQ/atlas/fileset"
)

type graphOptions struct {
	format     string
	outputFile string
	label      string
	showCycles bool
}

// Cmd represents the graph command.
var Cmd = NewCommand()

// NewCommand returns a new graph command instance.
func NewCommand() *cobra.Command {
	opts := &graphOptions{}

	cmd := &cobra.Command{
		Use:   "graph [path]",
		Short: "Build a dependency graph for the files under a directory",
		Long: fmt.Sprintf(`Build a dependency graph for the files under a directory.

Every file becomes a node. Source files (%s) are parsed for imports, and
each import that resolves to another file in the set becomes an edge.
Images, logs, metrics and issue reports appear as standalone nodes.
Imports of third-party packages are dropped.

Output formats:
  - json: node/edge lists for the graph viewer (default)
  - dot:  Graphviz DOT format

Example usage:
  atlas graph
  atlas graph ./web --format dot
  atlas graph ./web --output graph.json`, strings.Join(registry.SupportedExtensions(), ", ")),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}
			return runGraph(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "Output format: json or dot")
	cmd.Flags().StringVarP(&opts.outputFile, "output", "o", "", "Write output to a file instead of stdout")
	cmd.Flags().StringVarP(&opts.label, "label", "l", "", "Optional graph label (dot output)")
	cmd.Flags().BoolVar(&opts.showCycles, "cycles", false, "Report dependency cycles on stderr")

	return cmd
}

func runGraph(cmd *cobra.Command, root string, opts *graphOptions) error {
	files, err := fileset.LoadDirectory(root)
	if err != nil {
		return fmt.Errorf("failed to load files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found under %s", root)
	}

	graph := depgraph.BuildDependencyGraph(files)

	formatter, err := formatters.NewFormatter(opts.format)
	if err != nil {
		return err
	}

	output, err := formatter.Format(graph, formatters.FormatOptions{Label: opts.label})
	if err != nil {
		return fmt.Errorf("failed to format graph: %w", err)
	}

	if opts.outputFile != "" {
		if err := os.WriteFile(opts.outputFile, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", opts.outputFile, err)
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), output)
	}

	if opts.showCycles {
		return printCycles(cmd, graph)
	}
	return nil
}

func printCycles(cmd *cobra.Command, graph depgraph.Graph) error {
	cycles, err := depgraph.Cycles(graph)
	if err != nil {
		return fmt.Errorf("failed to analyze cycles: %w", err)
	}

	if len(cycles) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No dependency cycles.")
		return nil
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%d dependency cycle(s):\n", len(cycles))
	for _, cycle := range cycles {
		fmt.Fprintf(cmd.ErrOrStderr(), "  %v\n", cycle)
	}
	return nil
}
