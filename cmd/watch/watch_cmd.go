package watch

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/CodeAtlasHQ/atlas/cmd/graph/formatters"
	"github.com/CodeAtlasHQ/atlas/depgraph"
	"github.com/CodeAtlasHQ/atlas/fileset"
)

type watchOptions struct {
	port int
}

// Cmd represents the watch command.
var Cmd = NewCommand()

// NewCommand returns a new watch command instance.
func NewCommand() *cobra.Command {
	opts := &watchOptions{
		port: 4900,
	}

	cmd := &cobra.Command{
		Use:   "watch [path]",
		Short: "Watch for file changes and serve a live dependency graph",
		Long: `Watch a directory for file changes, rebuild the dependency graph, and
serve it as JSON at /graph with a live SSE stream at /events for the
graph viewer.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}
			return runWatch(cmd, root, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.port, "port", "P", opts.port, "HTTP server port")

	return cmd
}

func runWatch(cmd *cobra.Command, root string, opts *watchOptions) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	root = absRoot

	b := newBroker()
	srv := newServer(b, opts.port)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", opts.port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", opts.port, err)
	}

	go srv.Serve(ln)

	graphJSON, err := buildGraphJSON(root)
	if err != nil {
		return fmt.Errorf("initial graph build failed: %w", err)
	}
	b.publish(graphJSON)

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s\n", root)
	fmt.Fprintf(cmd.OutOrStdout(), "Serving graph at http://localhost:%d/graph\n", opts.port)
	fmt.Fprintf(cmd.OutOrStdout(), "Press Ctrl+C to stop\n")

	err = watchAndRebuild(ctx, root, b)

	srv.Close()
	return err
}

// buildGraphJSON loads the directory, builds the graph and renders it with
// the JSON formatter the viewer consumes.
func buildGraphJSON(root string) (string, error) {
	files, err := fileset.LoadDirectory(root)
	if err != nil {
		return "", fmt.Errorf("failed to load files: %w", err)
	}

	graph := depgraph.BuildDependencyGraph(files)

	formatter := &formatters.JSONFormatter{}
	return formatter.Format(graph, formatters.FormatOptions{})
}
