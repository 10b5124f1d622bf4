package depgraph

// FileKind classifies a file for graph rendering purposes.
type FileKind string

const (
	FileKindCode   FileKind = "code"
	FileKindImage  FileKind = "image"
	FileKindLog    FileKind = "log"
	FileKindMetric FileKind = "metric"
	FileKindIssue  FileKind = "issue"
)

// FileEntry is one in-memory file supplied to a graph build. ID is the full
// virtual path (slash-delimited, case-sensitive) and doubles as the display
// name; it must be unique within one build.
type FileEntry struct {
	ID      string   `json:"id"`
	Kind    FileKind `json:"kind"`
	Content string   `json:"content"`
}

// Node is a graph node derived from one FileEntry.
type Node struct {
	ID   string   `json:"id"`
	Kind FileKind `json:"kind"`
}

// Edge is a directed dependency: Source imports Target. Both reference node
// IDs within the same graph. Repeated imports produce repeated edges.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Graph is the dependency graph handed to the visualization layer: one node
// per input file in input order, plus the resolved import edges.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}
