package depgraph

// FileIndex is the closed set of file IDs known to one graph build. It keeps
// both a membership set and the original insertion order, because the
// basename-suffix resolution fallback breaks ties by input order.
type FileIndex struct {
	ids     []string
	members map[string]bool
}

// NewFileIndex builds an index over the supplied IDs, preserving their order.
func NewFileIndex(ids []string) *FileIndex {
	index := &FileIndex{
		ids:     append([]string(nil), ids...),
		members: make(map[string]bool, len(ids)),
	}
	for _, id := range ids {
		index.members[id] = true
	}
	return index
}

// Contains reports whether id is a known file.
func (x *FileIndex) Contains(id string) bool {
	return x.members[id]
}

// IDs returns the known IDs in insertion order.
func (x *FileIndex) IDs() []string {
	return x.ids
}
