// Package langsupport defines the contract for pluggable import extraction.
package langsupport

// Module describes import extraction for one syntax family. Implementations
// are stateless, perform no I/O, and never fail: malformed content degrades
// to a weaker extraction (or an empty result) rather than an error.
type Module interface {
	Name() string
	Extensions() []string

	// Imports returns the raw import-path strings found in content, in text
	// order. ext is the source file's extension (including the dot) and lets
	// one module cover several closely related grammars.
	Imports(content []byte, ext string) []string
}
