// Package python extracts imports from Python sources with two line-oriented
// patterns. Regex keeps the extractor total: any text yields a (possibly
// empty) result.
package python

import "regexp"

// fromImport matches "from MODULE import" anywhere in the text.
var fromImport = regexp.MustCompile(`from\s+(\S+)\s+import`)

// plainImport matches "import MODULE" anchored at the start of a line.
var plainImport = regexp.MustCompile(`(?m)^import\s+(\S+)`)

// ExtractImports returns every module named by a from-import followed by
// every module named by a plain import, each group in text order. The two
// passes are concatenated, not merged, so a module imported both ways
// appears twice.
func ExtractImports(content []byte) []string {
	var modules []string

	for _, match := range fromImport.FindAllSubmatch(content, -1) {
		modules = append(modules, string(match[1]))
	}
	for _, match := range plainImport.FindAllSubmatch(content, -1) {
		modules = append(modules, string(match[1]))
	}

	return modules
}

// Module registers the Python extractor for langsupport.
type Module struct{}

func (Module) Name() string {
	return "Python"
}

func (Module) Extensions() []string {
	return []string{".py"}
}

func (Module) Imports(content []byte, _ string) []string {
	return ExtractImports(content)
}
