// Package generic extracts imports with a permissive regex. It is the
// fallback for syntax families whose structured parse fails, and produces a
// best-effort result rather than none.
package generic

import "regexp"

// importLiteral matches "import ... from '<path>'" and "import '<path>'"
// style statements with single or double quotes. The lazy quantifier keeps
// each match to one statement when several share a line.
var importLiteral = regexp.MustCompile(`import\s+(?:.+?\s+from\s+)?['"]([^'"]+)['"]`)

// ImportPaths returns every import path literal found in content, in text
// order.
func ImportPaths(content []byte) []string {
	matches := importLiteral.FindAllSubmatch(content, -1)

	var paths []string
	for _, match := range matches {
		paths = append(paths, string(match[1]))
	}
	return paths
}
