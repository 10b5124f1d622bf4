package depgraph

import (
	"regexp"
	"strings"
)

// relativeProbeSuffixes is the fixed probe order for relative imports: the
// bare path first, then extension candidates, then directory index files.
var relativeProbeSuffixes = []string{"", ".ts", ".tsx", ".js", ".jsx", "/index.ts", "/index.tsx"}

// trailingExtension matches a final ".ext" path component suffix, where ext
// contains no dots or slashes.
var trailingExtension = regexp.MustCompile(`\.[^/.]+$`)

// ResolveImportPath maps a raw import string from sourceID to a known file
// ID, or reports failure. Three strategies run in order and the first match
// wins: relative resolution (imports starting with "."), exact match, and a
// basename-suffix fallback that supports alias-style imports such as
// "@/components/Button" pointing at "src/components/Button.tsx".
//
// A failed resolution is the expected outcome for imports of third-party
// packages and is not an error.
func ResolveImportPath(sourceID, rawImport string, index *FileIndex) (string, bool) {
	if strings.HasPrefix(rawImport, ".") {
		if target, ok := resolveRelativeImport(sourceID, rawImport, index); ok {
			return target, true
		}
	}

	if index.Contains(rawImport) {
		return rawImport, true
	}

	return resolveByBasenameSuffix(rawImport, index)
}

// resolveRelativeImport folds the import's "." and ".." segments against the
// source file's directory and probes the result with each candidate suffix.
func resolveRelativeImport(sourceID, rawImport string, index *FileIndex) (string, bool) {
	stack := strings.Split(sourceID, "/")
	if len(stack) > 0 {
		stack = stack[:len(stack)-1]
	}

	for _, segment := range strings.Split(rawImport, "/") {
		switch segment {
		case ".":
			// current directory, nothing to do
		case "..":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		default:
			stack = append(stack, segment)
		}
	}

	base := strings.Join(stack, "/")
	for _, suffix := range relativeProbeSuffixes {
		candidate := base + suffix
		if index.Contains(candidate) {
			return candidate, true
		}
	}

	return "", false
}

// resolveByBasenameSuffix returns the first known ID (in input order) whose
// extension-stripped path ends with the import's basename. This is what lets
// alias-style imports ("@/components/Button") find their file without an
// alias table. Multiple files can match; the tie-break is deliberately
// first-in-input-order so results stay reproducible.
func resolveByBasenameSuffix(rawImport string, index *FileIndex) (string, bool) {
	segments := strings.Split(rawImport, "/")
	importBase := segments[len(segments)-1]
	if importBase == "" {
		return "", false
	}

	for _, id := range index.IDs() {
		stripped := trailingExtension.ReplaceAllString(id, "")
		if strings.HasSuffix(stripped, importBase) || strings.HasSuffix(stripped, "/"+importBase) {
			return id, true
		}
	}

	return "", false
}
