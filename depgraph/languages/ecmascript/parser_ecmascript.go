// Package ecmascript extracts imports from TypeScript, TSX, JavaScript and
// JSX sources using tree-sitter.
package ecmascript

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/CodeAtlasHQ/atlas/depgraph/languages/generic"
)

// ExtractImports returns the import specifiers found in content, in source
// order. Structured extraction is attempted first; if the parse fails for
// any reason the regex fallback runs over the same content instead, so a
// malformed file degrades to a best-effort result and never aborts a graph
// build.
func ExtractImports(content []byte, ext string) []string {
	imports, err := parseImports(content, ext)
	if err != nil {
		return generic.ImportPaths(content)
	}
	return imports
}

// parseImports builds a syntax tree and collects import specifiers from it.
// The error branch is the recoverable half of the extraction pipeline; the
// caller decides how to degrade.
func parseImports(content []byte, ext string) ([]string, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(grammarForExtension(ext))

	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("parse produced no tree")
	}
	if root.HasError() {
		return nil, fmt.Errorf("parse tree contains syntax errors")
	}

	return collectImports(root, content), nil
}

// grammarForExtension picks the tree-sitter grammar matching the file
// extension. TypeScript and TSX are distinct grammars; the JavaScript
// grammar already covers JSX.
func grammarForExtension(ext string) *sitter.Language {
	switch ext {
	case ".ts":
		return typescript.GetLanguage()
	case ".tsx":
		return tsx.GetLanguage()
	default:
		return javascript.GetLanguage()
	}
}

// collectImports walks the whole tree in pre-order and gathers the module
// specifier from the four import-like constructs: static imports,
// re-exports, require() calls and dynamic import() calls. Imports nested
// inside functions or conditionals are captured like any other.
func collectImports(root *sitter.Node, content []byte) []string {
	var imports []string

	var walk func(*sitter.Node)
	walk = func(n *sitter.Node) {
		if n == nil {
			return
		}

		switch n.Type() {
		case "import_statement", "export_statement":
			if source := n.ChildByFieldName("source"); source != nil {
				if path := stringLiteralValue(source, content); path != "" {
					imports = append(imports, path)
				}
			}
		case "call_expression":
			if path := importLikeCallArgument(n, content); path != "" {
				imports = append(imports, path)
			}
		}

		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}

	walk(root)
	return imports
}

// importLikeCallArgument returns the first string argument of require("x")
// and dynamic import("x") calls, or "" for any other call expression.
func importLikeCallArgument(call *sitter.Node, content []byte) string {
	callee := call.ChildByFieldName("function")
	if callee == nil {
		return ""
	}

	isRequire := callee.Type() == "identifier" && callee.Content(content) == "require"
	isDynamicImport := callee.Type() == "import"
	if !isRequire && !isDynamicImport {
		return ""
	}

	args := call.ChildByFieldName("arguments")
	if args == nil {
		return ""
	}

	// Only a literal first argument counts; require(someVar) is opaque.
	first := args.NamedChild(0)
	if first == nil {
		return ""
	}
	return stringLiteralValue(first, content)
}

// stringLiteralValue returns a string node's text without surrounding quotes.
func stringLiteralValue(node *sitter.Node, content []byte) string {
	if node.Type() != "string" {
		return ""
	}
	return strings.Trim(node.Content(content), "'\"")
}
