// Package fileset turns a directory tree into the in-memory file collection
// a graph build consumes. Classification and loading live here so the graph
// core never touches the filesystem.
package fileset

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/CodeAtlasHQ/atlas/depgraph"
)

// skippedDirs are never descended into when loading a directory.
var skippedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"build":        true,
	"dist":         true,
	"__pycache__":  true,
	".idea":        true,
	".vscode":      true,
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".svg":  true,
	".webp": true,
	".ico":  true,
	".bmp":  true,
}

var metricExtensions = map[string]bool{
	".csv":  true,
	".tsv":  true,
	".prom": true,
}

// ClassifyPath decides a file's kind from its virtual path. Markdown under
// an issues directory is an issue report; anything unrecognized is treated
// as code, which is harmless because extraction only runs for registered
// code extensions.
func ClassifyPath(id string) depgraph.FileKind {
	ext := strings.ToLower(path.Ext(id))

	switch {
	case imageExtensions[ext]:
		return depgraph.FileKindImage
	case ext == ".log":
		return depgraph.FileKindLog
	case metricExtensions[ext]:
		return depgraph.FileKindMetric
	case ext == ".md" && underIssuesDir(id):
		return depgraph.FileKindIssue
	default:
		return depgraph.FileKindCode
	}
}

func underIssuesDir(id string) bool {
	for _, segment := range strings.Split(id, "/") {
		if segment == "issues" {
			return true
		}
	}
	return false
}

// LoadDirectory walks root and returns one FileEntry per regular file, with
// IDs slash-joined relative to root. A .gitignore at root is honored.
// Non-code kinds are loaded without content; their bytes are never parsed.
func LoadDirectory(root string) ([]depgraph.FileEntry, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %s: %w", root, err)
	}

	var ignored *ignore.GitIgnore
	if gi, err := ignore.CompileIgnoreFile(filepath.Join(absRoot, ".gitignore")); err == nil {
		ignored = gi
	}

	var entries []depgraph.FileEntry

	walkErr := filepath.WalkDir(absRoot, func(fullPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(absRoot, fullPath)
		if relErr != nil {
			return relErr
		}
		id := filepath.ToSlash(rel)

		if d.IsDir() {
			if skippedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if id == ".gitignore" {
			return nil
		}
		if ignored != nil && ignored.MatchesPath(id) {
			return nil
		}

		kind := ClassifyPath(id)

		var content string
		if kind == depgraph.FileKindCode {
			data, readErr := os.ReadFile(fullPath)
			if readErr != nil {
				return fmt.Errorf("failed to read %s: %w", fullPath, readErr)
			}
			content = string(data)
		}

		entries = append(entries, depgraph.FileEntry{ID: id, Kind: kind, Content: content})
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, walkErr)
	}

	return entries, nil
}
