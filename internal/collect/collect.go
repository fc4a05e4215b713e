// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package collect finds presentation files under a directory.
package collect

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/ppt2pdf/pkg/types"
)

// extensions lists the recognized inputs, keyed by lowercase extension.
var extensions = map[string]bool{
	types.ExtPPT:  true,
	types.ExtPPTX: true,
}

// Recognized reports whether path has a .ppt or .pptx extension, ignoring case.
func Recognized(path string) bool {
	return extensions[strings.ToLower(filepath.Ext(path))]
}

// Collect returns the presentations under root. Without recursive only the
// direct children of root are considered. Symlinks are followed when deciding
// whether an entry is a regular file; directories and dangling links are
// skipped. Entries come back in directory-listing order.
//
// An unreadable root is an error. In recursive mode an unreadable
// subdirectory produces a warning on warn and its subtree is skipped.
func Collect(root string, recursive bool, warn io.Writer) ([]types.FileEntry, error) {
	if warn == nil {
		warn = io.Discard
	}
	if recursive {
		return collectTree(root, warn)
	}
	return collectDir(root)
}

func collectDir(root string) ([]types.FileEntry, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", root, err)
	}

	var files []types.FileEntry
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		if fe, ok := candidate(path, entry); ok {
			files = append(files, fe)
		}
	}
	return files, nil
}

func collectTree(root string, warn io.Writer) ([]types.FileEntry, error) {
	var files []types.FileEntry
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			fmt.Fprintf(warn, "[!] skipping %s: %v\n", path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if fe, ok := candidate(path, d); ok {
			files = append(files, fe)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", root, err)
	}
	return files, nil
}

// candidate builds a FileEntry when path is a regular file with a recognized
// extension.
func candidate(path string, d fs.DirEntry) (types.FileEntry, bool) {
	if d.IsDir() || !Recognized(path) {
		return types.FileEntry{}, false
	}
	if d.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			return types.FileEntry{}, false
		}
	} else if !d.Type().IsRegular() {
		return types.FileEntry{}, false
	}
	return types.FileEntry{Path: path, Ext: strings.ToLower(filepath.Ext(path))}, true
}
