// Package adapter contains infrastructure adapters for the Problemify CLI.
package adapter

import (
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/problemify/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain
// layer relies on when converting course trees. It intentionally hides direct
// `os` access so the conversion logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Walk traverses the tree rooted at the provided path depth-first,
	// invoking fn for every entry.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile overwrites a file's content with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// Remove deletes a single file.
	Remove(path m.Path) error

	// FileInfo returns metadata for a path so the domain can check existence
	// or distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)

	// AbsPath resolves a user-supplied path (possibly relative or ~-prefixed)
	// to an absolute path.
	AbsPath(path m.Path) (m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// SkipDir, returned from a FilepathWalkFunc, prunes the directory being
// visited from the walk.
var SkipDir = filepath.SkipDir

// LocalSourceFSAdapter is the concrete implementation backed by the local
// filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over every entry under root, descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	return filepath.Walk(string(root), func(path string, info os.FileInfo, err error) error {
		return fn(path, info, err)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// Remove deletes the file at the provided path.
func (a *LocalSourceFSAdapter) Remove(path m.Path) error {
	return os.Remove(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// AbsPath expands a leading ~ and resolves the path against the working
// directory.
func (a *LocalSourceFSAdapter) AbsPath(path m.Path) (m.Path, error) {
	pathStr := string(path)

	if strings.HasPrefix(pathStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		suffix := strings.TrimPrefix(pathStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		pathStr = filepath.Join(home, suffix)
	}

	if pathStr == "" {
		pathStr = "."
	}

	abs, err := filepath.Abs(pathStr)
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}
