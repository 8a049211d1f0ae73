package domain

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mouse-blink/problemify/internal/adapter"
	m "github.com/mouse-blink/problemify/internal/model"
)

// candidateExts is the fixed set of source extensions the tool converts.
var candidateExts = map[string]struct{}{
	".js":  {},
	".jsx": {},
}

// ignoredNames lists entry base names that are skipped wholesale: ignored
// directories are never descended into, ignored files never included.
var ignoredNames = map[string]struct{}{
	"node_modules": {},
	"bundle.js":    {},
}

// discover walks root depth-first and returns every candidate source file.
// Order follows the walk (lexical per directory) but callers must only rely
// on set membership. Any filesystem error aborts the walk.
func (w *workflow) discover(root m.Path) ([]m.Path, error) {
	if _, err := w.fsAdapter.FileInfo(root); err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	var paths []m.Path

	err := w.fsAdapter.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if _, skip := ignoredNames[filepath.Base(path)]; skip {
			if info.IsDir() {
				return adapter.SkipDir
			}

			return nil
		}

		if info.IsDir() {
			return nil
		}

		if _, ok := candidateExts[filepath.Ext(path)]; !ok {
			return nil
		}

		paths = append(paths, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}
