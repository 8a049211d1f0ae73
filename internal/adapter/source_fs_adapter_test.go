package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/problemify/internal/model"
)

func writeTestFile(t *testing.T, path string, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func containsPath(paths []string, want string) bool {
	for _, path := range paths {
		if path == want {
			return true
		}
	}

	return false
}

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("visits nested files", func(t *testing.T) {
		a := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "top.js"), "top\n")
		child := filepath.Join(root, "nested", "child.js")
		writeTestFile(t, child, "child\n")

		var visited []string
		err := a.Walk(m.Path(root), func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		assert.True(t, containsPath(visited, filepath.Join(root, "top.js")), "Walk() did not visit top-level file")
		assert.True(t, containsPath(visited, child), "Walk() did not visit nested file")
	})

	t.Run("SkipDir prunes a subtree", func(t *testing.T) {
		a := NewLocalSourceFSAdapter()

		root := t.TempDir()
		skipped := filepath.Join(root, "skipme")
		writeTestFile(t, filepath.Join(skipped, "hidden.js"), "hidden\n")
		writeTestFile(t, filepath.Join(root, "kept.js"), "kept\n")

		var visited []string
		err := a.Walk(m.Path(root), func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() && filepath.Base(path) == "skipme" {
				return SkipDir
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		assert.False(t, containsPath(visited, filepath.Join(skipped, "hidden.js")), "Walk() descended into pruned directory")
		assert.True(t, containsPath(visited, filepath.Join(root, "kept.js")))
	})

	t.Run("propagates errors for missing roots", func(t *testing.T) {
		a := NewLocalSourceFSAdapter()

		err := a.Walk(m.Path(filepath.Join(t.TempDir(), "missing")), func(path string, info os.FileInfo, err error) error {
			return err
		})

		assert.Error(t, err)
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	a := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "app.js")
	content := "const a = 1;\n"
	writeTestFile(t, path, content)

	got, err := a.ReadFile(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, content, string(got))
}

func TestLocalSourceFSAdapter_WriteFile(t *testing.T) {
	a := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "app.js")
	writeTestFile(t, path, "old\n")

	require.NoError(t, a.WriteFile(m.Path(path), []byte("new\n"), 0o600))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(got))
}

func TestLocalSourceFSAdapter_Remove(t *testing.T) {
	a := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "gone.js")
	writeTestFile(t, path, "bye\n")

	require.NoError(t, a.Remove(m.Path(path)))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestLocalSourceFSAdapter_AbsPath(t *testing.T) {
	a := NewLocalSourceFSAdapter()

	t.Run("absolute path unchanged", func(t *testing.T) {
		root := t.TempDir()

		got, err := a.AbsPath(m.Path(root))
		require.NoError(t, err)

		assert.Equal(t, m.Path(root), got)
	})

	t.Run("relative path resolved against working directory", func(t *testing.T) {
		got, err := a.AbsPath("some/relative/dir")
		require.NoError(t, err)

		wd, wdErr := os.Getwd()
		require.NoError(t, wdErr)

		assert.Equal(t, m.Path(filepath.Join(wd, "some", "relative", "dir")), got)
	})

	t.Run("tilde expands to home", func(t *testing.T) {
		home, homeErr := os.UserHomeDir()
		require.NoError(t, homeErr)

		got, err := a.AbsPath("~/courses")
		require.NoError(t, err)

		assert.Equal(t, m.Path(filepath.Join(home, "courses")), got)
	})
}
