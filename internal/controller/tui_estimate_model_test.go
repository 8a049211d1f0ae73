package controller

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/problemify/internal/model"
)

func newSizedEstimateModel(stats []m.FileStat) estimateModel {
	em := newEstimateModel(m.ModeProblem, stats)

	updated, _ := em.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	em, _ = updated.(estimateModel)

	return em
}

func TestEstimateModel_Totals(t *testing.T) {
	stats := []m.FileStat{
		{Path: "b.js", Regions: 2},
		{Path: "a.js", Regions: 3},
		{Path: "c.js", Doomed: true},
	}

	em := newEstimateModel(m.ModeProblem, stats)

	if em.totalFiles != 3 {
		t.Errorf("totalFiles = %d, want 3", em.totalFiles)
	}

	if em.totalRegions != 5 {
		t.Errorf("totalRegions = %d, want 5", em.totalRegions)
	}

	if em.deletions != 1 {
		t.Errorf("deletions = %d, want 1", em.deletions)
	}

	// Items are sorted by path.
	first, ok := em.fileList.Items()[0].(fileItem)
	if !ok || first.path != "a.js" {
		t.Errorf("first item = %+v, want a.js", em.fileList.Items()[0])
	}
}

func TestEstimateModel_View(t *testing.T) {
	em := newSizedEstimateModel([]m.FileStat{
		{Path: "src/app.jsx", Regions: 2},
		{Path: "src/answers.js", Doomed: true},
	})

	view := em.View()

	for _, want := range []string{
		"Problemify Dry Run",
		"problem mode",
		"src/app.jsx",
		"delete",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q\nview:\n%s", want, view)
		}
	}
}

func TestEstimateModel_QuitKeys(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c"} {
		em := newSizedEstimateModel(nil)

		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		if key == "ctrl+c" {
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		}

		_, cmd := em.Update(msg)
		if cmd == nil {
			t.Fatalf("Update(%q) returned nil cmd, want tea.Quit", key)
		}
	}
}

func TestFileItem_Fate(t *testing.T) {
	if got := (fileItem{doomed: true}).fate(); got != "delete" {
		t.Errorf("fate() = %q, want delete", got)
	}

	if got := (fileItem{}).fate(); got != "rewrite" {
		t.Errorf("fate() = %q, want rewrite", got)
	}
}

func TestTruncateToWidth(t *testing.T) {
	if got := truncateToWidth("short", 10); got != "short" {
		t.Errorf("truncateToWidth() = %q, want unchanged", got)
	}

	got := truncateToWidth("a/very/long/path/to/a/file.js", 10)
	if !strings.HasSuffix(got, "…") || len([]rune(got)) > 10 {
		t.Errorf("truncateToWidth() = %q, want 10-wide ellipsized string", got)
	}
}
