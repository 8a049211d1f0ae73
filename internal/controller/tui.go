package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/problemify/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayRunHeader prints the one-line run announcement. The conversion run
// itself stays plain text regardless of TTY.
func (t *TUI) DisplayRunHeader(mode m.Mode, root m.Path) {
	_, _ = fmt.Fprintf(t.output, "%s %s\n", mode.Verb(), root)
}

// DisplayEstimation opens an interactive browser over the dry-run census.
func (t *TUI) DisplayEstimation(mode m.Mode, stats []m.FileStat, err error) error {
	if err != nil {
		_, _ = fmt.Fprintf(t.output, "estimation error: %v\n", err)

		return err
	}

	model := newEstimateModel(mode, stats)

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}
