// Package controller provides output adapters for displaying conversion
// results.
package controller

import (
	m "github.com/mouse-blink/problemify/internal/model"
)

// UI defines the interface for user-facing output. Implementations can use
// different output methods (simple text, TUI).
type UI interface {
	// DisplayRunHeader announces the run on a single line before any
	// filesystem mutation begins.
	DisplayRunHeader(mode m.Mode, root m.Path)

	// DisplayEstimation shows the dry-run marker census or the error that
	// prevented it.
	DisplayEstimation(mode m.Mode, stats []m.FileStat, err error) error
}
