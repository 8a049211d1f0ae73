package domain

import (
	"bytes"

	m "github.com/mouse-blink/problemify/internal/model"
)

// StripRegions returns content with every region the given mode removes
// deleted. It is a pure function of (mode, content): matches are found
// top to bottom, non-overlapping, and removed in a single global pass.
// Unbalanced markers never match and survive verbatim; content without
// markers comes back byte-identical.
func StripRegions(content []byte, mode m.Mode) []byte {
	return stripPattern(mode).ReplaceAll(content, nil)
}

// CountRegions reports how many regions the given mode would remove.
func CountRegions(content []byte, mode m.Mode) int {
	return len(stripPattern(mode).FindAllIndex(content, -1))
}

// doomedBy reports whether the whole-file directive opening content marks
// the file for deletion in the given mode. This is a prefix comparison:
// trailing content after the directive on the same line is irrelevant.
func doomedBy(content []byte, mode m.Mode) bool {
	switch mode {
	case m.ModeProblem:
		return bytes.HasPrefix(content, []byte(m.SolutionFileDirective))
	case m.ModeSolution:
		return bytes.HasPrefix(content, []byte(m.ProblemFileDirective))
	}

	return false
}
