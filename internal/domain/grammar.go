// Package domain implements the course tree conversion engine.
package domain

import (
	"regexp"

	m "github.com/mouse-blink/problemify/internal/model"
)

// The grammar is line oriented: every rule consumes whole lines, trailing
// newline included. `(?m)` anchors ^ and $ at line boundaries; the block
// rules switch on `s` locally so their lazy middle can cross lines. The lazy
// middle stops at the nearest END line, never the last one.
//
// Rule order inside each alternation matters: at a shared starting position
// the first listed rule wins, so a START line with a matching END later in
// the file is always consumed as a block rather than as a lone tag line.
const (
	anyInLine = `[^\n]*`

	// endOfLine consumes the line's trailing newline, or the end of input
	// when the final line is unterminated.
	endOfLine = `(?:\n|$)`
)

// problemStrip removes everything that belongs only in the solution variant:
// full solution blocks, the individual problem-block tag lines (the
// scaffolding between them survives), and a standalone problem-file
// directive line.
var problemStrip = regexp.MustCompile(`(?m)` +
	`^` + anyInLine + `//` + anyInLine + m.StartSolution + anyInLine + `\n(?s:.*?)^` + anyInLine + `//` + anyInLine + m.EndSolution + anyInLine + endOfLine +
	`|^` + anyInLine + `/\*` + anyInLine + m.StartProblem + anyInLine + endOfLine +
	`|^` + anyInLine + m.EndProblem + anyInLine + `\*/` + anyInLine + endOfLine +
	`|^` + regexp.QuoteMeta(m.ProblemFileDirective) + `\n`)

// solutionStrip is the dual: full problem blocks go, solution tag lines are
// stripped individually so the code between them survives, and a standalone
// solution-file directive line disappears.
var solutionStrip = regexp.MustCompile(`(?m)` +
	`^` + anyInLine + `/\*` + anyInLine + m.StartProblem + anyInLine + `\n(?s:.*?)^` + anyInLine + m.EndProblem + anyInLine + `\*/` + anyInLine + endOfLine +
	`|^` + anyInLine + `//` + anyInLine + m.StartSolution + anyInLine + endOfLine +
	`|^` + anyInLine + `//` + anyInLine + m.EndSolution + anyInLine + endOfLine +
	`|^` + regexp.QuoteMeta(m.SolutionFileDirective) + `\n`)

// stripPattern returns the removal pattern for the given mode.
func stripPattern(mode m.Mode) *regexp.Regexp {
	if mode == m.ModeSolution {
		return solutionStrip
	}

	return problemStrip
}
