// Package model defines the data structures for course tree conversion.
package model

// Path represents a file system path.
type Path string

// Mode selects which variant of the course tree a run materializes.
type Mode string

const (
	// ModeProblem produces the exercise variant: solution-only regions
	// and solution-tagged files are removed.
	ModeProblem Mode = "problem"

	// ModeSolution produces the reference variant: problem-only scaffolding
	// and problem-tagged files are removed.
	ModeSolution Mode = "solution"
)

// Verb returns the progressive verb announced in the run status line.
func (m Mode) Verb() string {
	if m == ModeSolution {
		return "Solutionifying"
	}

	return "Problemifying"
}
