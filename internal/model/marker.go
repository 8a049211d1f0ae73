package model

// Marker literals recognized by the grammar. Matching is byte-exact and
// case-sensitive; lowercase or mixed-case variants are never markers.
const (
	// StartSolution and EndSolution delimit solution-only code. They ride
	// on a line comment so the annotated file stays runnable.
	StartSolution = "START SOLUTION"
	EndSolution   = "END SOLUTION"

	// StartProblem and EndProblem delimit problem-only scaffolding. They
	// ride on block comment delimiters.
	StartProblem = "START PROBLEM"
	EndProblem   = "END PROBLEM"

	// Whole-file directives. When one opens a file, the file is deleted
	// outright by the opposite mode instead of being transformed.
	ProblemFileDirective  = "/* PROBLEM FILE */"
	SolutionFileDirective = "/* SOLUTION FILE */"
)
