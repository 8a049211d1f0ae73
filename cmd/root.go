// Package cmd provides the root command and CLI setup for problemify.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/problemify/internal/adapter"
	"github.com/mouse-blink/problemify/internal/controller"
	"github.com/mouse-blink/problemify/internal/domain"
	m "github.com/mouse-blink/problemify/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var ui controller.UI
var workflow domain.Workflow

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	workflow = domain.NewWorkflow(fsAdapter, ui)
}

var problemFlag bool
var solutionFlag bool
var parallelFlag int

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "problemify (-p | -s) <path>",
		Short: "Materialize the problem or solution variant of a course tree",
		Long: `Problemify converts an annotated course codebase in place into either its
problem (exercise) variant or its solution (reference) variant.

Authors maintain a single tree where solution code lives between
// START SOLUTION and // END SOLUTION line comments, problem scaffolding
between /* START PROBLEM and END PROBLEM */ block comment lines, and
whole files are tagged with a /* PROBLEM FILE */ or /* SOLUTION FILE */
first line. Each run strips the regions and deletes the files that do not
belong in the selected variant.

The conversion is destructive: files under <path> are rewritten or
deleted with no backup.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			mode, err := resolveMode()
			if err != nil {
				return err
			}

			return workflow.Convert(domain.ConvertArgs{
				Mode:    mode,
				Root:    m.Path(args[0]),
				Threads: parallelFlag,
			})
		},
	}
	cmd.PersistentFlags().BoolVarP(&problemFlag, "problem", "p", false, "produce the problem (exercise) variant")
	cmd.PersistentFlags().BoolVarP(&solutionFlag, "solution", "s", false, "produce the solution variant")
	cmd.Flags().IntVar(&parallelFlag, "parallel", 1, "number of files processed concurrently")

	return cmd
}

// resolveMode maps the mode flags to a Mode. Exactly one flag must be set;
// anything else is a usage error raised before the filesystem is touched.
func resolveMode() (m.Mode, error) {
	switch {
	case problemFlag && solutionFlag:
		return "", fmt.Errorf("--problem and --solution are mutually exclusive")
	case problemFlag:
		return m.ModeProblem, nil
	case solutionFlag:
		return m.ModeSolution, nil
	default:
		return "", fmt.Errorf("one of --problem or --solution is required")
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
