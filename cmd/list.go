package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/problemify/internal/domain"
	m "github.com/mouse-blink/problemify/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list (-p | -s) <path>",
		Short: "List candidate files and what a conversion would remove",
		Long: `List walks the course tree exactly like a conversion run would and
reports, per candidate file, how many marker regions the selected mode
would strip and whether the whole-file directive would delete the file.

Nothing is written or deleted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			mode, err := resolveMode()
			if err != nil {
				return err
			}

			return workflow.Estimate(domain.EstimateArgs{
				Mode: mode,
				Root: m.Path(args[0]),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
