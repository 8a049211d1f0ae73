package controller

import (
	"bytes"
	"fmt"
	"sort"

	m "github.com/mouse-blink/problemify/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayRunHeader prints the one-line run announcement.
func (s *SimpleUI) DisplayRunHeader(mode m.Mode, root m.Path) {
	s.printf("%s %s\n", mode.Verb(), root)
}

// DisplayEstimation prints the dry-run census as a table, or the error.
func (s *SimpleUI) DisplayEstimation(_ m.Mode, stats []m.FileStat, err error) error {
	if err != nil {
		s.printf("estimation error: %v\n", err)
		return err
	}

	sorted := make([]m.FileStat, len(stats))
	copy(sorted, stats)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Regions", "Fate"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	totalRegions := 0
	deletions := 0

	for _, stat := range sorted {
		fate := "rewrite"
		if stat.Doomed {
			fate = "delete"
			deletions++
		}

		table.Append([]string{string(stat.Path), fmt.Sprintf("%d", stat.Regions), fate})

		totalRegions += stat.Regions
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(sorted)),
		fmt.Sprintf("%d", totalRegions),
		fmt.Sprintf("%d to delete", deletions),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
