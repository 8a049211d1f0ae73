package controller

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/problemify/internal/model"
)

// fileItem is one row of the dry-run census.
type fileItem struct {
	path    string
	regions int
	doomed  bool
}

func (f fileItem) FilterValue() string {
	return f.path
}

func (f fileItem) fate() string {
	if f.doomed {
		return "delete"
	}

	return "rewrite"
}

// estimateDelegate renders census rows.
type estimateDelegate struct{}

func (d estimateDelegate) Height() int  { return 1 }
func (d estimateDelegate) Spacing() int { return 0 }
func (d estimateDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d estimateDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	file, ok := item.(fileItem)
	if !ok {
		return
	}

	isSelected := index == lm.Index()

	var pathStyle, countStyle, fateStyle lipgloss.Style

	// Subtract count width (6), fate width (9) and spacing.
	width := lm.Width() - 17

	if isSelected {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		pathStyle = selected
		countStyle = selected.Width(6).Align(lipgloss.Right)
		fateStyle = selected.Width(9).Align(lipgloss.Left)
	} else {
		pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(6).
			Align(lipgloss.Right)

		fateColor := lipgloss.Color("2") // Green
		if file.doomed {
			fateColor = lipgloss.Color("1") // Red
		}

		fateStyle = lipgloss.NewStyle().
			Foreground(fateColor).
			Width(9).
			Align(lipgloss.Left)
	}

	line := fmt.Sprintf("%s  %s  %s",
		countStyle.Render(fmt.Sprintf("%d", file.regions)),
		fateStyle.Render(file.fate()),
		pathStyle.Render(truncateToWidth(file.path, width)),
	)
	_, _ = fmt.Fprint(w, line)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// estimateModel browses the dry-run census without touching the tree.
type estimateModel struct {
	width        int
	height       int
	mode         m.Mode
	fileList     list.Model
	totalRegions int
	totalFiles   int
	deletions    int
}

func newEstimateModel(mode m.Mode, stats []m.FileStat) estimateModel {
	sorted := make([]m.FileStat, len(stats))
	copy(sorted, stats)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	items := make([]list.Item, 0, len(sorted))
	totalRegions := 0
	deletions := 0

	for _, stat := range sorted {
		items = append(items, fileItem{
			path:    string(stat.Path),
			regions: stat.Regions,
			doomed:  stat.Doomed,
		})

		totalRegions += stat.Regions

		if stat.Doomed {
			deletions++
		}
	}

	fileList := list.New(items, estimateDelegate{}, 80, 20)
	fileList.SetShowPagination(false)
	fileList.SetShowFilter(true)
	fileList.SetShowHelp(false)
	fileList.SetShowTitle(false)
	fileList.SetShowStatusBar(false)
	fileList.FilterInput.Placeholder = "Filter by path…"

	return estimateModel{
		mode:         mode,
		fileList:     fileList,
		totalRegions: totalRegions,
		totalFiles:   len(items),
		deletions:    deletions,
	}
}

func (em estimateModel) Init() tea.Cmd {
	return nil
}

func (em estimateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		em.width = msg.Width
		em.height = msg.Height
		em.fileList.SetWidth(em.width)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return em, tea.Quit
		default:
			var newList list.Model

			newList, cmd = em.fileList.Update(msg)
			em.fileList = newList

			return em, cmd
		}
	}

	return em, cmd
}

func (em estimateModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan

	title := titleStyle.Render(fmt.Sprintf("Problemify Dry Run (%s mode)", em.mode))

	summary := summaryStyle.Render(fmt.Sprintf(
		"Files: %s   Regions to strip: %s   Files to delete: %s",
		accentStyle.Render(fmt.Sprintf("%d", em.totalFiles)),
		accentStyle.Render(fmt.Sprintf("%d", em.totalRegions)),
		accentStyle.Render(fmt.Sprintf("%d", em.deletions)),
	))

	table := em.renderTable()

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(em.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		table,
		footer,
	)
}

func (em estimateModel) renderTable() string {
	// Screen height minus title (2), summary (2), footer (1), border (2)
	// and headers (2).
	listHeight := em.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	// Window width minus margin (2), border (2) and padding (2).
	listWidth := em.width - 6

	em.fileList.SetHeight(listHeight)
	em.fileList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%6s  %-9s  %s", "Count", "Fate", "File Path"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			em.fileList.View(),
		),
	)
}
