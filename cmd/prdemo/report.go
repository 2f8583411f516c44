package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type pullRequest struct {
	Title       string
	Author      string
	Status      string
	Description string
}

// demoPullRequests is simulated review data for demo runs.
var demoPullRequests = []pullRequest{
	{
		Title:       "Add moisture sensor calibration curve",
		Author:      "cgjacobs",
		Status:      "merged",
		Description: "Maps raw SEN0308 readings onto the 0-100% scale",
	},
	{
		Title:       "Expose check interval in status payload",
		Author:      "jvillanueva",
		Status:      "open",
		Description: "Adds check_interval_seconds to the /status document",
	},
	{
		Title:       "Fix timed close racing the auto loop",
		Author:      "cgjacobs",
		Status:      "open",
		Description: "Timed opens now pause the auto irrigation check",
	},
	{
		Title:       "Retire the UDP discovery prototype",
		Author:      "msandoval",
		Status:      "closed",
		Description: "The controller address is static on the lab network",
	},
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)

	statusStyles = map[string]lipgloss.Style{
		"open":   cellStyle.Foreground(lipgloss.Color("10")),
		"merged": cellStyle.Foreground(lipgloss.Color("13")),
		"closed": cellStyle.Foreground(lipgloss.Color("9")),
	}
)

func renderReport(prs []pullRequest) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 2 {
				if s, ok := statusStyles[prs[row].Status]; ok {
					return s
				}
			}
			return cellStyle
		}).
		Headers("TITLE", "AUTHOR", "STATUS", "DESCRIPTION")

	for _, pr := range prs {
		t.Row(pr.Title, pr.Author, pr.Status, pr.Description)
	}

	return t.Render()
}
