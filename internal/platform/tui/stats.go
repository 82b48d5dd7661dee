package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-spider/internal/storage"
)

// statsTable builds a table with the shared look for stats output.
func statsTable(columns []table.Column, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// RenderStatsTable formats per-difficulty aggregates for the stats
// command.
func RenderStatsTable(stats []storage.DifficultyStats) string {
	columns := []table.Column{
		{Title: "Variant", Width: 8},
		{Title: "Games", Width: 6},
		{Title: "Wins", Width: 5},
		{Title: "Best", Width: 6},
		{Title: "Avg score", Width: 10},
		{Title: "Avg moves", Width: 10},
	}

	rows := make([]table.Row, len(stats))
	for i, s := range stats {
		rows[i] = table.Row{
			s.Difficulty,
			fmt.Sprintf("%d", s.Games),
			fmt.Sprintf("%d", s.Wins),
			fmt.Sprintf("%d", s.BestScore),
			fmt.Sprintf("%.1f", s.AvgScore),
			fmt.Sprintf("%.1f", s.AvgMoves),
		}
	}

	return statsTable(columns, rows).View()
}

// RenderRecentTable formats the most recent results, newest first.
func RenderRecentTable(results []storage.GameResult) string {
	columns := []table.Column{
		{Title: "Date", Width: 14},
		{Title: "Variant", Width: 8},
		{Title: "Seed", Width: 12},
		{Title: "Won", Width: 4},
		{Title: "Score", Width: 6},
		{Title: "Moves", Width: 6},
		{Title: "Runs", Width: 5},
	}

	rows := make([]table.Row, len(results))
	for i, r := range results {
		won := "no"
		if r.Won {
			won = "yes"
		}
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			r.Difficulty,
			r.Seed,
			won,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Moves),
			fmt.Sprintf("%d", r.CompletedRuns),
		}
	}

	return statsTable(columns, rows).View()
}
