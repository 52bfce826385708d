package preview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/jagdpruefer/quizetl/pkg/models"
)

const maxCellWidth = 48

// Render draws the first limit records as a table with a title line.
// Colors are left out when noColor is set.
func Render(records []models.QuizRecord, limit int, noColor bool) string {
	if limit <= 0 || len(records) == 0 {
		return ""
	}
	if limit > len(records) {
		limit = len(records)
	}

	rows := make([]table.Row, 0, limit)
	for _, rec := range records[:limit] {
		rows = append(rows, table.Row{
			truncate(rec.Question),
			truncate(rec.Subject),
			truncate(rec.Use),
			strconv.Itoa(len(rec.PossibleAnswers)),
			truncate(strings.Join(rec.CorrectAnswers, " | ")),
		})
	}

	t := table.New(
		table.WithColumns(columnsFor(rows)),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(limit+3),
		table.WithStyles(tableStyles(noColor)),
	)

	title := "Preview of the long format (" + strconv.Itoa(limit) + " of " + strconv.Itoa(len(records)) + " questions)"
	return lipgloss.JoinVertical(lipgloss.Left, stylize(title, noColor, lipgloss.Color("33")), t.View())
}

func columnsFor(rows []table.Row) []table.Column {
	titles := []string{"Question", "Subject", "Use", "Answers", "Correct"}
	columns := make([]table.Column, len(titles))
	for i, title := range titles {
		width := lipgloss.Width(title)
		for _, row := range rows {
			if w := lipgloss.Width(row[i]); w > width {
				width = w
			}
		}
		columns[i] = table.Column{Title: title, Width: width}
	}
	return columns
}

// tableStyles returns plain default styles when noColor is set.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	styles.Selected = lipgloss.NewStyle()
	if noColor {
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252")).Bold(true)
	return styles
}

func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxCellWidth {
		return s
	}
	return string(runes[:maxCellWidth-1]) + "…"
}
