package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// TableConfig describes a table to render.
type TableConfig struct {
	Title   string
	Headers []string
	Rows    [][]string
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

// RenderTable renders config as a bordered table. When colors are disabled
// the table is still drawn, only without emphasis, so the output is stable
// for pipes and tests. An empty config renders as the empty string.
func RenderTable(config TableConfig) string {
	if len(config.Headers) == 0 && len(config.Rows) == 0 {
		return ""
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(config.Headers...).
		Rows(config.Rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow && colorEnabled {
				return headerStyle
			}
			return cellStyle
		})

	var out strings.Builder
	if config.Title != "" {
		out.WriteString(applyStyle(titleStyle, config.Title))
		out.WriteString("\n")
	}
	out.WriteString(t.String())
	out.WriteString("\n")
	return out.String()
}
