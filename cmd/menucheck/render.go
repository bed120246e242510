package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/osse101/chestmenus/internal/errcollect"
	"github.com/osse101/chestmenus/internal/menu"
	"github.com/osse101/chestmenus/internal/reload"
	"github.com/osse101/chestmenus/internal/utils"
)

const cellWidth = 4

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250"))

	filledCell = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("238"))
	brokenCell = filledCell.Foreground(lipgloss.Color("196"))
	emptyCell  = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("240"))

	gridStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("243")).
			Padding(0, 1)
)

func printReport(out io.Writer, report *reload.Report) {
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("Checked %d files, loaded %d menus", report.Files, report.Menus)))

	for _, e := range report.Entries {
		style, mark := errorStyle, "✗"
		if e.Severity == errcollect.SeverityWarning {
			style, mark = warningStyle, "⚠"
		}
		line := mark + " " + e.Message
		if e.Detail != "" {
			line += ": " + e.Detail
		}
		fmt.Fprintln(out, style.Render(line))
	}

	if report.Errors == 0 && report.Warnings == 0 {
		fmt.Fprintln(out, successStyle.Render("✓ no problems found"))
		return
	}
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%d errors, %d warnings", report.Errors, report.Warnings)))
}

// renderMenu draws the grid with a short material label in every filled
// slot. Icons without a material are marked.
func renderMenu(m *menu.Menu) string {
	rows := make([]string, 0, m.RowCount())
	for row := 0; row < m.RowCount(); row++ {
		cells := make([]string, 0, m.ColumnCount())
		for col := 0; col < m.ColumnCount(); col++ {
			cells = append(cells, renderCell(m.GetIcon(row, col)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	title := headerStyle.Render(fmt.Sprintf("%s  %s", m.SourceFile(), utils.StripColors(m.Title())))
	return lipgloss.JoinVertical(lipgloss.Left, title, gridStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
}

func renderCell(icon *menu.Icon) string {
	switch {
	case icon == nil:
		return emptyCell.Render("·")
	case !icon.HasMaterial():
		return brokenCell.Render("??")
	default:
		return filledCell.Render(materialLabel(string(icon.Material)))
	}
}

// materialLabel abbreviates GOLDEN_APPLE to GA and STONE to ST.
func materialLabel(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool { return r == '_' })
	switch len(parts) {
	case 0:
		return "?"
	case 1:
		return utils.TruncateRunes(parts[0], 2)
	default:
		return utils.TruncateRunes(parts[0], 1) + utils.TruncateRunes(parts[1], 1)
	}
}
