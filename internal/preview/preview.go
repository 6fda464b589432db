package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tonhe/vistaconf/internal/config"
)

const minWidth = 20

// Render sketches the layout as it would sit on a terminal of the given
// width: optional header bar, one bordered cell per box in declaration
// order, optional error-log strip. A nil layout yields a hint instead.
func Render(l *config.Layout, width int) string {
	sty := DefaultStyles()
	if width < minWidth {
		width = minWidth
	}
	if l == nil {
		return sty.Hint.Render("no layout declared") + "\n"
	}

	var sections []string
	if l.ShowHeader {
		sections = append(sections, sty.Header.Width(width).Render("header"))
	}
	sections = append(sections, flowBoxes(sty, l.Boxes, width)...)
	if l.ErrLogRows > 0 {
		sections = append(sections, renderErrLog(sty, l.ErrLogRows, width))
	}
	if len(sections) == 0 {
		return sty.Hint.Render("layout is empty") + "\n"
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

// flowBoxes packs box cells left to right into rows no wider than width.
func flowBoxes(sty Styles, boxes []config.Box, width int) []string {
	var rows []string
	var row []string
	used := 0
	for _, b := range boxes {
		cell := renderBox(sty, b)
		w := lipgloss.Width(cell)
		if used > 0 && used+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, used = nil, 0
		}
		row = append(row, cell)
		used += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return rows
}

// renderBox draws one bordered cell: the category keyword, then its option
// keywords dimmed beneath.
func renderBox(sty Styles, b config.Box) string {
	body := sty.BoxTitle.Render(b.Category.String())
	if opts := b.Options.Names(); len(opts) > 0 {
		body = lipgloss.JoinVertical(lipgloss.Left,
			body,
			sty.BoxOpts.Render(strings.Join(opts, " ")),
		)
	}
	return sty.Box.Render(body)
}

// renderErrLog draws the error-log strip. Tall logs are clipped to a few
// rows; the label keeps the real count.
func renderErrLog(sty Styles, rows, width int) string {
	h := rows
	if h > 4 {
		h = 4
	}
	label := fmt.Sprintf("errlog (%d rows)", rows)
	return sty.ErrLog.Width(width - 2).Height(h).Render(label)
}
