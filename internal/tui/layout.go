package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	minWidth     = 40
	minBodyH     = 4
	chromeHeight = 6 // header, blank, status, help and pane borders
)

func modalBodyWidth(width int) int {
	w := width - 12
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

func renderModalBox(width int, title string, content string) string {
	bodyW := modalBodyWidth(width)
	header := lipgloss.NewStyle().
		Width(bodyW).
		Bold(true).
		Foreground(colorModalHeaderFg).
		Background(colorModalHeaderBg).
		Render(" " + title)
	return lipgloss.NewStyle().
		Border(glyphBorder()).
		BorderForeground(colorAccent).
		Padding(0, 1).
		Render(header + "\n\n" + content)
}

func (m *appModel) paneWidths() (left, right int) {
	w := m.width
	if w < minWidth {
		w = minWidth
	}
	left = w / 3
	if left < 20 {
		left = 20
	}
	right = w - left
	return left, right
}

func (m *appModel) bodyHeight() int {
	h := m.height - chromeHeight
	if h < minBodyH {
		h = minBodyH
	}
	return h
}

func (m *appModel) resizeLists() {
	left, right := m.paneWidths()
	h := m.bodyHeight()
	// Pane border (2) and heading line (1).
	m.listsList.SetSize(left-4, h-1)
	m.tasksList.SetSize(right-4, h-1)
}

func (m appModel) View() string {
	header := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render("Tasklist")

	body := m.viewBody()
	switch m.mode {
	case modeNewList:
		body = m.placeModal(renderInputModal(m.width, "New list", m.input.View()))
	case modeNewTask:
		body = m.placeModal(renderInputModal(m.width, "New task", m.input.View()))
	case modeConfirmDelete:
		title := displayName(m.screen.Last.Detail.Title)
		body = m.placeModal(renderConfirmModal(m.width, "Delete list", "Delete \""+title+"\" and all of its tasks?", "Delete", "Cancel", m.confirmFocus))
	}

	status := ""
	if m.status != "" {
		if m.statusErr {
			status = styleError().Render(m.status)
		} else {
			status = styleMuted().Render(m.status)
		}
	}
	footer := m.help.View(m.keys)
	return strings.Join([]string{header, body, status, footer}, "\n")
}

func (m appModel) placeModal(modal string) string {
	w := m.width
	if w < minWidth {
		w = minWidth
	}
	return lipgloss.Place(w, m.bodyHeight()+2, lipgloss.Center, lipgloss.Center, modal)
}

func (m appModel) viewBody() string {
	left, right := m.paneWidths()
	h := m.bodyHeight()
	d := m.screen.Last

	listsBody := m.listsList.View()
	if len(d.Lists) == 0 {
		listsBody = styleMuted().Render("(no lists)  n: new list")
	}
	listsPane := m.paneStyle(m.focus == paneLists, left, h).
		Render(styleHeading().Render("My lists") + "\n" + listsBody)

	if !d.Detail.Visible {
		return listsPane
	}

	tasksBody := m.tasksList.View()
	if len(d.Detail.Rows) == 0 {
		tasksBody = styleMuted().Render("No tasks yet  a: add task")
	}
	heading := lipgloss.NewStyle().Bold(true).Render(displayName(d.Detail.Title)) +
		"  " + styleMuted().Render(d.Detail.Count)
	tasksPane := m.paneStyle(m.focus == paneTasks, right, h).
		Render(heading + "\n" + tasksBody)

	return lipgloss.JoinHorizontal(lipgloss.Top, listsPane, tasksPane)
}

func (m appModel) paneStyle(focused bool, w, h int) lipgloss.Style {
	border := colorPaneBorder
	if focused {
		border = colorAccent
	}
	// Width/Height exclude the border in lipgloss.
	return lipgloss.NewStyle().
		Border(glyphBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(w - 2).
		Height(h)
}
