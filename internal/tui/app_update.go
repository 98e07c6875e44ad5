package tui

import (
	"fmt"

	"tasklist-cli/internal/app"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		switch m.mode {
		case modeNewList, modeNewTask:
			return m.updateInput(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		default:
			return m.updateNormal(msg)
		}
	}

	// Cursor blink and friends.
	if m.mode == modeNewList || m.mode == modeNewTask {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	detail := m.screen.Last.Detail

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.SwitchPane):
		if detail.Visible {
			if m.focus == paneLists {
				m.focus = paneTasks
			} else {
				m.focus = paneLists
			}
			m.applyFocus()
		}
		return m, nil

	case key.Matches(msg, m.keys.NewList):
		return m, m.openInput(modeNewList, "List name")

	case key.Matches(msg, m.keys.NewTask):
		if !detail.Visible {
			m.setStatus("open a list first (enter)")
			return m, nil
		}
		return m, m.openInput(modeNewTask, "Task name")

	case key.Matches(msg, m.keys.DeleteList):
		if !detail.Visible {
			m.setStatus("no list selected")
			return m, nil
		}
		m.mode = modeConfirmDelete
		m.confirmFocus = confirmFocusConfirm
		m.applyFocus()
		return m, nil

	case key.Matches(msg, m.keys.ClearCompleted):
		if res, ok := m.dispatch(app.ClearCompleted{}); ok && res.Removed > 0 {
			m.setStatus(fmt.Sprintf("cleared %d completed", res.Removed))
		}
		return m, nil

	case m.focus == paneLists && key.Matches(msg, m.keys.Select):
		it, ok := m.listsList.SelectedItem().(listItem)
		if !ok {
			return m, nil
		}
		if _, ok := m.dispatch(app.SelectList{ID: it.entry.ID}); ok && m.screen.Last.Detail.Visible {
			m.focus = paneTasks
			m.applyFocus()
		}
		return m, nil

	case m.focus == paneTasks && key.Matches(msg, m.keys.Toggle):
		it, ok := m.tasksList.SelectedItem().(taskItem)
		if !ok {
			return m, nil
		}
		m.dispatch(app.ToggleTask{ID: it.row.ID, Checked: !it.row.Checked})
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == paneTasks {
		m.tasksList, cmd = m.tasksList.Update(msg)
	} else {
		m.listsList, cmd = m.listsList.Update(msg)
	}
	return m, cmd
}

func (m *appModel) openInput(kind mode, placeholder string) tea.Cmd {
	m.mode = kind
	m.clearStatus()
	m.input.Reset()
	m.input.Placeholder = placeholder
	m.applyFocus()
	return m.input.Focus()
}

func (m *appModel) closeInput() {
	m.input.Blur()
	m.input.Reset()
	m.mode = modeNormal
	m.applyFocus()
}

func (m appModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlG:
		m.closeInput()
		return m, nil

	case tea.KeyEnter:
		name := m.input.Value()
		kind := m.mode
		m.closeInput()
		if kind == modeNewList {
			if res, ok := m.dispatch(app.CreateList{Name: name}); ok && res.List != nil {
				m.focus = paneLists
				selectListItemByID(&m.listsList, res.List.ID)
				m.applyFocus()
			}
			return m, nil
		}
		if res, ok := m.dispatch(app.CreateTask{Name: name}); ok && res.Task != nil {
			selectListItemByID(&m.tasksList, res.Task.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "left", "right", "h", "l":
		m.confirmFocus = m.confirmFocus.toggle()
		return m, nil
	case "y":
		return m.confirmDelete()
	case "enter":
		if m.confirmFocus == confirmFocusConfirm {
			return m.confirmDelete()
		}
		m.mode = modeNormal
		m.applyFocus()
		return m, nil
	case "n", "esc", "ctrl+g":
		m.mode = modeNormal
		m.applyFocus()
		return m, nil
	}
	return m, nil
}

func (m appModel) confirmDelete() (tea.Model, tea.Cmd) {
	m.mode = modeNormal
	if res, ok := m.dispatch(app.DeleteSelectedList{}); ok && res.Removed > 0 {
		m.setStatus("list deleted")
	}
	return m, nil
}
