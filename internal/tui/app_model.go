package tui

import (
	"context"

	"tasklist-cli/internal/app"
	"tasklist-cli/internal/mutate"
	"tasklist-cli/internal/view"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type pane int

const (
	paneLists pane = iota
	paneTasks
)

type mode int

const (
	modeNormal mode = iota
	modeNewList
	modeNewTask
	modeConfirmDelete
)

type appModel struct {
	ctx  context.Context
	ctrl *app.Controller

	// screen is the controller's surface; the lists below are rebuilt from
	// its last Display after every dispatch.
	screen *view.Recorder

	width  int
	height int

	focus pane
	mode  mode

	listsList list.Model
	tasksList list.Model

	input        textinput.Model
	confirmFocus confirmModalFocus

	keys keyMap
	help help.Model

	status    string
	statusErr bool
}

func newAppModel(ctx context.Context, ctrl *app.Controller) (appModel, error) {
	screen := &view.Recorder{}
	if err := ctrl.SetSurface(screen); err != nil {
		return appModel{}, err
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 200

	m := appModel{
		ctx:       ctx,
		ctrl:      ctrl,
		screen:    screen,
		listsList: newList("Lists", nil),
		tasksList: newList("Tasks", nil),
		input:     ti,
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
	m.refresh()
	return m, nil
}

func (m appModel) Init() tea.Cmd { return nil }

// refresh regenerates both panes from the last painted Display, keeping the
// cursor on the same row id when it still exists.
func (m *appModel) refresh() {
	d := m.screen.Last

	curList := selectedItemID(m.listsList)
	listItems := make([]list.Item, 0, len(d.Lists))
	activeIdx := -1
	for i, e := range d.Lists {
		listItems = append(listItems, listItem{entry: e})
		if e.Active {
			activeIdx = i
		}
	}
	m.listsList.SetItems(listItems)
	if !selectListItemByID(&m.listsList, curList) && activeIdx >= 0 {
		m.listsList.Select(activeIdx)
	}
	clampSelection(&m.listsList)

	curTask := selectedItemID(m.tasksList)
	taskItems := make([]list.Item, 0, len(d.Detail.Rows))
	for _, r := range d.Detail.Rows {
		taskItems = append(taskItems, taskItem{row: r})
	}
	m.tasksList.SetItems(taskItems)
	selectListItemByID(&m.tasksList, curTask)
	clampSelection(&m.tasksList)

	if !d.Detail.Visible {
		m.focus = paneLists
	}
	m.applyFocus()
}

func (m *appModel) applyFocus() {
	m.listsList.SetDelegate(newCompactItemDelegate(m.focus == paneLists && m.mode == modeNormal))
	m.tasksList.SetDelegate(newCompactItemDelegate(m.focus == paneTasks && m.mode == modeNormal))
}

// dispatch runs cmd through the controller and surfaces failures on the
// status line.
func (m *appModel) dispatch(cmd app.Command) (mutate.Result, bool) {
	res, err := m.ctrl.Dispatch(m.ctx, cmd)
	m.refresh()
	if err != nil {
		m.setError(err)
		return res, false
	}
	m.clearStatus()
	return res, true
}

func (m *appModel) setError(err error) {
	m.status = "error: " + err.Error()
	m.statusErr = true
}

func (m *appModel) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *appModel) clearStatus() {
	m.status = ""
	m.statusErr = false
}
