package model

type Task struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Complete bool   `json:"complete"`
}

type TaskList struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Tasks []Task `json:"tasks"`
}

// AppState is the whole persisted state of the app.
// SelectedListID is empty when no list is selected.
type AppState struct {
	Lists          []TaskList `json:"lists"`
	SelectedListID string     `json:"selectedListId,omitempty"`
}

// NewList returns an empty list with a fresh id. The name is stored verbatim.
func NewList(name string) TaskList {
	return TaskList{
		ID:    NewID("list"),
		Name:  name,
		Tasks: []Task{},
	}
}

// NewTask returns an incomplete task with a fresh id.
func NewTask(name string) Task {
	return Task{
		ID:   NewID("task"),
		Name: name,
	}
}

func (s *AppState) FindList(id string) (*TaskList, bool) {
	if s == nil || id == "" {
		return nil, false
	}
	for i := range s.Lists {
		if s.Lists[i].ID == id {
			return &s.Lists[i], true
		}
	}
	return nil, false
}

// SelectedList returns the list referenced by SelectedListID.
// A stale selection reports false.
func (s *AppState) SelectedList() (*TaskList, bool) {
	if s == nil {
		return nil, false
	}
	return s.FindList(s.SelectedListID)
}

// Clone returns a deep copy so read-only callers can't reach into the owner's slices.
func (s AppState) Clone() AppState {
	out := AppState{
		Lists:          make([]TaskList, len(s.Lists)),
		SelectedListID: s.SelectedListID,
	}
	for i, l := range s.Lists {
		out.Lists[i] = l.Clone()
	}
	return out
}

func (l *TaskList) FindTask(id string) (*Task, bool) {
	if l == nil || id == "" {
		return nil, false
	}
	for i := range l.Tasks {
		if l.Tasks[i].ID == id {
			return &l.Tasks[i], true
		}
	}
	return nil, false
}

// Remaining counts incomplete tasks.
func (l TaskList) Remaining() int {
	n := 0
	for _, t := range l.Tasks {
		if !t.Complete {
			n++
		}
	}
	return n
}

func (l TaskList) Clone() TaskList {
	tasks := make([]Task, len(l.Tasks))
	copy(tasks, l.Tasks)
	l.Tasks = tasks
	return l
}
