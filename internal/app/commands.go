package app

// Command is a typed user intent. Input surfaces build commands; only the
// Controller applies them.
type Command interface {
	// Kind names the command in logs and error messages.
	Kind() string
}

type CreateList struct{ Name string }

type SelectList struct{ ID string }

type DeleteSelectedList struct{}

type CreateTask struct{ Name string }

type ToggleTask struct {
	ID      string
	Checked bool
}

type ClearCompleted struct{}

func (CreateList) Kind() string         { return "list.create" }
func (SelectList) Kind() string         { return "list.select" }
func (DeleteSelectedList) Kind() string { return "list.delete" }
func (CreateTask) Kind() string         { return "task.create" }
func (ToggleTask) Kind() string         { return "task.toggle" }
func (ClearCompleted) Kind() string     { return "task.clear-completed" }
