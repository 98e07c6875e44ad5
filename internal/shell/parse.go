package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tasklist-cli/internal/app"
	"tasklist-cli/internal/mutate"
	"tasklist-cli/internal/view"
)

var (
	errQuit = errors.New("quit")
	errHelp = errors.New("help")
	errShow = errors.New("show")
)

// commands lists the shell grammar in help order.
var commands = []struct{ usage, help string }{
	{"list <name>", "create a list"},
	{"select <id|index>", "open a list (index is 1-based, as shown)"},
	{"delete", "delete the open list"},
	{"add <name>", "add a task to the open list"},
	{"toggle <id|index>", "flip a task's checkbox"},
	{"clear", "remove completed tasks from the open list"},
	{"show", "print the lists again"},
	{"help", "show this help"},
	{"quit", "leave the shell"},
}

// Parse turns one input line into a command. Indexes resolve against d, the
// display the user is looking at. Non-dispatch verbs come back as errQuit,
// errHelp or errShow.
func Parse(line string, d view.Display) (app.Command, error) {
	verb, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(verb) {
	case "list", "new":
		return app.CreateList{Name: arg}, nil
	case "select", "open":
		if arg == "" {
			return nil, fmt.Errorf("usage: select <id|index>")
		}
		id, ok := resolveList(arg, d)
		if !ok {
			return nil, mutate.NotFoundError{Kind: "list", ID: arg}
		}
		return app.SelectList{ID: id}, nil
	case "delete":
		return app.DeleteSelectedList{}, nil
	case "add":
		return app.CreateTask{Name: arg}, nil
	case "toggle":
		if arg == "" {
			return nil, fmt.Errorf("usage: toggle <id|index>")
		}
		id, checked := resolveTask(arg, d)
		return app.ToggleTask{ID: id, Checked: !checked}, nil
	case "clear":
		return app.ClearCompleted{}, nil
	case "show", "ls":
		return nil, errShow
	case "help", "?":
		return nil, errHelp
	case "quit", "exit", "q":
		return nil, errQuit
	default:
		return nil, fmt.Errorf("unknown command: %s (try help)", verb)
	}
}

// resolveList maps a 1-based index or an id to a shown list.
func resolveList(arg string, d view.Display) (string, bool) {
	if n, err := strconv.Atoi(arg); err == nil && n >= 1 && n <= len(d.Lists) {
		return d.Lists[n-1].ID, true
	}
	for _, e := range d.Lists {
		if e.ID == arg {
			return e.ID, true
		}
	}
	return "", false
}

// resolveTask returns the task id and its current checkbox state. Unknown ids
// pass through as unchecked; toggling them is a no-op downstream.
func resolveTask(arg string, d view.Display) (string, bool) {
	rows := d.Detail.Rows
	if n, err := strconv.Atoi(arg); err == nil && n >= 1 && n <= len(rows) {
		return rows[n-1].ID, rows[n-1].Checked
	}
	for _, r := range rows {
		if r.ID == arg {
			return r.ID, r.Checked
		}
	}
	return arg, false
}
