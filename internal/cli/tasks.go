package cli

import (
	"strings"

	"tasklist-cli/internal/app"
	"tasklist-cli/internal/mutate"

	"github.com/spf13/cobra"
)

func newTasksCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Task commands (act on the selected list)",
	}
	cmd.AddCommand(newTasksAddCmd(a))
	cmd.AddCommand(newTasksToggleCmd(a))
	cmd.AddCommand(newTasksClearCmd(a))
	return cmd
}

func newTasksAddCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a task to the selected list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDispatch(cmd, a, app.CreateTask{Name: strings.Join(args, " ")}, func(res mutate.Result) any {
				return res.Task
			})
		},
	}
}

func newTasksToggleCmd(a *App) *cobra.Command {
	var checked bool

	cmd := &cobra.Command{
		Use:   "toggle <task-id>",
		Short: "Set a task's completion (flips it unless --checked is given)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, closeStore, err := openController(cmd.Context(), a, nil)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer closeStore()

			id := strings.TrimSpace(args[0])
			want := checked
			if !cmd.Flags().Changed("checked") {
				want = !currentlyChecked(ctrl, id)
			}
			res, err := ctrl.Dispatch(cmd.Context(), app.ToggleTask{ID: id, Checked: want})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, a, map[string]any{"data": res.Task, "changed": res.Changed})
		},
	}

	cmd.Flags().BoolVar(&checked, "checked", true, "Completion state to set")
	return cmd
}

func currentlyChecked(ctrl *app.Controller, id string) bool {
	st := ctrl.State()
	l, ok := st.SelectedList()
	if !ok {
		return false
	}
	t, ok := l.FindTask(id)
	return ok && t.Complete
}

func newTasksClearCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove completed tasks from the selected list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDispatch(cmd, a, app.ClearCompleted{}, func(res mutate.Result) any {
				return map[string]any{"removed": res.Removed}
			})
		},
	}
}
