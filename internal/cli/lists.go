package cli

import (
	"strings"

	"tasklist-cli/internal/app"
	"tasklist-cli/internal/mutate"

	"github.com/spf13/cobra"
)

func newListsCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lists",
		Short: "List commands",
	}
	cmd.AddCommand(newListsCreateCmd(a))
	cmd.AddCommand(newListsSelectCmd(a))
	cmd.AddCommand(newListsDeleteCmd(a))
	cmd.AddCommand(newListsShowCmd(a))
	return cmd
}

func newListsCreateCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a list (blank names are ignored)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDispatch(cmd, a, app.CreateList{Name: strings.Join(args, " ")}, func(res mutate.Result) any {
				return res.List
			})
		},
	}
}

func newListsSelectCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "select <list-id>",
		Short: "Select a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, closeStore, err := openController(cmd.Context(), a, nil)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer closeStore()

			id := strings.TrimSpace(args[0])
			st := ctrl.State()
			if _, ok := st.FindList(id); !ok {
				return writeErr(cmd, mutate.NotFoundError{Kind: "list", ID: id})
			}
			res, err := ctrl.Dispatch(cmd.Context(), app.SelectList{ID: id})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, a, map[string]any{"data": res.List, "changed": res.Changed})
		},
	}
}

func newListsDeleteCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete the selected list and its tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDispatch(cmd, a, app.DeleteSelectedList{}, func(res mutate.Result) any {
				return map[string]any{"removed": res.Removed}
			})
		},
	}
}

func newListsShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current display regions (lists + selected list detail)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, closeStore, err := openController(cmd.Context(), a, nil)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer closeStore()
			return writeOut(cmd, a, map[string]any{"data": ctrl.Display()})
		},
	}
}

// runDispatch opens the store, runs one command and prints the envelope
// {"data": data(res), "changed": res.Changed}.
func runDispatch(cmd *cobra.Command, a *App, c app.Command, data func(mutate.Result) any) error {
	ctrl, closeStore, err := openController(cmd.Context(), a, nil)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer closeStore()

	res, err := ctrl.Dispatch(cmd.Context(), c)
	if err != nil {
		return writeErr(cmd, err)
	}
	return writeOut(cmd, a, map[string]any{"data": data(res), "changed": res.Changed})
}
