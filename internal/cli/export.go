package cli

import (
	"fmt"
	"strings"

	"tasklist-cli/internal/publish"

	"github.com/spf13/cobra"
)

func newExportCmd(a *App) *cobra.Command {
	var markdown bool
	var toPath string
	var overwrite bool
	var skipCompleted bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all lists (JSON/EDN state, or Markdown checklists)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, closeStore, err := openController(cmd.Context(), a, nil)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer closeStore()
			st := ctrl.State()

			if !markdown {
				return writeOut(cmd, a, map[string]any{"data": st})
			}

			toPath = strings.TrimSpace(toPath)
			if toPath == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), publish.RenderStateMarkdown(st, publish.RenderOptions{
					SkipCompleted: skipCompleted,
				}))
				return err
			}
			res, err := publish.WriteState(st, toPath, publish.WriteOptions{
				SkipCompleted: skipCompleted,
				Overwrite:     overwrite,
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, a, map[string]any{"data": res})
		},
	}

	cmd.Flags().BoolVar(&markdown, "markdown", false, "Export Markdown checklists instead of state")
	cmd.Flags().StringVar(&toPath, "to", "", "Write Markdown to this file instead of stdout")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite an existing --to file")
	cmd.Flags().BoolVar(&skipCompleted, "skip-completed", false, "Leave completed tasks out of the Markdown")
	return cmd
}
