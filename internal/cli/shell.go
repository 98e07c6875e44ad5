package cli

import (
	"path/filepath"

	"tasklist-cli/internal/shell"
	"tasklist-cli/internal/store"

	"github.com/spf13/cobra"
)

func newShellCmd(a *App) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Line-mode shell (list, select, add, toggle, ...)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := shell.NewBasicInput(cmd.InOrStdin(), cmd.OutOrStdout())
			if !plain {
				history := ""
				if dir, err := store.ConfigDir(); err == nil {
					history = filepath.Join(dir, "shell_history")
				}
				rl, err := shell.NewLineInput(history)
				if err != nil {
					cmd.PrintErrln("readline unavailable, using plain input:", err)
				}
				in = rl
			}
			defer func() { _ = in.Close() }()

			ctrl, closeStore, err := openController(cmd.Context(), a, nil)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer closeStore()

			sh, err := shell.New(ctrl, in, cmd.OutOrStdout(), cmd.ErrOrStderr(), glyphsASCII())
			if err != nil {
				return writeErr(cmd, err)
			}
			return sh.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Read lines from stdin without line editing")
	return cmd
}
