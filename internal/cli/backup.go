package cli

import (
	"errors"
	"strings"

	"tasklist-cli/internal/store"

	"github.com/spf13/cobra"
)

func newBackupCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Snapshot or restore the stored state (JSONL)",
	}
	cmd.AddCommand(newBackupCreateCmd(a))
	cmd.AddCommand(newBackupRestoreCmd(a))
	return cmd
}

func newBackupCreateCmd(a *App) *cobra.Command {
	var toPath string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Write the stored entries to a JSONL file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			toPath = strings.TrimSpace(toPath)
			if toPath == "" {
				return writeErr(cmd, errors.New("missing --to"))
			}
			kv, err := openStore(cmd.Context(), a)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer func() { _ = kv.Close() }()

			entries, err := store.ReadSnapshot(cmd.Context(), kv)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := store.WriteSnapshotJSONL(toPath, entries); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, a, map[string]any{"data": map[string]any{
				"path":    toPath,
				"entries": len(entries),
			}})
		},
	}

	cmd.Flags().StringVar(&toPath, "to", "", "Backup file path")
	return cmd
}

func newBackupRestoreCmd(a *App) *cobra.Command {
	var fromPath string

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Replace the stored entries with a JSONL backup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fromPath = strings.TrimSpace(fromPath)
			if fromPath == "" {
				return writeErr(cmd, errors.New("missing --from"))
			}
			entries, err := store.ReadSnapshotJSONL(fromPath)
			if err != nil {
				return writeErr(cmd, err)
			}
			kv, err := openStore(cmd.Context(), a)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer func() { _ = kv.Close() }()

			if err := store.RestoreSnapshot(cmd.Context(), kv, entries); err != nil {
				return writeErr(cmd, err)
			}
			st, err := store.Load(cmd.Context(), kv)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, a, map[string]any{"data": st})
		},
	}

	cmd.Flags().StringVar(&fromPath, "from", "", "Backup file path")
	return cmd
}
