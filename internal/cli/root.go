package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"tasklist-cli/internal/app"
	"tasklist-cli/internal/format"
	"tasklist-cli/internal/store"
	"tasklist-cli/internal/tui"
	"tasklist-cli/internal/view"

	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	PrettyJSON bool
	Format     string
	// Ephemeral keeps state in memory for this invocation only.
	Ephemeral bool
}

func NewRootCmd() *cobra.Command {
	a := &App{}

	cmd := &cobra.Command{
		Use:          "tasklist",
		Short:        "Local task lists (TUI + scriptable CLI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  tasklist

  # Scriptable commands
  tasklist lists create Groceries
  tasklist lists select list-...
  tasklist tasks add Milk

  # Print the lists as the TUI would show them
  tasklist show

  # Line-mode shell
  tasklist shell
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(cmd, a)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&a.Dir, "dir", envOr("TASKLIST_DIR", ""), "Data directory (default: <config dir>/data)")
	cmd.PersistentFlags().BoolVar(&a.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&a.Format, "format", envOr("TASKLIST_FORMAT", "json"), "Output format (json|edn)")
	cmd.PersistentFlags().BoolVar(&a.Ephemeral, "ephemeral", false, "Keep state in memory only (nothing is read or written)")

	cmd.AddCommand(newListsCmd(a))
	cmd.AddCommand(newTasksCmd(a))
	cmd.AddCommand(newShowCmd(a))
	cmd.AddCommand(newExportCmd(a))
	cmd.AddCommand(newShellCmd(a))
	cmd.AddCommand(newConfigCmd(a))
	cmd.AddCommand(newDoctorCmd(a))
	cmd.AddCommand(newBackupCmd(a))

	return cmd
}

func runTUI(cmd *cobra.Command, a *App) error {
	cfg, err := store.LoadConfig()
	if err != nil {
		return writeErr(cmd, fmt.Errorf("load config: %w", err))
	}
	logger, closeLog, err := tui.DebugLogger()
	if err != nil {
		return writeErr(cmd, err)
	}
	defer func() { _ = closeLog() }()

	var opts []app.Option
	if logger != nil {
		opts = append(opts, app.WithLogger(logger))
	}
	ctrl, closeStore, err := openController(cmd.Context(), a, nil, opts...)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer closeStore()

	return tui.Run(cmd.Context(), ctrl, tui.Options{
		Glyphs: cfg.TUIGlyphs(),
		Theme:  cfg.TUITheme(),
	})
}

func openStore(ctx context.Context, a *App) (store.KV, error) {
	if a.Ephemeral {
		return store.NewMemoryKV(nil), nil
	}
	dir, err := store.DataDir(a.Dir)
	if err != nil {
		return nil, err
	}
	a.Dir = dir
	return store.OpenSQLite(ctx, store.SQLitePath(dir))
}

// openController opens the store and loads state, painting onto surface
// (nil for headless commands). The returned func closes the store.
func openController(ctx context.Context, a *App, surface view.Surface, opts ...app.Option) (*app.Controller, func(), error) {
	if ctx == nil {
		ctx = context.Background()
	}
	kv, err := openStore(ctx, a)
	if err != nil {
		return nil, nil, err
	}
	ctrl, err := app.Open(ctx, kv, surface, opts...)
	if err != nil {
		_ = kv.Close()
		return nil, nil, err
	}
	return ctrl, func() { _ = kv.Close() }, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, a *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, a.Format, a.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
