package cli

import (
	"fmt"
	"strings"

	"tasklist-cli/internal/store"

	"github.com/spf13/cobra"
)

func newConfigCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change TUI preferences",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the config file and resolved values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			path, err := store.ConfigPath()
			if err != nil {
				return writeErr(cmd, err)
			}
			dataDir, err := store.DataDir(a.Dir)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, a, map[string]any{"data": map[string]any{
				"path":    path,
				"dataDir": dataDir,
				"glyphs":  cfg.TUIGlyphs(),
				"theme":   cfg.TUITheme(),
			}})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <tui.glyphs|tui.theme> <value>",
		Short: "Set a TUI preference",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			if cfg.TUI == nil {
				cfg.TUI = &store.TUIConfig{}
			}
			v := strings.ToLower(strings.TrimSpace(args[1]))
			switch args[0] {
			case "tui.glyphs":
				if v != "unicode" && v != "ascii" {
					return writeErr(cmd, fmt.Errorf("invalid glyphs %q (unicode|ascii)", v))
				}
				cfg.TUI.Glyphs = v
			case "tui.theme":
				if v != "auto" && v != "light" && v != "dark" {
					return writeErr(cmd, fmt.Errorf("invalid theme %q (auto|light|dark)", v))
				}
				cfg.TUI.Theme = v
			default:
				return writeErr(cmd, fmt.Errorf("unknown key: %s", args[0]))
			}
			if err := store.SaveConfig(cfg); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, a, map[string]any{"data": cfg})
		},
	})
	return cmd
}
