package cli

import (
	"tasklist-cli/internal/store"
	"tasklist-cli/internal/view"

	"github.com/charmbracelet/glamour/styles"
	"github.com/spf13/cobra"
)

func newShowCmd(a *App) *cobra.Command {
	var markdown bool
	var style string
	var width int
	var ascii bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the lists and the selected list's tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var surface view.Surface = view.TextSurface{W: cmd.OutOrStdout(), ASCII: ascii || glyphsASCII()}
			if markdown {
				surface = view.MarkdownSurface{W: cmd.OutOrStdout(), Width: width, Style: style}
			}
			// Opening paints the current display onto the surface.
			_, closeStore, err := openController(cmd.Context(), a, surface)
			if err != nil {
				return writeErr(cmd, err)
			}
			closeStore()
			return nil
		},
	}

	cmd.Flags().BoolVar(&markdown, "markdown", false, "Render as Markdown (glamour)")
	cmd.Flags().StringVar(&style, "style", styles.DarkStyle, "Glamour style for --markdown (dark|light|notty|ascii|...)")
	cmd.Flags().IntVar(&width, "width", 80, "Word-wrap width for --markdown")
	cmd.Flags().BoolVar(&ascii, "ascii", false, "ASCII-only markers")
	return cmd
}

// glyphsASCII follows the TUI glyph preference so both views agree.
func glyphsASCII() bool {
	cfg, err := store.LoadConfig()
	if err != nil {
		return false
	}
	return cfg.TUIGlyphs() == "ascii"
}
