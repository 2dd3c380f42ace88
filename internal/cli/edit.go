package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// editCommand creates the edit command, which runs the terminal editor.
func (c *CLI) editCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "edit [script]",
		Short: "Edit a board in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig(ctx)
			if err != nil {
				return err
			}
			g, base, err := loadGrid(ctx, cfg, args)
			if err != nil {
				return err
			}
			if output == "" {
				output = base + ".svg"
			}

			m := NewEditModel(g, output, cfg.BoardOptions()...)
			final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
			if err != nil {
				return err
			}
			if em, ok := final.(EditModel); ok {
				printSuccess("%d sides connected", em.Editor().Count())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "SVG file written by the w key (default <script>.svg)")

	cmd.ValidArgsFunction = completeScripts
	return cmd
}
