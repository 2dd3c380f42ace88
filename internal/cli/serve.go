package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/hexrail/internal/server"
	hexio "github.com/matzehuels/hexrail/pkg/io"
	"github.com/matzehuels/hexrail/pkg/observability"
)

// serveCommand creates the serve command, which runs the browser editor.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve [script]",
		Short: "Run the browser editor",
		Long: `Run the browser editor over HTTP.

Every visitor gets a private board kept in memory until their session
expires. When a script is given, each new board starts from it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := c.loadConfig(ctx)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			var opts []server.Option
			if len(args) == 1 {
				script, err := hexio.ImportScript(args[0])
				if err != nil {
					return err
				}
				if err := script.Validate(); err != nil {
					return err
				}
				opts = append(opts, server.WithScript(script))
			}

			observability.Register(observability.NewCounters())
			printInfo("Editor at %s", StyleLink.Render("http://"+cfg.Server.Addr))
			return server.New(cfg, logger, opts...).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, else localhost:8080)")

	cmd.ValidArgsFunction = completeScripts
	return cmd
}
