package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hexrail/pkg/cache"
	"github.com/matzehuels/hexrail/pkg/core/grid"
	"github.com/matzehuels/hexrail/pkg/core/render/nodelink"
	"github.com/matzehuels/hexrail/pkg/errors"
)

const formatDOT = "dot"

// topologyOpts holds the command-line flags for the topology command.
type topologyOpts struct {
	output   string
	format   string // "svg" or "dot"
	detailed bool   // label nodes with their board position
	noCache  bool   // always run graphviz
}

// topologyCommand creates the topology command, which draws the track as a
// graph of side midpoints joined by straights and bends.
func (c *CLI) topologyCommand() *cobra.Command {
	opts := topologyOpts{format: formatSVG}

	cmd := &cobra.Command{
		Use:   "topology [script]",
		Short: "Render the track as a node-link graph",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateFormats([]string{opts.format}, formatSVG, formatDOT); err != nil {
				return err
			}
			ctx := cmd.Context()
			cfg, err := c.loadConfig(ctx)
			if err != nil {
				return err
			}
			g, base, err := loadGrid(ctx, cfg, args)
			if err != nil {
				return err
			}
			if opts.output == "" {
				opts.output = base + "_topology." + opts.format
			}
			return runTopology(ctx, g, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "label nodes with their board position")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "skip the layout cache")

	cmd.ValidArgsFunction = completeScripts
	return cmd
}

// runTopology writes the track graph of g as DOT or as an SVG laid out by
// graphviz.
func runTopology(ctx context.Context, g *grid.Grid, opts *topologyOpts) error {
	logger := loggerFromContext(ctx)

	links := nodelink.Links(g)
	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: opts.detailed})
	logger.Debugf("Track graph: %d links", len(links))

	data := []byte(dot)
	if opts.format == formatSVG {
		svg, err := layoutTopology(ctx, dot, newCache(opts.noCache))
		if err != nil {
			return err
		}
		data = svg
	}

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := out.Write(data); err != nil {
		return err
	}

	printSuccess("Track graph with %d links", len(links))
	printFile(opts.output)
	return nil
}

// layoutTopology runs graphviz on dot, reusing a cached layout of the same
// graph when there is one.
func layoutTopology(ctx context.Context, dot string, c cache.Cache) ([]byte, error) {
	logger := loggerFromContext(ctx)
	defer c.Close()

	key := cache.TopologyKey(dot)
	if svg, hit, err := c.Get(ctx, key); err != nil {
		logger.Debugf("Layout cache read failed: %v", err)
	} else if hit {
		logger.Debug("Layout cache hit")
		return svg, nil
	}

	spinner := newSpinnerWithContext(ctx, "Laying out track graph...")
	spinner.Start()
	svg, err := nodelink.RenderSVG(ctx, dot)
	if err != nil {
		spinner.StopWithError("Graph layout failed")
		return nil, err
	}
	spinner.Stop()

	if err := c.Set(ctx, key, svg, cache.TopologyTTL); err != nil {
		logger.Debugf("Layout cache write failed: %v", err)
	}
	return svg, nil
}
