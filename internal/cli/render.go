package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hexrail/internal/config"
	"github.com/matzehuels/hexrail/pkg/core/hex"
	"github.com/matzehuels/hexrail/pkg/core/hittest"
	"github.com/matzehuels/hexrail/pkg/core/render/board"
	"github.com/matzehuels/hexrail/pkg/core/render/rail"
	"github.com/matzehuels/hexrail/pkg/core/render/sink"
	"github.com/matzehuels/hexrail/pkg/core/scene"
	"github.com/matzehuels/hexrail/pkg/editor"
	"github.com/matzehuels/hexrail/pkg/errors"
)

const (
	formatSVG  = "svg"
	formatJSON = "json"
	formatPNG  = "png"
)

var renderFormats = []string{formatSVG, formatJSON, formatPNG}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file (single format) or base path (multiple)
	formats []string // output formats: "svg", "json", "png"
	style   string   // dead-end style, overrides the config
	hover   string   // "q,r,d" side to draw as hovered
	scale   float64  // PNG pixels per canvas unit, overrides the config
}

// renderCommand creates the render command, which draws a board to one or
// more files.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [script]",
		Short: "Render a board to SVG, JSON or PNG",
		Long: `Render a board to SVG, JSON or PNG.

The board is built by applying a toggle script (.toml, .yaml or .json) to an
empty grid. Without a script an empty board of the configured size is drawn.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := errors.ValidateFormats(opts.formats, renderFormats...); err != nil {
				return err
			}
			ctx := cmd.Context()
			cfg, err := c.loadConfig(ctx)
			if err != nil {
				return err
			}
			return runRender(ctx, cfg, args, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, png (comma-separated)")
	cmd.Flags().StringVar(&opts.style, "style", "", "dead-end style: lanes, dots (default from config)")
	cmd.Flags().StringVar(&opts.hover, "hover", "", "draw side q,r,d as hovered")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "PNG pixels per canvas unit (default from config)")

	cmd.ValidArgsFunction = completeScripts
	return cmd
}

// runRender builds the board, draws it once and writes every requested format.
func runRender(ctx context.Context, cfg *config.Config, args []string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	g, base, err := loadGrid(ctx, cfg, args)
	if err != nil {
		return err
	}

	style := cfg.Style()
	if opts.style != "" {
		if style, err = rail.ParseStyle(opts.style); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidStyle, err, "--style")
		}
	}

	m := editor.New(g)
	if opts.hover != "" {
		a, d, err := parseHover(opts.hover)
		if err != nil {
			return err
		}
		if !g.Contains(a) {
			return errors.New(errors.ErrCodeOutOfBounds, "cell %d,%d is off the board", a.Q, a.R)
		}
		p := hittest.Aim(a, d)
		m, _ = editor.Reduce(m, editor.PointerMove{X: p.X, Y: p.Y})
		logger.Debugf("Hovering %d,%d side %d", a.Q, a.R, int(d))
	}

	boardOpts := append(cfg.BoardOptions(), board.WithStyle(style))
	s := editor.Render(m, boardOpts...)
	logger.Debugf("Drew %d cells (%s)", len(s.Groups), style)

	scale := cfg.Render.Scale
	if opts.scale != 0 {
		scale = opts.scale
	}

	outBase := basePath(opts.output, base)
	for _, format := range opts.formats {
		path := outBase + "." + format
		if len(opts.formats) == 1 && opts.output != "" {
			path = opts.output
		}
		if err := renderAndWrite(ctx, s, format, path, scale); err != nil {
			return fmt.Errorf("%s: %w", format, err)
		}
	}
	return nil
}

// renderAndWrite encodes s in format and writes it to path.
func renderAndWrite(ctx context.Context, s scene.Scene, format, path string, scale float64) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	data, err := encodeScene(s, format, scale)
	if err != nil {
		return err
	}
	logger.Debugf("Generated %s: %d bytes", format, len(data))

	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}
	prog.done("Rendered " + path)
	printFile(path)
	return nil
}

// encodeScene dispatches to the sink for format.
func encodeScene(s scene.Scene, format string, scale float64) ([]byte, error) {
	switch format {
	case formatSVG:
		return sink.RenderSVG(s), nil
	case formatJSON:
		return sink.RenderJSON(s)
	case formatPNG:
		return sink.RenderPNG(s, sink.WithScale(scale))
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s", format)
	}
}

// basePath derives the base output path. A known format extension on output
// is stripped; an empty output falls back to input.
func basePath(output, input string) string {
	if output == "" {
		return input
	}
	ext := filepath.Ext(output)
	for _, f := range renderFormats {
		if ext == "."+f {
			return strings.TrimSuffix(output, ext)
		}
	}
	return output
}

// parseHover parses "q,r,d" into a cell and a side.
func parseHover(s string) (hex.Axial, hex.Direction, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return hex.Axial{}, 0, errors.New(errors.ErrCodeInvalidInput, "hover %q must be q,r,d", s)
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return hex.Axial{}, 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "hover %q", s)
		}
		v[i] = n
	}
	if err := errors.ValidateDirection(v[2]); err != nil {
		return hex.Axial{}, 0, err
	}
	return hex.Axial{Q: v[0], R: v[1]}, hex.Direction(v[2]), nil
}
