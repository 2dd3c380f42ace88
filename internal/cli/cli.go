package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hexrail/internal/config"
	"github.com/matzehuels/hexrail/pkg/buildinfo"
	"github.com/matzehuels/hexrail/pkg/cache"
	"github.com/matzehuels/hexrail/pkg/core/grid"
	hexio "github.com/matzehuels/hexrail/pkg/io"
)

const (
	// appName is the application name used for display and default file names.
	appName = "hexrail"

	// defaultBase is the output base name when no script is given.
	defaultBase = "board"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger     *log.Logger
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Hexrail lays rail track on the edges of a hex grid",
		Long:         `Hexrail is an editor for rail track drawn on the shared edges of a hexagonal board. Sides are toggled by pointing at them; the track is rendered as straights, bends and dead-end stubs.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (.toml, .yaml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.topologyCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.fixtureCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the --config file, or the defaults when none is given.
func (c *CLI) loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	if c.configPath != "" {
		loggerFromContext(ctx).Debugf("Loaded config %s", c.configPath)
	}
	return cfg, nil
}

// loadGrid builds the starting board: the script in args if there is one,
// an empty board of the configured size otherwise. The returned base name
// is used to derive output paths.
func loadGrid(ctx context.Context, cfg *config.Config, args []string) (*grid.Grid, string, error) {
	if len(args) == 0 {
		return cfg.NewGrid(), defaultBase, nil
	}

	path := args[0]
	script, err := hexio.ImportScript(path)
	if err != nil {
		return nil, "", err
	}
	g, err := script.Grid()
	if err != nil {
		return nil, "", err
	}
	loggerFromContext(ctx).Infof("Loaded %s: %d toggles, %d sides connected", path, len(script.Toggles), g.Count())
	return g, strings.TrimSuffix(path, filepath.Ext(path)), nil
}

// newCache opens the layout cache, falling back to no cache when the
// directory cannot be used.
func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return c
}

// cacheDir returns the cache directory using XDG standard (~/.cache/hexrail/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatSVG}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// openOutput opens path for writing, or stdout when path is empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
