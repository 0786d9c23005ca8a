package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/deck/internal/config"
	"github.com/matzehuels/deck/pkg/buildinfo"
	"github.com/matzehuels/deck/pkg/errors"
	deckio "github.com/matzehuels/deck/pkg/io"
	"github.com/matzehuels/deck/pkg/workspace"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "deck"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigPath overrides the default configuration file location.
	ConfigPath string

	config *config.Config
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
		Use:   appName,
		Short: "Deck arranges cards on a workspace",
		Long: `Deck is a layout and interaction engine for a workspace of cards.

It arranges cards freely or in stack, split, focus and grid modes, previews
magnetic snapping, serves layouts over HTTP and runs an interactive terminal
workspace.`,
		Version:      buildinfo.Read().Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (default: $XDG_CONFIG_HOME/deck/config.toml)")

	// Register all subcommands
	root.AddCommand(c.arrangeCommand())
	root.AddCommand(c.snapCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// loadConfig reads the configuration once per process.
func (c *CLI) loadConfig() (*config.Config, error) {
	if c.config != nil {
		return c.config, nil
	}
	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return nil, err
	}
	if cfg.Path != "" {
		c.Logger.Debug("loaded config", "path", cfg.Path)
	}
	for _, key := range cfg.Undecoded {
		c.Logger.Warn("unknown config key", "key", key)
	}
	c.config = cfg
	return cfg, nil
}

// =============================================================================
// Workspace Helpers
// =============================================================================

// openWorkspace loads a workspace file with the configured options. A
// rejected duplicate is logged and the remaining cards are kept.
func (c *CLI) openWorkspace(path string, logger *log.Logger) (*workspace.Workspace, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	doc, err := deckio.ImportJSON(path)
	if err != nil {
		return nil, err
	}
	ws, err := doc.Load(cfg.WorkspaceOptions(logger))
	if errors.Is(err, errors.ErrCodeDuplicateCard) {
		c.Logger.Warn("skipped duplicate cards", "file", path, "err", errors.UserMessage(err))
		err = nil
	}
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded workspace", "file", path, "cards", ws.Len(), "mode", ws.Mode())
	return ws, nil
}

// resizeViewport applies non-zero width and height overrides.
func resizeViewport(ws *workspace.Workspace, width, height float64) error {
	if width == 0 && height == 0 {
		return nil
	}
	vp := ws.Bounds().Viewport
	if width != 0 {
		vp.W = width
	}
	if height != 0 {
		vp.H = height
	}
	return ws.SetViewport(vp.W, vp.H)
}
