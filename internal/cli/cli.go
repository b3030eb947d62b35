// Package cli implements the thumbnails command-line interface.
package cli

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/youruser/cookthumb/internal/config"
	"github.com/youruser/cookthumb/internal/logging"
)

// Log levels exported for use in main.go.
const (
	LogDebug = logging.LevelDebug
	LogInfo  = logging.LevelInfo
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: logging.New(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "thumbnails",
		Short:        "Generate social media thumbnails for recipe pages",
		Long:         `thumbnails renders a 1200x600 preview card for every recipe in a Hugo content directory: the recipe photo, its title, difficulty and meal, and the cookbook logo.`,
		SilenceUsage: true,
	}

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.renderCommand())

	return root
}

// withLogger attaches the CLI logger to ctx.
func (c *CLI) withLogger(ctx context.Context) context.Context {
	return logging.WithLogger(ctx, c.Logger)
}

// sharedFlags are the options common to every rendering command.
type sharedFlags struct {
	configPath string
	serif      string
	sansSerif  string
	logo       string
}

func (f *sharedFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "TOML file overriding the built-in layout")
	cmd.Flags().StringVar(&f.serif, "serif", "", "serif TTF used for the heading")
	cmd.Flags().StringVar(&f.sansSerif, "sans-serif", "", "sans-serif TTF used for the metadata")
	cmd.Flags().StringVar(&f.logo, "logo", "", "logo image drawn in the bottom-right corner")
}

// load builds the configuration: defaults, then the config file, then flags.
func (f *sharedFlags) load() (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.Config{}, err
		}
	}
	if f.serif != "" {
		cfg.Fonts.Serif = f.serif
	}
	if f.sansSerif != "" {
		cfg.Fonts.SansSerif = f.sansSerif
	}
	if f.logo != "" {
		cfg.Layout.Logo.Path = f.logo
	}
	if cfg.Fonts.Serif == "" || cfg.Fonts.SansSerif == "" {
		return config.Config{}, errors.New("--serif and --sans-serif are required unless set in --config")
	}
	return cfg, nil
}
