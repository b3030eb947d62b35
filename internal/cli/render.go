package cli

import (
	"github.com/spf13/cobra"

	"github.com/youruser/cookthumb/internal/batch"
	"github.com/youruser/cookthumb/internal/recipes"
	"github.com/youruser/cookthumb/internal/thumbnail"
)

type renderOpts struct {
	sharedFlags
	output string
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{output: batch.OutputName}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render the thumbnail of a single recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "PNG file to write")
	opts.bind(cmd)

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, path string, opts *renderOpts) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}
	set, err := cfg.LoadFonts(false)
	if err != nil {
		return err
	}
	page, err := recipes.Load(path)
	if err != nil {
		return err
	}

	r := &batch.Runner{
		Composer: thumbnail.NewComposer(cfg.Layout),
		Fonts:    set,
		Sizes:    cfg.Fonts.Sizes,
	}
	if err := r.Render(c.withLogger(cmd.Context()), page, opts.output); err != nil {
		return err
	}
	c.Logger.Info("wrote thumbnail", "recipe", page.Title, "path", opts.output)
	return nil
}
