package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/youruser/cookthumb/internal/batch"
	"github.com/youruser/cookthumb/internal/recipes"
	"github.com/youruser/cookthumb/internal/thumbnail"
)

type generateOpts struct {
	sharedFlags
	inputDir  string
	outputDir string
	workers   int
	filter    recipes.FilterOptions
}

func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render a thumbnail for every recipe under a content directory",
		Long: `generate walks the input directory for recipe markdown files and writes
<output-dir>/<bundle>/thumbnail.png for each one. Recipes that fail to
render are logged and skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.inputDir, "input-dir", "i", "", "content directory containing the recipes")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "directory the page bundles are written to")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "number of thumbnails rendered in parallel (default from config)")
	cmd.Flags().StringSliceVar(&opts.filter.Difficulties, "difficulty", nil, "only recipes with one of these difficulties")
	cmd.Flags().StringSliceVar(&opts.filter.Meals, "meal", nil, "only recipes served as one of these meals")
	cmd.Flags().StringVar(&opts.filter.FreeWords, "match", "", "only recipes whose title or bundle contains every word")
	opts.bind(cmd)
	_ = cmd.MarkFlagRequired("input-dir")
	_ = cmd.MarkFlagRequired("output-dir")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, opts *generateOpts) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}
	if opts.workers > 0 {
		cfg.Batch.Workers = opts.workers
	}
	set, err := cfg.LoadFonts(false)
	if err != nil {
		return err
	}

	r := &batch.Runner{
		Composer: thumbnail.NewComposer(cfg.Layout),
		Fonts:    set,
		Sizes:    cfg.Fonts.Sizes,
		Workers:  cfg.Batch.Workers,
		Filter:   opts.filter,
	}
	sum, err := r.Run(c.withLogger(cmd.Context()), opts.inputDir, opts.outputDir)
	if err != nil {
		return err
	}
	if sum.Failed > 0 {
		return fmt.Errorf("%d of %d thumbnails failed", sum.Failed, sum.Failed+sum.Rendered)
	}
	return nil
}
