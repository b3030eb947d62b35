// Package batch renders a thumbnail for every recipe under a content
// directory and writes it into the recipe's page bundle.
package batch

import (
	"context"
	"errors"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/youruser/cookthumb/internal/fonts"
	"github.com/youruser/cookthumb/internal/logging"
	"github.com/youruser/cookthumb/internal/recipes"
	"github.com/youruser/cookthumb/internal/thumbnail"
	"github.com/youruser/cookthumb/internal/util"
)

// OutputName is the file name of every generated thumbnail.
const OutputName = "thumbnail.png"

// Runner renders recipes in parallel.
type Runner struct {
	Composer *thumbnail.Composer
	Fonts    *fonts.Set
	Sizes    fonts.Sizes
	Workers  int
	// Filter limits the run to matching recipes; the rest count as skipped.
	Filter recipes.FilterOptions
}

// Summary counts the outcome of a Run.
type Summary struct {
	Rendered int
	Skipped  int
	Failed   int
}

// OutputPath is where the thumbnail for p is written under outputDir.
func OutputPath(outputDir string, p recipes.Page) string {
	return filepath.Join(outputDir, p.Bundle, OutputName)
}

// Run renders every recipe found under inputDir. A recipe that fails is
// logged and counted and does not stop the others; only a failure to walk
// inputDir or a cancelled ctx ends the run early.
func (r *Runner) Run(ctx context.Context, inputDir, outputDir string) (Summary, error) {
	logger := logging.FromContext(ctx)
	progress := logging.NewProgress(logger)

	paths, err := recipes.Discover(inputDir)
	if err != nil {
		return Summary{}, err
	}
	logger.Debug("discovered recipes", "count", len(paths), "dir", inputDir)

	var (
		mu  sync.Mutex
		sum Summary
	)
	count := func(field *int) {
		mu.Lock()
		*field++
		mu.Unlock()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.Workers, 1))
	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			page, err := recipes.Load(path)
			if errors.Is(err, recipes.ErrNoTitle) {
				logger.Debug("skipping file without title", "path", path)
				count(&sum.Skipped)
				return nil
			}
			if err != nil {
				logger.Error("failed to read recipe", "path", path, "err", err)
				count(&sum.Failed)
				return nil
			}
			if !r.Filter.Match(page) {
				logger.Debug("filtered out", "recipe", page.Title, "path", path)
				count(&sum.Skipped)
				return nil
			}
			if err := r.Render(ctx, page, OutputPath(outputDir, page)); err != nil {
				logger.Error("failed to render thumbnail", "recipe", page.Title, "path", path, "err", err)
				count(&sum.Failed)
				return nil
			}
			count(&sum.Rendered)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sum, err
	}

	progress.Done("generated thumbnails", "rendered", sum.Rendered, "skipped", sum.Skipped, "failed", sum.Failed)
	return sum, nil
}

// Render renders a single page and writes the PNG to dst, creating its
// directory.
func (r *Runner) Render(ctx context.Context, page recipes.Page, dst string) error {
	img, err := r.Composer.Compose(ctx, page.Recipe, r.Fonts.Faces(r.Sizes))
	if err != nil {
		return err
	}
	if err := util.EnsureParent(dst); err != nil {
		return err
	}
	if err := thumbnail.SavePNG(dst, img); err != nil {
		return err
	}
	logging.FromContext(ctx).Debug("wrote thumbnail", "recipe", page.Title, "path", dst)
	return nil
}
