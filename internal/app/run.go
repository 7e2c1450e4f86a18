package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/plantgen/internal/catalog"
	"github.com/vk/plantgen/internal/ctxlog"
	"github.com/vk/plantgen/internal/fsutil"
	"github.com/vk/plantgen/internal/generate"
	"github.com/vk/plantgen/internal/mapping"
	"github.com/vk/plantgen/internal/usda"
	"github.com/vk/plantgen/internal/yaml"
)

// Run executes the configured command.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	var err error
	switch a.config.Command {
	case CommandGenerate:
		err = a.generate(ctx)
	case CommandMissing:
		err = a.missing(ctx)
	case CommandFetch:
		err = a.fetch(ctx)
	default:
		err = fmt.Errorf("unknown command %q", a.config.Command)
	}

	a.logger.Debug("App.Run method finished.", "error", err)
	return err
}

func (a *App) loadCatalog(ctx context.Context) (catalog.Catalog, error) {
	model, err := a.loader.Load(ctx, a.config.CatalogPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	a.logger.Info("Catalog loaded.", "plants", len(model.Plants), "sources", model.Sources)
	return model.Plants, nil
}

// generate produces every missing image and then rewrites the mapping file.
// An interrupted run leaves the previous mapping untouched.
func (a *App) generate(ctx context.Context) error {
	plants, err := a.loadCatalog(ctx)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(a.config.OutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", a.config.OutDir, err)
	}

	a.logger.Info("🚀 Starting generation.", "plants", len(plants), "out_dir", a.config.OutDir, "tool", a.config.Tool)
	driver := generate.NewDriver(a.tool, a.config.OutDir, a.config.settings(), generate.NewConsoleReporter(a.outW))
	summary, err := driver.Run(ctx, plants)
	if err != nil {
		return fmt.Errorf("generation interrupted after %d of %d plants: %w", len(summary.Outcomes), summary.Total, err)
	}

	m := mapping.Build(plants, a.config.PublicPrefix)
	if err := mapping.Write(a.config.MappingPath, m); err != nil {
		return err
	}
	fmt.Fprintf(a.outW, "Image mapping saved to %s\n", a.config.MappingPath)
	a.logger.Info("Image mapping written.", "path", a.config.MappingPath, "entries", len(m))

	if summary.Failed > 0 {
		a.logger.Warn("Some images could not be generated; rerun to retry them.", "failed", summary.Failed)
	}
	return nil
}

// missing reports the plants whose image does not exist yet.
func (a *App) missing(ctx context.Context) error {
	plants, err := a.loadCatalog(ctx)
	if err != nil {
		return err
	}
	return a.reportMissing(plants)
}

func (a *App) reportMissing(plants catalog.Catalog) error {
	var need catalog.Catalog
	for _, p := range plants {
		exists, err := fsutil.Exists(generate.ImagePath(a.config.OutDir, p.ID))
		if err != nil {
			return fmt.Errorf("failed to check image for %s: %w", p.ID, err)
		}
		if !exists {
			need = append(need, p)
		}
	}

	fmt.Fprintf(a.outW, "%d plants need images:\n", len(need))
	for _, p := range need {
		fmt.Fprintf(a.outW, "  - %s: %s\n", p.ID, p.Name)
	}
	return nil
}

// fetch downloads wetland species from USDA PLANTS, saves them as a YAML
// catalog and reports which of them still need images.
func (a *App) fetch(ctx context.Context) error {
	client := usda.NewClient(a.config.USDABaseURL, a.httpClient)
	defer client.Close()
	fetcher := usda.NewFetcher(client, a.config.FetchDelay, a.outW)

	res, err := fetcher.Fetch(ctx, a.config.Symbols)
	if err != nil {
		return fmt.Errorf("fetch interrupted: %w", err)
	}

	fmt.Fprintf(a.outW, "\nFetched %d plants with wetland status\n", len(res.Records))
	fmt.Fprintf(a.outW, "Errors: %d\n", len(res.Errors))
	for _, e := range res.Errors {
		a.logger.Debug("Symbol not fetched.", "symbol", e.Symbol, "error", e.Err)
	}

	if err := yaml.WriteCatalog(a.config.FetchOut, res.Records); err != nil {
		return err
	}
	fmt.Fprintf(a.outW, "\nSaved to %s\n\n", a.config.FetchOut)

	return a.reportMissing(res.Catalog())
}
