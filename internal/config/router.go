package config

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/plantgen/internal/ctxlog"
	"github.com/vk/plantgen/internal/fsutil"
)

// Router is a Loader that discovers catalog files and hands each one to the
// FileLoader registered for its extension.
type Router struct {
	byExt map[string]FileLoader
	exts  []string
}

// NewRouter creates a Router over the given file loaders. A later loader
// replaces an earlier one registered for the same extension.
func NewRouter(loaders ...FileLoader) *Router {
	r := &Router{byExt: make(map[string]FileLoader)}
	for _, l := range loaders {
		for _, ext := range l.Extensions() {
			ext = strings.ToLower(ext)
			if _, exists := r.byExt[ext]; !exists {
				r.exts = append(r.exts, ext)
			}
			r.byExt[ext] = l
		}
	}
	return r
}

// Load implements Loader. With no paths it returns the built-in catalog.
func (r *Router) Load(ctx context.Context, paths ...string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	if len(paths) == 0 {
		logger.Debug("No catalog path given, using built-in catalog.")
		model := DefaultModel()
		return model, model.Plants.Validate()
	}
	if len(r.exts) == 0 {
		return nil, fmt.Errorf("no catalog loaders registered")
	}

	model := &Model{}
	for _, root := range paths {
		files, err := fsutil.FindFilesByExtension(root, r.exts...)
		if err != nil {
			return nil, fmt.Errorf("failed to scan catalog path %s: %w", root, err)
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no catalog files (%s) found at %s", strings.Join(r.exts, ", "), root)
		}
		for _, file := range files {
			loader := r.byExt[strings.ToLower(filepath.Ext(file))]
			plants, err := loader.LoadFile(ctx, file)
			if err != nil {
				return nil, err
			}
			logger.Debug("Catalog file loaded.", "file", file, "plants", len(plants))
			model.Plants = append(model.Plants, plants...)
			model.Sources = append(model.Sources, file)
		}
	}

	if err := model.Plants.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	if unknown := model.Plants.UnknownCategories(); len(unknown) > 0 {
		logger.Warn("Plants with unknown category will use the generic prompt clause.", "ids", unknown)
	}
	logger.Debug("Catalog loading complete.", "files", len(model.Sources), "plants", len(model.Plants))
	return model, nil
}
