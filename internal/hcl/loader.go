package hcl

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/plantgen/internal/catalog"
	"github.com/vk/plantgen/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.FileLoader interface.
type Loader struct{}

// NewLoader creates a new HCL catalog loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.FileLoader.
func (l *Loader) Extensions() []string {
	return []string{".hcl"}
}

// LoadFile parses one HCL catalog file.
func (l *Loader) LoadFile(ctx context.Context, path string) (catalog.Catalog, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing HCL catalog file.", "file", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, newEvalContext(), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	plants := make(catalog.Catalog, 0, len(root.Plants))
	for _, b := range root.Plants {
		plants = append(plants, translatePlant(b))
	}
	return plants, nil
}

// translatePlant converts the HCL-specific block into a catalog entry.
func translatePlant(b *plantBlock) catalog.Plant {
	return catalog.Plant{
		ID:         strings.TrimSpace(b.ID),
		Name:       strings.TrimSpace(b.Name),
		Scientific: strings.TrimSpace(b.Scientific),
		Category:   catalog.Category(strings.ToLower(strings.TrimSpace(b.Category))),
	}
}
