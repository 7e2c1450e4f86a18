package config

import (
	"context"

	"github.com/vk/plantgen/internal/catalog"
)

// Loader produces the catalog model for a run.
type Loader interface {
	// Load reads every catalog file found under the given paths and merges
	// them into one validated model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// FileLoader is the interface for a format-specific catalog file parser.
type FileLoader interface {
	// Extensions returns the lower-case file extensions, with leading dot,
	// handled by this loader.
	Extensions() []string

	// LoadFile parses a single file into catalog entries.
	LoadFile(ctx context.Context, path string) (catalog.Catalog, error)
}
