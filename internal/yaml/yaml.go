// Package yaml provides the YAML implementation of the config.FileLoader
// interface and the writer used to persist fetched catalogs.
package yaml

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	yamlv3 "gopkg.in/yaml.v3"

	"github.com/vk/plantgen/internal/catalog"
	"github.com/vk/plantgen/internal/ctxlog"
)

// document is the top-level structure of a YAML catalog file. Plant entries
// may carry additional keys; they are ignored on load.
type document[T any] struct {
	Plants []T `yaml:"plants"`
}

// Loader is the YAML-specific implementation of the config.FileLoader interface.
type Loader struct{}

// NewLoader creates a new YAML catalog loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.FileLoader.
func (l *Loader) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// LoadFile parses one YAML catalog file.
func (l *Loader) LoadFile(ctx context.Context, path string) (catalog.Catalog, error) {
	ctxlog.FromContext(ctx).Debug("Parsing YAML catalog file.", "file", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open YAML file %s: %w", path, err)
	}
	defer f.Close()

	var doc document[catalog.Plant]
	if err := yamlv3.NewDecoder(f).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return catalog.Catalog{}, nil
		}
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}

	plants := make(catalog.Catalog, 0, len(doc.Plants))
	for _, p := range doc.Plants {
		p.ID = strings.TrimSpace(p.ID)
		p.Name = strings.TrimSpace(p.Name)
		p.Scientific = strings.TrimSpace(p.Scientific)
		p.Category = catalog.Category(strings.ToLower(strings.TrimSpace(string(p.Category))))
		plants = append(plants, p)
	}
	return plants, nil
}

// WriteCatalog writes entries as a YAML catalog file at path, creating
// parent directories as needed. T should carry the same yaml keys as
// catalog.Plant so the file can be loaded back with Loader.
func WriteCatalog[T any](path string, entries []T) error {
	var buf bytes.Buffer
	enc := yamlv3.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(document[T]{Plants: entries}); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write catalog %s: %w", path, err)
	}
	return nil
}
