// Package mapping builds and persists the plant id to public image path
// lookup table consumed by the web application.
package mapping

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/vk/plantgen/internal/catalog"
)

// DefaultPrefix is the public URL directory of the plant images.
const DefaultPrefix = "/plants"

// DefaultFileName is the mapping file name, placed next to the image directory.
const DefaultFileName = "plant-images.json"

// Entry maps one plant id to its public image path.
type Entry struct {
	ID   string
	Path string
}

// Mapping is an ordered id to path table. It marshals to a JSON object whose
// keys keep the catalog order.
type Mapping []Entry

// Build returns one entry per plant, in catalog order. Entries are declared
// whether or not the image exists.
func Build(plants catalog.Catalog, prefix string) Mapping {
	prefix = "/" + strings.Trim(prefix, "/")
	m := make(Mapping, 0, len(plants))
	for _, p := range plants {
		m = append(m, Entry{ID: p.ID, Path: path.Join(prefix, p.ID+".png")})
	}
	return m
}

// DefaultPath returns the mapping location for an image directory: a file
// named DefaultFileName in the directory's parent.
func DefaultPath(imageDir string) string {
	return filepath.Join(filepath.Dir(filepath.Clean(imageDir)), DefaultFileName)
}

// MarshalJSON implements json.Marshaler.
func (m Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.ID)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Path)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Write pretty-prints m as JSON and atomically replaces the file at target.
func Write(target string, m Mapping) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode image mapping: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", target, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", target, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write image mapping: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write image mapping: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write image mapping: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("failed to replace %s: %w", target, err)
	}
	return nil
}
