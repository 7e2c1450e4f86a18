package config

import "github.com/vk/plantgen/internal/catalog"

// Model is the unified, format-agnostic representation of a run's input.
type Model struct {
	Plants catalog.Catalog
	// Sources lists the files the plants were read from, in load order.
	// It is empty for the built-in catalog.
	Sources []string
}

// DefaultModel returns a model backed by the built-in catalog.
func DefaultModel() *Model {
	return &Model{Plants: catalog.Default()}
}
