// Package config defines the format-agnostic catalog model for the
// application, along with the core interfaces (Loader, FileLoader) for
// loading plant catalogs from various sources.
//
// The `config.Model` is the single source of truth for the `generate` and
// `mapping` packages. Concrete file formats, such as HCL and YAML, are
// implemented in separate packages and combined here by a Router.
package config
