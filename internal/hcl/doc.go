// Package hcl provides the HCL implementation of the config.FileLoader
// interface. It is responsible for parsing `plant` blocks, evaluating their
// attributes against the catalog evaluation context and translating them
// into catalog entries.
package hcl
