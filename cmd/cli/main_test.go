package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_InvalidCatalog(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A catalog with a syntax error fails during loading, before any tool runs.
	invalidHCL := `
		plant "red-maple" {
			name = "Red Maple"
		// Missing closing brace here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "plants.hcl")
	err := os.WriteFile(filePath, []byte(invalidHCL), 0o600)
	require.NoError(t, err, "failed to set up test file")

	args := []string{"-catalog", filePath, "-out", filepath.Join(tempDir, "plants")}
	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(context.Background(), out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.Error(t, runErr, "run() should return the catalog error")
	require.Contains(t, runErr.Error(), "failed to load catalog")
	require.Contains(t, runErr.Error(), "failed to parse HCL file")
	require.NoFileExists(t, filepath.Join(tempDir, "plant-images.json"))
}

func TestRun_Missing(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tempDir := t.TempDir()
	catalogPath := filepath.Join(tempDir, "plants.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(`plants:
  - id: royal-fern
    name: Royal Fern
    scientific: Osmunda regalis
    category: fern
`), 0o600))
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"missing", "-catalog", catalogPath, "-out", filepath.Join(tempDir, "plants")})

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "1 plants need images:\n  - royal-fern: Royal Fern\n", out.String())
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
