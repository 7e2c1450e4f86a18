package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vk/plantgen/internal/catalog"
)

func writeHCL(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plants.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeHCL(t, `
		plant "red-maple" {
			name       = "Red Maple"
			scientific = "Acer rubrum"
			category   = category.tree
		}

		plant "swamp-rose" {
			name       = title("swamp rose")
			scientific = "Rosa palustris"
			category   = "Shrub"
		}

		plant "peat-moss" {
			name       = format("%s Moss", "Peat")
			scientific = "Sphagnum"
			category   = "moss"
		}
	`)

	// --- Act ---
	plants, err := NewLoader().LoadFile(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	want := catalog.Catalog{
		{ID: "red-maple", Name: "Red Maple", Scientific: "Acer rubrum", Category: catalog.CategoryTree},
		{ID: "swamp-rose", Name: "Swamp Rose", Scientific: "Rosa palustris", Category: catalog.CategoryShrub},
		{ID: "peat-moss", Name: "Peat Moss", Scientific: "Sphagnum", Category: "moss"},
	}
	if diff := cmp.Diff(want, plants); diff != "" {
		t.Errorf("LoadFile() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile_Empty(t *testing.T) {
	t.Parallel()

	plants, err := NewLoader().LoadFile(context.Background(), writeHCL(t, ""))
	require.NoError(t, err)
	require.Empty(t, plants)
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "syntax error",
			content: `plant "a" {`,
			wantErr: "failed to parse HCL file",
		},
		{
			name: "missing required attribute",
			content: `plant "a" {
				name     = "A"
				category = category.herb
			}`,
			wantErr: "failed to decode HCL file",
		},
		{
			name: "unknown category variable",
			content: `plant "a" {
				name       = "A"
				scientific = "Aa"
				category   = category.moss
			}`,
			wantErr: "Unsupported attribute",
		},
		{
			name:    "unknown block",
			content: `generator "x" {}`,
			wantErr: "failed to decode HCL file",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewLoader().LoadFile(context.Background(), writeHCL(t, tc.content))
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestExtensions(t *testing.T) {
	t.Parallel()
	require.Equal(t, []string{".hcl"}, NewLoader().Extensions())
}

func TestLoadFile_Environment(t *testing.T) {
	t.Setenv("PLANTGEN_TEST_GENUS", "Acer")

	path := writeHCL(t, `
		plant "red-maple" {
			name       = "Red Maple"
			scientific = "${env.PLANTGEN_TEST_GENUS} rubrum"
			category   = category.tree
		}
	`)

	plants, err := NewLoader().LoadFile(context.Background(), path)

	require.NoError(t, err)
	require.Len(t, plants, 1)
	require.Equal(t, "Acer rubrum", plants[0].Scientific)
}
