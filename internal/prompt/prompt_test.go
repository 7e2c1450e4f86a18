package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/plantgen/internal/catalog"
)

func TestBuild_ContainsNames(t *testing.T) {
	t.Parallel()

	for _, p := range catalog.Default() {
		got := Build(p)
		require.Contains(t, got, p.Name, "prompt for %s", p.ID)
		require.Contains(t, got, p.Scientific, "prompt for %s", p.ID)
		require.NotContains(t, got, ", plant,", "built-in plant %s should not use the fallback clause", p.ID)
	}
}

func TestBuild_ExactText(t *testing.T) {
	t.Parallel()

	got := Build(catalog.Plant{ID: "red-maple", Name: "Red Maple", Scientific: "Acer rubrum", Category: catalog.CategoryTree})
	want := "Botanical illustration of Red Maple (Acer rubrum), full tree with trunk, branches, and characteristic leaves, " +
		"scientific field guide style, detailed realistic drawing, white background, natural colors, high detail, " +
		"educational illustration, clean professional botanical art"
	require.Equal(t, want, got)
}

func TestBuild_UnknownCategoryFallsBack(t *testing.T) {
	t.Parallel()

	for _, c := range []catalog.Category{"moss", "", "TREE"} {
		got := Build(catalog.Plant{ID: "x", Name: "Peat Moss", Scientific: "Sphagnum", Category: c})
		require.True(t, strings.HasPrefix(got, "Botanical illustration of Peat Moss (Sphagnum), plant, "), "category %q: %s", c, got)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	t.Parallel()

	p := catalog.Default()[3]
	require.Equal(t, Build(p), Build(p))
}

func TestDetail(t *testing.T) {
	t.Parallel()

	require.Equal(t, "fern showing fronds and characteristic leaf pattern", Detail(catalog.CategoryFern))
	require.Equal(t, FallbackDetail, Detail("lichen"))
}
