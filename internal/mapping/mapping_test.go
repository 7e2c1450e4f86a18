package mapping

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/plantgen/internal/catalog"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	plants := catalog.Catalog{{ID: "sycamore"}, {ID: "black-gum"}}

	require.Equal(t, Mapping{
		{ID: "sycamore", Path: "/plants/sycamore.png"},
		{ID: "black-gum", Path: "/plants/black-gum.png"},
	}, Build(plants, DefaultPrefix))

	require.Equal(t, "/static/img/sycamore.png", Build(plants, "static/img/")[0].Path)
	require.Equal(t, "/sycamore.png", Build(plants, "")[0].Path)
}

func TestBuild_OneEntryPerPlant(t *testing.T) {
	t.Parallel()

	plants := catalog.Default()
	m := Build(plants, DefaultPrefix)
	require.Len(t, m, len(plants))
	for i, p := range plants {
		require.Equal(t, p.ID, m[i].ID)
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "public", DefaultFileName)
	m := Build(catalog.Catalog{{ID: "sycamore"}, {ID: "black-gum"}}, DefaultPrefix)

	require.NoError(t, Write(target, m))

	raw, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, "{\n  \"sycamore\": \"/plants/sycamore.png\",\n  \"black-gum\": \"/plants/black-gum.png\"\n}\n", string(raw),
		"keys keep catalog order and use two-space indentation")

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 2)

	entries, err := os.ReadDir(filepath.Dir(target))
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files are left behind")
}

func TestWrite_OverwritesAndIsStable(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(target, []byte("stale"), 0o644))

	m := Build(catalog.Default(), DefaultPrefix)
	require.NoError(t, Write(target, m))
	first, err := os.ReadFile(target)
	require.NoError(t, err)

	require.NoError(t, Write(target, m))
	second, err := os.ReadFile(target)
	require.NoError(t, err)

	require.NotEqual(t, "stale", string(first))
	require.Equal(t, first, second)
}

func TestWrite_EmptyMapping(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, Write(target, Mapping{}))
	raw, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, "{}\n", string(raw))
}

func TestDefaultPath(t *testing.T) {
	t.Parallel()

	require.Equal(t, filepath.Join("public", DefaultFileName), DefaultPath(filepath.Join("public", "plants")))
	require.Equal(t, filepath.Join("public", DefaultFileName), DefaultPath(filepath.Join("public", "plants")+string(filepath.Separator)))
}
