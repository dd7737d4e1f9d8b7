// ABOUTME: Tests for catalog loading, merging, writing, validation, and snapshots
// ABOUTME: Uses temp directories for file fixtures

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalogPath = "../../data/catalog.json"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_SampleCatalog(t *testing.T) {
	c, err := Load(sampleCatalogPath)
	require.NoError(t, err)

	counts := c.Counts()
	assert.Equal(t, 5, counts[models.CategoryCPU])
	assert.Equal(t, 4, counts[models.CategoryMemory])
	assert.Equal(t, 3, counts[models.CategoryCase])
	assert.Equal(t, "cpu-r5-5600", c.CPUs[0].ID)
	assert.True(t, c.Motherboards[1].USBCHeader)
	assert.Empty(t, Validate(c), "sample catalog should validate cleanly")
}

func TestLoadDir_SamplePartsMatchMergedCatalog(t *testing.T) {
	fromDir, err := LoadDir("../../data/parts")
	require.NoError(t, err)
	merged, err := Load(sampleCatalogPath)
	require.NoError(t, err)

	dirVersion, err := Version(fromDir)
	require.NoError(t, err)
	mergedVersion, err := Version(merged)
	require.NoError(t, err)
	assert.Equal(t, mergedVersion, dirVersion, "data/catalog.json should be the merge of data/parts")
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "catalog.yaml", `
cpu:
  - id: cpu-1
    name: Ryzen 5 5600
    socket: AM4
    memoryType: DDR4
    tdpW: 65
    tier: 2
    gamingScore: 100
    price: 129.99
case:
  - id: case-1
    name: Budget ATX
    supports: [ATX, mATX]
    gpuMaxMm: 330
    coolerMaxMm: 155
    price: "70"
`)

	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.CPUs, 1)
	assert.Equal(t, "129.99", c.CPUs[0].Price.String())
	assert.Equal(t, []string{"ATX", "mATX"}, c.Cases[0].Supports)
	assert.Empty(t, c.GPUs)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, dir, "catalog.toml", "cpu = []"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(writeFile(t, dir, "broken.json", `{"cpu": [`))
	assert.Error(t, err)
}

func TestLoadDir_MergesCategories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cpu.json", `[{"id": "cpu-1", "name": "CPU", "socket": "AM4", "memoryType": "DDR4", "tdpW": 65, "tier": 2, "price": 100}]`)
	writeFile(t, dir, "gpu.yaml", "- id: gpu-1\n  name: GPU\n  tier: 2\n  tdpW: 130\n  lengthMM: 200\n  price: 200\n")
	writeFile(t, dir, "ram.json", "   \n")

	c, err := LoadDir(dir)
	require.NoError(t, err)

	assert.Len(t, c.CPUs, 1)
	assert.Len(t, c.GPUs, 1)
	assert.Equal(t, 200, c.GPUs[0].LengthMM)
	assert.NotNil(t, c.Memory, "blank file should yield an empty list")
	assert.Empty(t, c.Memory)
	assert.Empty(t, c.Coolers)
}

func TestLoadDir_RejectsNonList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "psu.json", `{"id": "psu-1"}`)

	_, err := LoadDir(dir)
	assert.ErrorContains(t, err, "expected a list of psu records")
}

func TestWrite_RoundTrip(t *testing.T) {
	c, err := Load(sampleCatalogPath)
	require.NoError(t, err)

	for _, name := range []string{"out.json", "out.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Write(path, c))

			back, err := Load(path)
			require.NoError(t, err)

			want, err := Version(c)
			require.NoError(t, err)
			got, err := Version(back)
			require.NoError(t, err)
			assert.Equal(t, want, got, "round trip should preserve catalog contents")
		})
	}
}

func TestValidate_ReportsIssues(t *testing.T) {
	c := &models.Catalog{
		CPUs: []models.CPU{
			{ID: "cpu-1", Name: "A", Socket: "AM4", MemoryType: "DDR4", TDPW: 65, Tier: 2, Price: mustPrice("100")},
			{ID: "cpu-1", Name: "B", Socket: "AM4", MemoryType: "DDR4", TDPW: 65, Tier: 9, Price: mustPrice("100")},
			{Name: "C", MemoryType: "DDR4", TDPW: 65, Tier: 1, Price: mustPrice("0")},
		},
		Cases: []models.Case{{ID: "case-1", Name: "Case", GPUMaxMM: 300, CoolerMaxMM: 150, Price: mustPrice("50")}},
	}

	issues := Validate(c)
	var got []string
	for _, i := range issues {
		got = append(got, i.String())
	}

	assert.Equal(t, []string{
		"cpu[1] tier must be between 1 and 5 (id=cpu-1)",
		"cpu[1] id duplicate (id=cpu-1)",
		"cpu[2] id missing (id=?)",
		"cpu[2] socket missing (id=?)",
		"cpu[2] price must be positive (id=?)",
		"case[0] supports missing (id=case-1)",
	}, got)
}

func TestEmptyCategories(t *testing.T) {
	c := &models.Catalog{CPUs: []models.CPU{{ID: "x"}}}
	empty := EmptyCategories(c)
	assert.Len(t, empty, 7)
	assert.NotContains(t, empty, models.CategoryCPU)
}

func TestSnapshot_VersionTracksContent(t *testing.T) {
	c, err := Load(sampleCatalogPath)
	require.NoError(t, err)

	a, err := NewSnapshot(c, sampleCatalogPath)
	require.NoError(t, err)
	b, err := NewSnapshot(c, sampleCatalogPath)
	require.NoError(t, err)
	assert.Equal(t, a.Version, b.Version)
	assert.Len(t, a.Version, 12)

	c.CPUs[0].Price = mustPrice("131")
	changed, err := NewSnapshot(c, sampleCatalogPath)
	require.NoError(t, err)
	assert.NotEqual(t, a.Version, changed.Version)
}

func TestStore_Reload(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "catalog.json", `{"cpu": [{"id": "cpu-1", "name": "CPU", "socket": "AM4", "memoryType": "DDR4", "tdpW": 65, "tier": 2, "price": 100}]}`)

	store, err := Open(path)
	require.NoError(t, err)
	first := store.Current()
	require.NotNil(t, first)
	assert.Len(t, first.Catalog.CPUs, 1)

	writeFile(t, dir, "catalog.json", `{"cpu": [], "gpu": [{"id": "gpu-1", "name": "GPU", "tier": 1, "tdpW": 100, "lengthMM": 200, "price": 150}]}`)
	require.NoError(t, store.Reload())
	assert.NotEqual(t, first.Version, store.Current().Version)
	assert.Len(t, store.Current().Catalog.GPUs, 1)

	writeFile(t, dir, "catalog.json", `{not json`)
	assert.Error(t, store.Reload())
	assert.Len(t, store.Current().Catalog.GPUs, 1, "failed reload keeps previous snapshot")
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
