package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "species.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_GeneratesJSON(t *testing.T) {
	source := writeSource(t, `
version: "test"
source: unit test
species:
  - id: pine
    name: Pine
    max_biomass_kg: 600
    growth_rate: 0.3
    wood_density: 0.45
    carbon_fraction: 0.5
    max_age_years: 120
`)
	out := filepath.Join(t.TempDir(), "species.json")

	require.NoError(t, run(source, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var generated SourceFile
	require.NoError(t, json.Unmarshal(data, &generated))
	require.Len(t, generated.Species, 1)
	assert.Equal(t, "pine", generated.Species[0].ID)
	assert.InDelta(t, 600.0, generated.Species[0].MaxBiomassKg, 1e-9)
}

func TestRun_RejectsBadSources(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"empty species list", "version: \"test\"\nspecies: []\n"},
		{
			"duplicate id",
			`
species:
  - {id: pine, name: Pine, max_biomass_kg: 600, growth_rate: 0.3, wood_density: 0.45, carbon_fraction: 0.5}
  - {id: pine, name: Pine Again, max_biomass_kg: 500, growth_rate: 0.2, wood_density: 0.4, carbon_fraction: 0.5}
`,
		},
		{
			"carbon fraction above one",
			"species:\n  - {id: pine, name: Pine, max_biomass_kg: 600, growth_rate: 0.3, wood_density: 0.45, carbon_fraction: 1.5}\n",
		},
		{
			"zero growth rate",
			"species:\n  - {id: pine, name: Pine, max_biomass_kg: 600, growth_rate: 0, wood_density: 0.45, carbon_fraction: 0.5}\n",
		},
		{
			"missing name",
			"species:\n  - {id: pine, max_biomass_kg: 600, growth_rate: 0.3, wood_density: 0.45, carbon_fraction: 0.5}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := writeSource(t, tt.source)
			out := filepath.Join(t.TempDir(), "species.json")

			assert.Error(t, run(source, out))
		})
	}
}

func TestRun_MissingSourceFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "species.json")
	assert.Error(t, run("/nonexistent/species.yaml", out))
}
