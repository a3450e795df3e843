// Command generate-species-data regenerates the embedded species catalog
// (internal/species/data/species.json) from the editable YAML source kept
// next to this tool. Forestry parameter updates are made in the YAML and
// compiled into the deterministic JSON the catalog embeds.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// SpeciesEntry describes a single species row in species.yaml.
type SpeciesEntry struct {
	ID             string  `yaml:"id"              json:"id"`
	Name           string  `yaml:"name"            json:"name"`
	MaxBiomassKg   float64 `yaml:"max_biomass_kg"  json:"max_biomass_kg"`
	GrowthRate     float64 `yaml:"growth_rate"     json:"growth_rate"`
	WoodDensity    float64 `yaml:"wood_density"    json:"wood_density"`
	CarbonFraction float64 `yaml:"carbon_fraction" json:"carbon_fraction"`
	MaxAgeYears    int     `yaml:"max_age_years"   json:"max_age_years"`
}

// SourceFile is the top-level structure of species.yaml.
type SourceFile struct {
	Version string         `yaml:"version" json:"version"`
	Source  string         `yaml:"source"  json:"source"`
	Species []SpeciesEntry `yaml:"species" json:"species"`
}

func main() {
	sourcePath := flag.String("source", "tools/generate-species-data/species.yaml", "Path to species source YAML")
	outPath := flag.String("out", "internal/species/data/species.json", "Path to generated JSON")
	flag.Parse()

	if err := run(*sourcePath, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "generate-species-data: %v\n", err)
		os.Exit(1)
	}
}

func run(sourcePath, outPath string) error {
	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("reading source: %w", err)
	}

	var source SourceFile
	if err := yaml.Unmarshal(data, &source); err != nil {
		return fmt.Errorf("parsing source: %w", err)
	}

	if len(source.Species) == 0 {
		return fmt.Errorf("source %s contains no species", sourcePath)
	}
	seen := make(map[string]bool, len(source.Species))
	for _, s := range source.Species {
		if s.ID == "" || s.Name == "" {
			return fmt.Errorf("species entry missing id or name: %+v", s)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate species id %q", s.ID)
		}
		seen[s.ID] = true
		if s.MaxBiomassKg <= 0 || s.GrowthRate <= 0 || s.WoodDensity <= 0 {
			return fmt.Errorf("species %q has non-positive growth parameters", s.ID)
		}
		if s.CarbonFraction <= 0 || s.CarbonFraction > 1 {
			return fmt.Errorf("species %q carbon fraction %v outside (0, 1]", s.ID, s.CarbonFraction)
		}
	}

	out, err := json.MarshalIndent(source, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("Wrote %d species to %s\n", len(source.Species), outPath)
	return nil
}
