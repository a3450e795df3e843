package species

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// catalogFile mirrors the embedded species.json layout.
type catalogFile struct {
	Version string    `json:"version"`
	Source  string    `json:"source"`
	Species []Profile `json:"species"`
}

// EmbeddedCatalog implements Catalog using the embedded species data file.
type EmbeddedCatalog struct {
	logger zerolog.Logger

	// Thread-safe initialization
	once sync.Once
	err  error

	// In-memory profile index (built on first access)
	index map[string]Profile
	ids   []string
}

// NewCatalog creates an EmbeddedCatalog from the embedded species data.
// The provided logger is used to report rows skipped during parsing.
// It returns an initialized *EmbeddedCatalog or a non-nil error if the
// embedded data cannot be parsed.
func NewCatalog(logger zerolog.Logger) (*EmbeddedCatalog, error) {
	c := &EmbeddedCatalog{
		logger: logger,
	}
	if err := c.init(); err != nil {
		return nil, err
	}
	return c, nil
}

// init parses the embedded species data exactly once.
func (c *EmbeddedCatalog) init() error {
	c.once.Do(func() {
		var file catalogFile
		if err := json.Unmarshal(rawSpeciesJSON, &file); err != nil {
			c.err = fmt.Errorf("failed to parse species data: %w", err)
			return
		}

		c.index = make(map[string]Profile, len(file.Species))
		for _, p := range file.Species {
			if !validProfile(p) {
				c.logger.Warn().
					Str("species_id", p.ID).
					Msg("skipping species with invalid growth parameters")
				continue
			}
			c.index[p.ID] = p
			c.ids = append(c.ids, p.ID)
		}
		sort.Strings(c.ids)

		if len(c.index) == 0 {
			c.err = fmt.Errorf("species data %q contains no valid profiles", file.Version)
			return
		}

		c.logger.Debug().
			Str("version", file.Version).
			Int("species_count", len(c.index)).
			Msg("species catalog loaded")
	})
	return c.err
}

// validProfile reports whether a profile has usable growth parameters.
// Rows with a non-positive asymptote or rate, a non-positive density, or a
// carbon fraction outside (0, 1] cannot feed the growth model.
func validProfile(p Profile) bool {
	if p.ID == "" || p.DisplayName == "" {
		return false
	}
	if p.MaxBiomassKg <= 0 || p.GrowthRate <= 0 || p.WoodDensity <= 0 {
		return false
	}
	if p.CarbonFraction <= 0 || p.CarbonFraction > 1 {
		return false
	}
	return true
}

// Lookup returns the profile for the given species identifier.
func (c *EmbeddedCatalog) Lookup(id string) (Profile, bool) {
	p, ok := c.index[id]
	return p, ok
}

// IDs returns the supported species identifiers in sorted order.
func (c *EmbeddedCatalog) IDs() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Count returns the number of species in the catalog.
func (c *EmbeddedCatalog) Count() int {
	return len(c.index)
}

// StaticCatalog is a fixed in-memory Catalog, intended for tests that need
// synthetic species with fast-converging parameters.
type StaticCatalog struct {
	index map[string]Profile
	ids   []string
}

// Static builds a StaticCatalog from the given profiles.
func Static(profiles ...Profile) *StaticCatalog {
	c := &StaticCatalog{index: make(map[string]Profile, len(profiles))}
	for _, p := range profiles {
		c.index[p.ID] = p
		c.ids = append(c.ids, p.ID)
	}
	sort.Strings(c.ids)
	return c
}

// Lookup returns the profile for the given species identifier.
func (c *StaticCatalog) Lookup(id string) (Profile, bool) {
	p, ok := c.index[id]
	return p, ok
}

// IDs returns the species identifiers in sorted order.
func (c *StaticCatalog) IDs() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Count returns the number of species in the catalog.
func (c *StaticCatalog) Count() int {
	return len(c.index)
}
