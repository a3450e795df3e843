// Package species provides the catalog of supported tree species and their
// growth parameters used by the sequestration model.
package species

// Profile contains the growth and carbon characteristics of a tree species.
//
// MaxAgeYears is descriptive metadata only (nominal lifespan of the species);
// it never clamps the growth model.
type Profile struct {
	// ID is the catalog identifier (e.g., "pine").
	ID string `json:"id"`

	// DisplayName is the human-readable species name (e.g., "Pine").
	DisplayName string `json:"name"`

	// MaxBiomassKg is the asymptotic per-tree dry biomass in kilograms.
	MaxBiomassKg float64 `json:"max_biomass_kg"`

	// GrowthRate is the logistic growth-rate constant (per year).
	GrowthRate float64 `json:"growth_rate"`

	// WoodDensity is a dimensionless multiplier applied to biomass.
	WoodDensity float64 `json:"wood_density"`

	// CarbonFraction is the fraction of dry biomass that is elemental carbon (0..1).
	CarbonFraction float64 `json:"carbon_fraction"`

	// MaxAgeYears is the nominal maximum age of the species in years.
	MaxAgeYears int `json:"max_age_years"`
}

// Catalog provides species profile lookups.
type Catalog interface {
	// Lookup returns the profile for the given species identifier.
	// Returns (profile, true) if found, (zero, false) if not found.
	Lookup(id string) (Profile, bool)

	// IDs returns the supported species identifiers in sorted order.
	IDs() []string

	// Count returns the number of species in the catalog.
	Count() int
}
