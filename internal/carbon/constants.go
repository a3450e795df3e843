// Package carbon estimates CO2 sequestration by trees using a logistic
// biomass growth model.
package carbon

const (
	// SaplingBiomassKg is the nominal dry biomass of a freshly planted
	// sapling in kilograms. Baked into the growth model, not configurable.
	SaplingBiomassKg = 0.1

	// CO2PerKgCarbon converts mass of elemental carbon to equivalent mass
	// of carbon dioxide. Molar-mass ratio of CO2 to carbon (44/12).
	CO2PerKgCarbon = 3.67

	// KgPerMetricTon converts kilograms to metric tons.
	KgPerMetricTon = 1000.0

	// MinTreeCount is the smallest accepted tree count.
	MinTreeCount = 1

	// MaxTreeCount is the largest accepted tree count.
	MaxTreeCount = 100000

	// MinDurationYears is the shortest accepted projection horizon.
	MinDurationYears = 1

	// MaxDurationYears is the longest accepted projection horizon.
	MaxDurationYears = 50
)
