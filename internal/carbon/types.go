package carbon

// Request describes a single sequestration estimate.
type Request struct {
	// SpeciesID is the catalog identifier of the planted species.
	SpeciesID string

	// TreeCount is the number of trees planted (1 to 100000).
	TreeCount int

	// DurationYears is the projection horizon in years (1 to 50).
	DurationYears int
}

// YearRecord holds the model output for one year of the projection.
// Records are emitted in chronological order, one per year starting at 1.
type YearRecord struct {
	// Year is the age of the plantation in years.
	Year int

	// BiomassPerTreeKg is the per-tree dry biomass, rounded to one decimal.
	BiomassPerTreeKg float64

	// CO2PerTreeKg is the per-tree sequestered CO2, rounded to one decimal.
	CO2PerTreeKg float64

	// CumulativeCO2Tons is the running total across all trees in metric
	// tons, rounded to one decimal. The unrounded running total is carried
	// forward internally; consumers must not re-derive cumulative figures
	// by summing the rounded per-year values.
	CumulativeCO2Tons float64
}

// Result is the complete outcome of a sequestration estimate.
type Result struct {
	// SpeciesName is the display name of the species.
	SpeciesName string

	// TreeCount echoes the requested number of trees.
	TreeCount int

	// DurationYears echoes the requested projection horizon.
	DurationYears int

	// FinalCO2Tons is the unrounded running total at the last year,
	// rounded to the nearest whole ton. Rounded independently from the
	// last YearRecord's one-decimal cumulative figure; the two may
	// disagree by up to 0.5.
	FinalCO2Tons int

	// Years holds exactly DurationYears records in chronological order.
	Years []YearRecord
}
