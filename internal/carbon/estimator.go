package carbon

import (
	"math"

	"github.com/treemark/treecarbon/internal/species"
)

// Estimator runs sequestration estimates against an injected species catalog.
type Estimator struct {
	catalog species.Catalog
}

// NewEstimator creates an Estimator backed by the given catalog.
func NewEstimator(catalog species.Catalog) *Estimator {
	return &Estimator{catalog: catalog}
}

// Estimate validates the request, resolves the species profile, and runs the
// aggregation. The returned error is one of the sentinel validation errors;
// the computation itself has no failure path.
func (e *Estimator) Estimate(req Request) (Result, error) {
	if err := Validate(e.catalog, req); err != nil {
		return Result{}, err
	}
	profile, _ := e.catalog.Lookup(req.SpeciesID)
	return Aggregate(profile, req.TreeCount, req.DurationYears), nil
}

// BiomassAtAge computes per-tree dry biomass in kilograms at the given age
// using a logistic growth curve:
//
//  1. A = (MaxBiomassKg - B0) / B0, with B0 the fixed sapling biomass
//  2. raw = MaxBiomassKg / (1 + A × exp(-GrowthRate × age))
//  3. raw is capped at MaxBiomassKg (guards floating-point overshoot at
//     large ages; the curve never exceeds its asymptote mathematically)
//  4. result = raw × WoodDensity, floored at zero
//
// Defined for all positive ages; callers only pass ages 1..MaxDurationYears.
func BiomassAtAge(ageYears int, p species.Profile) float64 {
	a := (p.MaxBiomassKg - SaplingBiomassKg) / SaplingBiomassKg
	raw := p.MaxBiomassKg / (1 + a*math.Exp(-p.GrowthRate*float64(ageYears)))
	if raw > p.MaxBiomassKg {
		raw = p.MaxBiomassKg
	}
	biomass := raw * p.WoodDensity
	if biomass < 0 {
		biomass = 0
	}
	return biomass
}

// CO2PerTreeAtAge computes the per-tree sequestered CO2 in kilograms at the
// given age: biomass × carbon fraction × CO2PerKgCarbon.
func CO2PerTreeAtAge(ageYears int, p species.Profile) float64 {
	carbonKg := BiomassAtAge(ageYears, p) * p.CarbonFraction
	return carbonKg * CO2PerKgCarbon
}

// Aggregate computes the year-by-year trajectory for treeCount trees of the
// given species over durationYears years. Pure and deterministic; inputs are
// assumed to have passed Validate.
//
// Each emitted record carries values rounded to one decimal, while the true
// running total accumulates unrounded. FinalCO2Tons is rounded to the nearest
// whole ton from the unrounded total, independently of the last record's
// one-decimal figure.
func Aggregate(p species.Profile, treeCount, durationYears int) Result {
	years := make([]YearRecord, 0, durationYears)
	cumulativeTons := 0.0

	for year := 1; year <= durationYears; year++ {
		biomassPerTree := BiomassAtAge(year, p)
		co2PerTree := CO2PerTreeAtAge(year, p)
		cumulativeTons += (co2PerTree * float64(treeCount)) / KgPerMetricTon

		years = append(years, YearRecord{
			Year:              year,
			BiomassPerTreeKg:  round1(biomassPerTree),
			CO2PerTreeKg:      round1(co2PerTree),
			CumulativeCO2Tons: round1(cumulativeTons),
		})
	}

	return Result{
		SpeciesName:   p.DisplayName,
		TreeCount:     treeCount,
		DurationYears: durationYears,
		FinalCO2Tons:  roundWhole(cumulativeTons),
		Years:         years,
	}
}
