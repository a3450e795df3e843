package carbon

import (
	"errors"
	"fmt"
	"strings"

	"github.com/treemark/treecarbon/internal/species"
)

// Validation errors returned by Validate. All are precondition violations
// detected before any computation runs.
var (
	// ErrTreeCountOutOfRange indicates a tree count outside [MinTreeCount, MaxTreeCount].
	ErrTreeCountOutOfRange = errors.New("tree count out of range")

	// ErrDurationOutOfRange indicates a duration outside [MinDurationYears, MaxDurationYears].
	ErrDurationOutOfRange = errors.New("duration out of range")

	// ErrUnknownSpecies indicates a species identifier not present in the catalog.
	ErrUnknownSpecies = errors.New("unknown species")
)

// Validate checks the request against the model's preconditions.
// Returns nil if the request is safe to pass to Aggregate.
func Validate(catalog species.Catalog, req Request) error {
	if req.TreeCount < MinTreeCount || req.TreeCount > MaxTreeCount {
		return fmt.Errorf("%w: got %d, want %d to %d",
			ErrTreeCountOutOfRange, req.TreeCount, MinTreeCount, MaxTreeCount)
	}
	if req.DurationYears < MinDurationYears || req.DurationYears > MaxDurationYears {
		return fmt.Errorf("%w: got %d, want %d to %d",
			ErrDurationOutOfRange, req.DurationYears, MinDurationYears, MaxDurationYears)
	}
	if _, ok := catalog.Lookup(req.SpeciesID); !ok {
		return fmt.Errorf("%w: %q (supported: %s)",
			ErrUnknownSpecies, req.SpeciesID, strings.Join(catalog.IDs(), ", "))
	}
	return nil
}
