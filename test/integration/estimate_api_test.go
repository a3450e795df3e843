//go:build integration

// Package integration exercises the full estimate flow: embedded species
// catalog, model, HTTP server, and client, over a real listener.
//
// Run with: go test -tags=integration ./test/integration/... -v
package integration

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/treemark/treecarbon/internal/api"
	"github.com/treemark/treecarbon/internal/carbon"
	"github.com/treemark/treecarbon/internal/species"
)

func startServer(t *testing.T) *httptest.Server {
	t.Helper()
	catalog, err := species.NewCatalog(zerolog.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(api.NewServer(carbon.NewEstimator(catalog), zerolog.Nop()).Handler())
	t.Cleanup(srv.Close)
	return srv
}

// TestEstimateAPI_RoundTrip verifies that a remote call returns the same
// trajectory as the in-process model for every species in the catalog.
func TestEstimateAPI_RoundTrip(t *testing.T) {
	catalog, err := species.NewCatalog(zerolog.Nop())
	require.NoError(t, err)

	srv := startServer(t)
	client := api.NewClient(srv.URL, 5*time.Second)

	for _, id := range catalog.IDs() {
		t.Run(id, func(t *testing.T) {
			profile, ok := catalog.Lookup(id)
			require.True(t, ok)

			local := carbon.Aggregate(profile, 500, 20)

			remote, err := client.Estimate(context.Background(), id, 500, 20)
			require.NoError(t, err)

			assert.Equal(t, local.SpeciesName, remote.Species)
			assert.Equal(t, local.FinalCO2Tons, remote.FinalCO2)
			require.Len(t, remote.Results, len(local.Years))
			for i, y := range local.Years {
				assert.Equal(t, y.Year, remote.Results[i].Year)
				assert.InDelta(t, y.BiomassPerTreeKg, remote.Results[i].BiomassPerTree, 1e-9)
				assert.InDelta(t, y.CO2PerTreeKg, remote.Results[i].CO2PerTree, 1e-9)
				assert.InDelta(t, y.CumulativeCO2Tons, remote.Results[i].TotalCO2, 1e-9)
			}
		})
	}
}

// TestEstimateAPI_ErrorTaxonomy verifies validation messages cross the wire
// distinct from transport failures.
func TestEstimateAPI_ErrorTaxonomy(t *testing.T) {
	srv := startServer(t)
	client := api.NewClient(srv.URL, 5*time.Second)

	_, err := client.Estimate(context.Background(), "baobab", 10, 5)
	var reqErr *api.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Contains(t, reqErr.Message, "unknown species")

	_, err = client.Estimate(context.Background(), "pine", 0, 5)
	require.ErrorAs(t, err, &reqErr)
	assert.Contains(t, reqErr.Message, "tree count")

	srv.Close()
	_, err = client.Estimate(context.Background(), "pine", 10, 5)
	require.ErrorIs(t, err, api.ErrUnavailable)
}
