// Package api exposes the sequestration model over a JSON/HTTP boundary and
// provides the matching client. The wire contract is the same whether the
// model is called in-process or remotely; the transport only adds its own
// failure class on top.
package api

// EstimateRequest is the wire form of a sequestration request.
// Fields are pointers so the handler can distinguish absent fields from
// zero values when reporting missing-field errors.
type EstimateRequest struct {
	Species  *string `json:"species"`
	NumTrees *int    `json:"num_trees"`
	Years    *int    `json:"years"`
}

// YearResult is the wire form of one year of the projection.
type YearResult struct {
	Year           int     `json:"year"`
	BiomassPerTree float64 `json:"biomass_per_tree"`
	CO2PerTree     float64 `json:"co2_per_tree"`
	TotalCO2       float64 `json:"total_co2"`
}

// EstimateResponse is the wire form of a successful estimate. Failures use
// the two-field {success, error} shape instead; the client decodes either
// into this struct.
type EstimateResponse struct {
	Success  bool         `json:"success"`
	Species  string       `json:"species"`
	NumTrees int          `json:"num_trees"`
	Years    int          `json:"years"`
	FinalCO2 int          `json:"final_co2"`
	Results  []YearResult `json:"results"`
	Error    string       `json:"error,omitempty"`
}
