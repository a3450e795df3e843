package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/treemark/treecarbon/internal/carbon"
)

// Server handles sequestration estimate requests over HTTP.
type Server struct {
	estimator *carbon.Estimator
	logger    zerolog.Logger // logger is immutable (copy-on-write)
}

// NewServer creates a Server backed by the given estimator.
func NewServer(estimator *carbon.Estimator, logger zerolog.Logger) *Server {
	return &Server{
		estimator: estimator,
		logger:    logger,
	}
}

// Handler returns the HTTP handler for the estimate API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/estimate", s.handleEstimate)
	mux.HandleFunc("/healthz", s.handleHealthz)
	return mux
}

// traceID extracts the request trace ID from the X-Request-Id header or
// generates a UUID if not present. The ID correlates log entries with
// client-side retries.
func traceID(r *http.Request) string {
	if id := r.Header.Get("X-Request-Id"); id != "" {
		return id
	}
	return uuid.New().String()
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok\n")); err != nil {
		s.logger.Error().Err(err).Msg("failed to write health response")
	}
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := traceID(r)

	if r.Method != http.MethodPost {
		estimateRequestsTotal.WithLabelValues(outcomeBadMethod).Inc()
		w.Header().Set("Allow", http.MethodPost)
		s.writeFailure(w, id, http.StatusMethodNotAllowed, "method not allowed: use POST")
		return
	}

	var wire EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&wire); err != nil {
		estimateRequestsTotal.WithLabelValues(outcomeInvalidRequest).Inc()
		// A wrong-typed field (e.g. a non-numeric tree count) is a
		// missing/invalid field, not a malformed document.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			s.writeFailure(w, id, http.StatusBadRequest,
				fmt.Sprintf("missing or invalid field: %s", wireFieldName(typeErr.Field)))
			return
		}
		s.writeFailure(w, id, http.StatusBadRequest,
			fmt.Sprintf("malformed request body: %v", err))
		return
	}

	req, missing := resolveRequest(wire)
	if missing != "" {
		estimateRequestsTotal.WithLabelValues(outcomeInvalidRequest).Inc()
		s.writeFailure(w, id, http.StatusBadRequest,
			fmt.Sprintf("missing or invalid field: %s", missing))
		return
	}

	result, err := s.estimator.Estimate(req)
	if err != nil {
		estimateRequestsTotal.WithLabelValues(outcomeInvalidRequest).Inc()
		s.writeFailure(w, id, http.StatusBadRequest, err.Error())
		return
	}

	estimateRequestsTotal.WithLabelValues(outcomeOK).Inc()
	estimateDurationSeconds.Observe(time.Since(start).Seconds())

	s.logger.Info().
		Str("trace_id", id).
		Str("species", req.SpeciesID).
		Int("num_trees", req.TreeCount).
		Int("years", req.DurationYears).
		Int("final_co2_tons", result.FinalCO2Tons).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("estimate calculated")

	s.writeJSON(w, id, http.StatusOK, successResponse(result))
}

// wireFieldName maps a decoder-reported field path onto the request field's
// JSON wire name. The decoder reports the Go struct field name (possibly
// path-qualified); user-facing messages speak in wire names. Unrecognized
// names pass through unchanged.
func wireFieldName(field string) string {
	if i := strings.LastIndex(field, "."); i >= 0 {
		field = field[i+1:]
	}
	if f, ok := reflect.TypeOf(EstimateRequest{}).FieldByName(field); ok {
		tag := strings.Split(f.Tag.Get("json"), ",")[0]
		if tag != "" && tag != "-" {
			return tag
		}
	}
	return field
}

// resolveRequest converts the wire request into a model request.
// Returns the name of the first missing field, or "" when complete.
func resolveRequest(wire EstimateRequest) (carbon.Request, string) {
	if wire.Species == nil || *wire.Species == "" {
		return carbon.Request{}, "species"
	}
	if wire.NumTrees == nil {
		return carbon.Request{}, "num_trees"
	}
	if wire.Years == nil {
		return carbon.Request{}, "years"
	}
	return carbon.Request{
		SpeciesID:     *wire.Species,
		TreeCount:     *wire.NumTrees,
		DurationYears: *wire.Years,
	}, ""
}

// successResponse maps a model result onto the wire shape.
func successResponse(result carbon.Result) EstimateResponse {
	results := make([]YearResult, 0, len(result.Years))
	for _, y := range result.Years {
		results = append(results, YearResult{
			Year:           y.Year,
			BiomassPerTree: y.BiomassPerTreeKg,
			CO2PerTree:     y.CO2PerTreeKg,
			TotalCO2:       y.CumulativeCO2Tons,
		})
	}
	return EstimateResponse{
		Success:  true,
		Species:  result.SpeciesName,
		NumTrees: result.TreeCount,
		Years:    result.DurationYears,
		FinalCO2: result.FinalCO2Tons,
		Results:  results,
	}
}

// failureResponse is the wire shape for rejected requests.
type failureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *Server) writeFailure(w http.ResponseWriter, id string, status int, msg string) {
	s.logger.Warn().
		Str("trace_id", id).
		Int("status", status).
		Str("error", msg).
		Msg("estimate request rejected")
	s.writeJSON(w, id, status, failureResponse{Success: false, Error: msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, id string, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error().
			Str("trace_id", id).
			Err(err).
			Msg("failed to write response")
	}
}
