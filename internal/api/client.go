package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

// ErrUnavailable indicates a transport-level failure: unreachable endpoint,
// an undecodable response body, or an unexpected status without a structured
// error. Callers surface it as a generic "try again later" condition, never
// as an input-validation message.
var ErrUnavailable = errors.New("estimate service unavailable, try again later")

// RequestError is a validation rejection returned by the remote endpoint.
// The message is the server's user-facing error text.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// Client calls the estimate API over HTTP. It is the drop-in remote variant
// of the in-process estimator: same inputs, same result shape.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the API server at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Estimate requests a sequestration estimate from the remote endpoint.
//
// Validation rejections come back as *RequestError with the server's message.
// Everything transport-shaped (connection failure, undecodable body, an
// unexpected status with no structured error) maps to ErrUnavailable.
func (c *Client) Estimate(ctx context.Context, speciesID string, numTrees, years int) (*EstimateResponse, error) {
	reqBody := EstimateRequest{
		Species:  &speciesID,
		NumTrees: &numTrees,
		Years:    &years,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	url := c.baseURL + "/api/v1/estimate"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var body EstimateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrUnavailable, err)
	}

	if !body.Success {
		if body.Error == "" {
			return nil, fmt.Errorf("%w: unexpected status %s", ErrUnavailable, resp.Status)
		}
		return nil, &RequestError{Message: body.Error}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrUnavailable, resp.Status)
	}

	return &body, nil
}
