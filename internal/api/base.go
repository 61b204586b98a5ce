package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/conversekit/wit-client/internal/types"
)

// Responses are decoded from a buffered body; error bodies are capped so a
// misbehaving endpoint cannot force an unbounded read.
const maxErrorBody = 64 << 10

// call describes one request to the service: method, path, extra query
// parameters and an optional JSON body. The version parameter and the
// bearer token are attached outside the call description, identically for
// every operation.
type call struct {
	op     string
	method string
	path   string
	query  url.Values
	body   any
}

// endpointURL joins the base host, path and query string, always including
// the v parameter.
func endpointURL(baseURL, version, path string, query url.Values) string {
	q := url.Values{}
	for k, vs := range query {
		q[k] = vs
	}
	q.Set("v", version)
	return baseURL + path + "?" + q.Encode()
}

// doJSON executes one typed request against the service. Every synchronous
// operation funnels through here so header handling, error classification
// and decoding stay uniform:
//
//   - transport failures are returned wrapped with the operation name;
//   - a non-2xx response becomes a *types.APIError when the body parses as
//     a structured service error, otherwise a *types.HTTPError carrying the
//     raw status and body;
//   - a 2xx body that fails to decode, or decodes but is missing required
//     fields, becomes a *types.DecodeError.
func doJSON[T any](ctx context.Context, httpClient *http.Client, baseURL, version string, c call) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var reqBody io.Reader
	if c.body != nil {
		raw, err := json.Marshal(c.body)
		if err != nil {
			return nil, fmt.Errorf("%s: encoding request: %w", c.op, err)
		}
		reqBody = bytes.NewReader(raw)
	}

	u := endpointURL(baseURL, version, c.path, c.query)
	httpReq, err := http.NewRequestWithContext(ctx, c.method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.op, err)
	}
	if c.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/vnd.wit."+version+"+json")
	// Note: Authorization header is added by the transport layer.

	requestsTotal.WithLabelValues(c.op).Inc()
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		requestFailuresTotal.WithLabelValues(c.op).Inc()
		return nil, fmt.Errorf("%s: %w", c.op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		requestFailuresTotal.WithLabelValues(c.op).Inc()
		return nil, responseError(resp)
	}

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		requestFailuresTotal.WithLabelValues(c.op).Inc()
		return nil, &types.DecodeError{Op: c.op, Err: err}
	}
	if v, ok := any(&out).(types.Validator); ok {
		if err := v.Validate(); err != nil {
			requestFailuresTotal.WithLabelValues(c.op).Inc()
			return nil, &types.DecodeError{Op: c.op, Err: err}
		}
	}
	return &out, nil
}

// responseError classifies a non-2xx response. The service reports errors
// as {"error": <message>, "code": <type>}; anything else degrades to an
// opaque HTTP error with the raw body.
func responseError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		raw = nil
	}
	var apiErr types.APIError
	if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" && apiErr.Code != "" {
		apiErr.Status = resp.StatusCode
		return &apiErr
	}
	return &types.HTTPError{Status: resp.StatusCode, Body: string(raw)}
}
