package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/conversekit/wit-client/internal/types"
)

// Dictation sends an audio byte stream to the dictation endpoint and
// returns a stream of partial transcriptions, one per recognized segment.
func Dictation(ctx context.Context, httpClient *http.Client, baseURL, version string, audio io.Reader, encoding types.AudioEncoding) (*types.Stream[types.DictationResult], error) {
	resp, err := postAudio(ctx, httpClient, baseURL, version, "dictation", "/dictation", audio, encoding)
	if err != nil {
		return nil, err
	}
	return streamResults[types.DictationResult](ctx, "dictation", resp), nil
}

// Speech sends an audio byte stream to the speech endpoint and returns a
// stream of chunks mixing partial transcriptions with full understanding
// results for each recognized segment.
func Speech(ctx context.Context, httpClient *http.Client, baseURL, version string, audio io.Reader, encoding types.AudioEncoding) (*types.Stream[types.SpeechResult], error) {
	resp, err := postAudio(ctx, httpClient, baseURL, version, "speech", "/speech", audio, encoding)
	if err != nil {
		return nil, err
	}
	return streamResults[types.SpeechResult](ctx, "speech", resp), nil
}

// postAudio sends the audio body with the caller-declared content type and
// leaves the response body open for incremental reading. Error paths drain
// and close the body before returning.
func postAudio(ctx context.Context, httpClient *http.Client, baseURL, version, op, path string, audio io.Reader, encoding types.AudioEncoding) (*http.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if audio == nil {
		return nil, &types.InvalidArgumentError{Reason: "audio source must not be nil"}
	}
	if encoding == "" {
		return nil, &types.InvalidArgumentError{Reason: "audio encoding must not be empty"}
	}

	u := endpointURL(baseURL, version, path, nil)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, audio)
	if err != nil {
		return nil, &types.InvalidArgumentError{Reason: err.Error()}
	}
	// Unknown content length, so the body goes out chunked.
	httpReq.Header.Set("Content-Type", string(encoding))
	// Note: Authorization header is added by the transport layer.

	requestsTotal.WithLabelValues(op).Inc()
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		requestFailuresTotal.WithLabelValues(op).Inc()
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		requestFailuresTotal.WithLabelValues(op).Inc()
		defer func() { _ = resp.Body.Close() }()
		return nil, responseError(resp)
	}
	return resp, nil
}

// streamResults turns the open response body into a lazy chunk stream.
// The service writes consecutive JSON objects separated by CRLF, which the
// decoder consumes as a plain value sequence. The body is closed when the
// stream ends, fails, or the consumer stops iterating.
func streamResults[T any](ctx context.Context, op string, resp *http.Response) *types.Stream[T] {
	seq := func(yield func(T, error) bool) {
		defer func() { _ = resp.Body.Close() }()
		dec := json.NewDecoder(resp.Body)
		for {
			var zero T
			if err := ctx.Err(); err != nil {
				yield(zero, err)
				return
			}
			var chunk T
			if err := dec.Decode(&chunk); err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				yield(zero, &types.DecodeError{Op: op, Err: err})
				return
			}
			if !yield(chunk, nil) {
				return
			}
		}
	}
	return types.NewStream(seq)
}
