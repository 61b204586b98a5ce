package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/conversekit/wit-client/internal/types"
)

// DetectLanguage returns ranked language guesses for the given text.
// Limit bounds the number of guesses, between 1 and 8; zero leaves the
// service default of 1 in place.
func DetectLanguage(ctx context.Context, httpClient *http.Client, baseURL, version, text string, limit int) (*types.LanguageResponse, error) {
	if text == "" {
		return nil, &types.InvalidArgumentError{Reason: "text must not be empty"}
	}
	if limit < 0 || limit > 8 {
		return nil, &types.InvalidArgumentError{
			Reason: fmt.Sprintf("limit must be between 1 and 8 inclusive, got %d", limit),
		}
	}
	query := url.Values{}
	query.Set("q", text)
	if limit > 0 {
		query.Set("n", strconv.Itoa(limit))
	}
	return doJSON[types.LanguageResponse](ctx, httpClient, baseURL, version, call{
		op:     "detect_language",
		method: http.MethodGet,
		path:   "/language",
		query:  query,
	})
}
