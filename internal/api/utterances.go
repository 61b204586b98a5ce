package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/conversekit/wit-client/internal/types"
)

// ListUtterances returns stored training utterances, paginated by
// limit/offset and optionally filtered by intent names.
func ListUtterances(ctx context.Context, httpClient *http.Client, baseURL, version string, req types.ListUtterancesRequest) ([]types.Utterance, error) {
	if req.Limit < 1 || req.Limit > 10000 {
		return nil, &types.InvalidArgumentError{
			Reason: fmt.Sprintf("utterance list limit must be between 1 and 10000 inclusive, got %d", req.Limit),
		}
	}
	query := url.Values{}
	query.Set("limit", strconv.Itoa(req.Limit))
	if req.Offset > 0 {
		query.Set("offset", strconv.Itoa(req.Offset))
	}
	if len(req.Intents) > 0 {
		query.Set("intents", strings.Join(req.Intents, ","))
	}
	out, err := doJSON[[]types.Utterance](ctx, httpClient, baseURL, version, call{
		op:     "list_utterances",
		method: http.MethodGet,
		path:   "/utterances",
		query:  query,
	})
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// CreateUtterances adds training utterances in one call. Annotated
// entities and traits must already exist.
func CreateUtterances(ctx context.Context, httpClient *http.Client, baseURL, version string, utterances []types.NewUtterance) (*types.UtteranceAck, error) {
	if len(utterances) == 0 {
		return nil, &types.InvalidArgumentError{Reason: "at least one utterance is required"}
	}
	for _, u := range utterances {
		if u.Text == "" {
			return nil, &types.InvalidArgumentError{Reason: "utterance text must not be empty"}
		}
	}
	return doJSON[types.UtteranceAck](ctx, httpClient, baseURL, version, call{
		op:     "create_utterances",
		method: http.MethodPost,
		path:   "/utterances",
		body:   utterances,
	})
}

// DeleteUtterances deletes the utterances with the given text values in a
// single batch call. A nonexistent text value makes the whole call fail
// with the service's reported error.
func DeleteUtterances(ctx context.Context, httpClient *http.Client, baseURL, version string, texts []string) (*types.UtteranceAck, error) {
	if len(texts) == 0 {
		return nil, &types.InvalidArgumentError{Reason: "at least one utterance text is required"}
	}
	return doJSON[types.UtteranceAck](ctx, httpClient, baseURL, version, call{
		op:     "delete_utterances",
		method: http.MethodDelete,
		path:   "/utterances",
		body:   types.DeleteUtterancesBody(texts),
	})
}
