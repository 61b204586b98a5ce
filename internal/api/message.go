package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/conversekit/wit-client/internal/types"
)

// The message endpoint rejects queries longer than this.
const maxMessageLength = 280

// Message analyzes a text query and returns the detected intents,
// entities and traits. Options may carry a tag, an n-best limit, user
// context and dynamic entities; context and dynamic entities are
// JSON-serialized into query parameters.
func Message(ctx context.Context, httpClient *http.Client, baseURL, version, text string, opts types.MessageOptions) (*types.MessageResponse, error) {
	if text == "" {
		return nil, &types.InvalidArgumentError{Reason: "text must not be empty"}
	}
	if len(text) > maxMessageLength {
		return nil, &types.InvalidArgumentError{
			Reason: fmt.Sprintf("text must be at most %d characters, got %d", maxMessageLength, len(text)),
		}
	}
	if opts.Limit < 0 || opts.Limit > 8 {
		return nil, &types.InvalidArgumentError{
			Reason: fmt.Sprintf("limit must be between 1 and 8 inclusive, got %d", opts.Limit),
		}
	}

	query := url.Values{}
	query.Set("q", text)
	if opts.Tag != "" {
		query.Set("tag", opts.Tag)
	}
	if opts.Limit > 0 {
		query.Set("n", strconv.Itoa(opts.Limit))
	}
	if opts.Context != nil {
		raw, err := json.Marshal(opts.Context)
		if err != nil {
			return nil, fmt.Errorf("message: encoding context: %w", err)
		}
		query.Set("context", string(raw))
	}
	if len(opts.DynamicEntities) > 0 {
		raw, err := json.Marshal(opts.DynamicEntities)
		if err != nil {
			return nil, fmt.Errorf("message: encoding dynamic entities: %w", err)
		}
		query.Set("entities", string(raw))
	}

	return doJSON[types.MessageResponse](ctx, httpClient, baseURL, version, call{
		op:     "message",
		method: http.MethodGet,
		path:   "/message",
		query:  query,
	})
}
