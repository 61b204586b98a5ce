package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/conversekit/wit-client/internal/types"
)

// ListIntents returns basic information about all intents of the app.
func ListIntents(ctx context.Context, httpClient *http.Client, baseURL, version string) ([]types.IntentRef, error) {
	out, err := doJSON[[]types.IntentRef](ctx, httpClient, baseURL, version, call{
		op:     "list_intents",
		method: http.MethodGet,
		path:   "/intents",
	})
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// CreateIntent creates a new intent. Intents cannot be updated once
// created, only deleted and recreated.
func CreateIntent(ctx context.Context, httpClient *http.Client, baseURL, version, name string) (*types.IntentRef, error) {
	if name == "" {
		return nil, &types.InvalidArgumentError{Reason: "intent name must not be empty"}
	}
	return doJSON[types.IntentRef](ctx, httpClient, baseURL, version, call{
		op:     "create_intent",
		method: http.MethodPost,
		path:   "/intents",
		body:   types.NewIntent{Name: name},
	})
}

// GetIntent returns the intent with the given name, including its
// associated entities.
func GetIntent(ctx context.Context, httpClient *http.Client, baseURL, version, name string) (*types.Intent, error) {
	if name == "" {
		return nil, &types.InvalidArgumentError{Reason: "intent name must not be empty"}
	}
	return doJSON[types.Intent](ctx, httpClient, baseURL, version, call{
		op:     "get_intent",
		method: http.MethodGet,
		path:   "/intents/" + url.PathEscape(name),
	})
}

// DeleteIntent deletes the intent with the given name.
func DeleteIntent(ctx context.Context, httpClient *http.Client, baseURL, version, name string) (*types.DeleteResponse, error) {
	if name == "" {
		return nil, &types.InvalidArgumentError{Reason: "intent name must not be empty"}
	}
	return doJSON[types.DeleteResponse](ctx, httpClient, baseURL, version, call{
		op:     "delete_intent",
		method: http.MethodDelete,
		path:   "/intents/" + url.PathEscape(name),
	})
}
