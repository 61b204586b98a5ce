package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/conversekit/wit-client/internal/types"
)

// ListTraits returns basic information about all traits of the app.
func ListTraits(ctx context.Context, httpClient *http.Client, baseURL, version string) ([]types.TraitRef, error) {
	out, err := doJSON[[]types.TraitRef](ctx, httpClient, baseURL, version, call{
		op:     "list_traits",
		method: http.MethodGet,
		path:   "/traits",
	})
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// CreateTrait creates a new trait with the given allowed values.
func CreateTrait(ctx context.Context, httpClient *http.Client, baseURL, version string, req types.NewTrait) (*types.Trait, error) {
	if req.Name == "" {
		return nil, &types.InvalidArgumentError{Reason: "trait name must not be empty"}
	}
	if req.Values == nil {
		req.Values = []string{}
	}
	return doJSON[types.Trait](ctx, httpClient, baseURL, version, call{
		op:     "create_trait",
		method: http.MethodPost,
		path:   "/traits",
		body:   req,
	})
}

// GetTrait returns the trait with the given name.
func GetTrait(ctx context.Context, httpClient *http.Client, baseURL, version, name string) (*types.Trait, error) {
	if name == "" {
		return nil, &types.InvalidArgumentError{Reason: "trait name must not be empty"}
	}
	return doJSON[types.Trait](ctx, httpClient, baseURL, version, call{
		op:     "get_trait",
		method: http.MethodGet,
		path:   "/traits/" + url.PathEscape(name),
	})
}

// DeleteTrait deletes the trait with the given name.
func DeleteTrait(ctx context.Context, httpClient *http.Client, baseURL, version, name string) (*types.DeleteResponse, error) {
	if name == "" {
		return nil, &types.InvalidArgumentError{Reason: "trait name must not be empty"}
	}
	return doJSON[types.DeleteResponse](ctx, httpClient, baseURL, version, call{
		op:     "delete_trait",
		method: http.MethodDelete,
		path:   "/traits/" + url.PathEscape(name),
	})
}
