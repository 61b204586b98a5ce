package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/conversekit/wit-client/internal/types"
)

// ListEntities returns basic information about all entities of the app.
func ListEntities(ctx context.Context, httpClient *http.Client, baseURL, version string) ([]types.EntityRef, error) {
	out, err := doJSON[[]types.EntityRef](ctx, httpClient, baseURL, version, call{
		op:     "list_entities",
		method: http.MethodGet,
		path:   "/entities",
	})
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// CreateEntity creates a new entity. The name must be unique among the
// app's entities; a duplicate is reported by the service as an API error.
func CreateEntity(ctx context.Context, httpClient *http.Client, baseURL, version string, req types.NewEntity) (*types.Entity, error) {
	if req.Name == "" {
		return nil, &types.InvalidArgumentError{Reason: "entity name must not be empty"}
	}
	if req.Roles == nil {
		req.Roles = []string{}
	}
	return doJSON[types.Entity](ctx, httpClient, baseURL, version, call{
		op:     "create_entity",
		method: http.MethodPost,
		path:   "/entities",
		body:   req,
	})
}

// GetEntity returns the entity with the given name.
func GetEntity(ctx context.Context, httpClient *http.Client, baseURL, version, name string) (*types.Entity, error) {
	if name == "" {
		return nil, &types.InvalidArgumentError{Reason: "entity name must not be empty"}
	}
	return doJSON[types.Entity](ctx, httpClient, baseURL, version, call{
		op:     "get_entity",
		method: http.MethodGet,
		path:   "/entities/" + url.PathEscape(name),
	})
}

// UpdateEntity overwrites the entity currently named name with the given
// fields. Omitted lookups and keywords are left unchanged.
func UpdateEntity(ctx context.Context, httpClient *http.Client, baseURL, version, name string, req types.UpdateEntity) (*types.Entity, error) {
	if name == "" {
		return nil, &types.InvalidArgumentError{Reason: "entity name must not be empty"}
	}
	if req.Roles == nil {
		req.Roles = []string{}
	}
	return doJSON[types.Entity](ctx, httpClient, baseURL, version, call{
		op:     "update_entity",
		method: http.MethodPut,
		path:   "/entities/" + url.PathEscape(name),
		body:   req,
	})
}

// DeleteEntity deletes the entity with the given name. Deleting a
// nonexistent entity is an API error, not a silent no-op.
func DeleteEntity(ctx context.Context, httpClient *http.Client, baseURL, version, name string) (*types.DeleteResponse, error) {
	if name == "" {
		return nil, &types.InvalidArgumentError{Reason: "entity name must not be empty"}
	}
	return doJSON[types.DeleteResponse](ctx, httpClient, baseURL, version, call{
		op:     "delete_entity",
		method: http.MethodDelete,
		path:   "/entities/" + url.PathEscape(name),
	})
}
