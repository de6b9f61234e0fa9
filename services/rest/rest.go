// Package rest implements the services on top of the ExiBy REST backend.
// Each exported service method maps to exactly one backend endpoint.
package rest

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/exiby/exiby_admin/backend"
	"github.com/exiby/exiby_admin/services"
	"github.com/pkg/errors"
)

const adminAPI = "api/admin"

func endpoint(parts ...string) string {
	return adminAPI + "/" + strings.Join(parts, "/")
}

func withID(path, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", services.ErrInvalidID
	}
	return path + "/" + url.PathEscape(id), nil
}

func invoke(ctx context.Context, client backend.Client, method, path string, query url.Values, body interface{}) (*backend.Response, error) {
	resp, err := client.InvokeAPI(ctx, backend.Request{
		Path:     path,
		Method:   method,
		Query:    query,
		PostData: body,
	})
	if err != nil {
		return nil, mapBackendError(err)
	}
	return resp, nil
}

func mapBackendError(err error) error {
	var backendErr *backend.Error
	if !errors.As(err, &backendErr) {
		return err
	}
	switch backendErr.StatusCode {
	case http.StatusNotFound:
		return services.ErrNotFound
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return errors.Wrap(services.ErrInvalidInput, backendErr.Message)
	}
	return err
}

func getList[T any](ctx context.Context, client backend.Client, path string, query url.Values) ([]T, int, error) {
	resp, err := invoke(ctx, client, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, 0, err
	}

	items := []T{}
	if err := resp.Decode(&items); err != nil {
		return nil, 0, err
	}

	total := resp.Count
	if total < len(items) {
		total = len(items)
	}
	return items, total, nil
}

func getOne[T any](ctx context.Context, client backend.Client, path, id string) (*T, error) {
	path, err := withID(path, id)
	if err != nil {
		return nil, err
	}

	resp, err := invoke(ctx, client, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var item T
	if err := resp.Decode(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// create posts item and returns the stored record, falling back to item
// when the backend does not echo it.
func create[T any](ctx context.Context, client backend.Client, path string, item T) (*T, error) {
	resp, err := invoke(ctx, client, http.MethodPost, path, nil, item)
	if err != nil {
		return nil, err
	}

	created := item
	if err := resp.Decode(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func sendWithID(ctx context.Context, client backend.Client, method, path, id string, body interface{}) error {
	path, err := withID(path, id)
	if err != nil {
		return err
	}
	_, err = invoke(ctx, client, method, path, nil, body)
	return err
}

type statusUpdate struct {
	Status bool `json:"status"`
}
