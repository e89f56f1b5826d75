package hrapi

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
)

// maxPages bounds ListAll when an upstream keeps reporting more pages.
const maxPages = 1000

// Resource is one REST collection (attendance, leaves, users) on the HR API.
type Resource[T any] struct {
	client *Client
	path   string
}

func NewResource[T any](client *Client, path string) *Resource[T] {
	return &Resource[T]{client: client, path: path}
}

func (r *Resource[T]) Path() string {
	return r.path
}

// List fetches a single page.
func (r *Resource[T]) List(ctx context.Context, opts ListOptions) (Page[T], error) {
	raw, err := r.client.do(ctx, http.MethodGet, r.path, opts.query(), nil)
	if err != nil {
		return Page[T]{}, err
	}

	page, err := DecodeList[T](raw)
	if err != nil {
		if apiErr, ok := err.(*APIError); ok {
			apiErr.Method, apiErr.Path = http.MethodGet, r.path
		}
		return Page[T]{}, err
	}
	if page.Shape == ShapeUnknown {
		slog.Warn("Unrecognized HR API list payload, treating as empty", "path", r.path)
	}
	return page, nil
}

// ListAll follows envelope pagination until the last page.
func (r *Resource[T]) ListAll(ctx context.Context, opts ListOptions) ([]T, error) {
	opts.Page = 1
	if opts.Limit == 0 {
		opts.Limit = r.client.pageLimit
	}

	var all []T
	for {
		page, err := r.List(ctx, opts)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Items...)

		if page.Pagination == nil || len(page.Items) == 0 ||
			opts.Page >= page.Pagination.TotalPages || opts.Page >= maxPages {
			break
		}
		opts.Page++
	}

	if all == nil {
		all = []T{}
	}
	return all, nil
}

// Create POSTs payload and returns the created record when the response carries one.
func (r *Resource[T]) Create(ctx context.Context, payload interface{}) (*T, error) {
	return r.write(ctx, http.MethodPost, r.path, payload)
}

// Update PUTs payload to <path>/<id>.
func (r *Resource[T]) Update(ctx context.Context, id string, payload interface{}) (*T, error) {
	return r.write(ctx, http.MethodPut, r.itemPath(id), payload)
}

func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	_, err := r.client.do(ctx, http.MethodDelete, r.itemPath(id), nil, nil)
	return err
}

func (r *Resource[T]) write(ctx context.Context, method, path string, payload interface{}) (*T, error) {
	raw, err := r.client.do(ctx, method, path, nil, payload)
	if err != nil {
		return nil, err
	}
	item, err := DecodeOne[T](raw)
	if err != nil {
		if apiErr, ok := err.(*APIError); ok {
			apiErr.Method, apiErr.Path = method, path
		}
		return nil, err
	}
	return item, nil
}

func (r *Resource[T]) itemPath(id string) string {
	return r.path + "/" + url.PathEscape(id)
}
