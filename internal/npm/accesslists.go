package npm

import (
	"context"
	"fmt"
	"net/http"
)

// ListAccessLists returns all access lists.
func (c *Client) ListAccessLists(ctx context.Context) ([]Record, error) {
	return execute[[]Record](ctx, c, http.MethodGet, "/api/nginx/access-lists", nil)
}

// GetAccessList returns one access list by id.
func (c *Client) GetAccessList(ctx context.Context, id int) (Record, error) {
	return execute[Record](ctx, c, http.MethodGet, fmt.Sprintf("/api/nginx/access-lists/%d", id), nil)
}

// CreateAccessList creates an access list with defaults applied.
func (c *Client) CreateAccessList(ctx context.Context, req AccessListRequest) (Record, error) {
	payload, err := creationPayload(req, accessListDefaults)
	if err != nil {
		return nil, err
	}
	return execute[Record](ctx, c, http.MethodPost, "/api/nginx/access-lists", payload)
}

// UpdateAccessList updates an access list.
func (c *Client) UpdateAccessList(ctx context.Context, id int, req AccessListRequest) (Record, error) {
	payload, err := toPayload(req)
	if err != nil {
		return nil, err
	}
	return execute[Record](ctx, c, http.MethodPut, fmt.Sprintf("/api/nginx/access-lists/%d", id), payload)
}

// DeleteAccessList deletes an access list.
func (c *Client) DeleteAccessList(ctx context.Context, id int) error {
	_, err := execute[Record](ctx, c, http.MethodDelete, fmt.Sprintf("/api/nginx/access-lists/%d", id), nil)
	return err
}
