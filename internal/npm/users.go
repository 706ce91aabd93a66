package npm

import (
	"context"
	"fmt"
	"net/http"
)

// ListUsers returns all users.
func (c *Client) ListUsers(ctx context.Context) ([]Record, error) {
	return execute[[]Record](ctx, c, http.MethodGet, "/api/users", nil)
}

// GetUser returns one user by id.
func (c *Client) GetUser(ctx context.Context, id int) (Record, error) {
	return execute[Record](ctx, c, http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil)
}

// CreateUser creates a user with defaults applied.
func (c *Client) CreateUser(ctx context.Context, req UserRequest) (Record, error) {
	payload, err := creationPayload(req, userDefaults)
	if err != nil {
		return nil, err
	}
	return execute[Record](ctx, c, http.MethodPost, "/api/users", payload)
}

// UpdateUser updates a user.
func (c *Client) UpdateUser(ctx context.Context, id int, req UserRequest) (Record, error) {
	payload, err := toPayload(req)
	if err != nil {
		return nil, err
	}
	return execute[Record](ctx, c, http.MethodPut, fmt.Sprintf("/api/users/%d", id), payload)
}

// DeleteUser deletes a user.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	_, err := execute[Record](ctx, c, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), nil)
	return err
}
