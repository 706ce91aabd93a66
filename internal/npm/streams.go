package npm

import (
	"context"
	"fmt"
	"net/http"
)

// ListStreams returns all TCP/UDP streams.
func (c *Client) ListStreams(ctx context.Context) ([]Record, error) {
	return execute[[]Record](ctx, c, http.MethodGet, "/api/nginx/streams", nil)
}

// GetStream returns one stream by id.
func (c *Client) GetStream(ctx context.Context, id int) (Record, error) {
	return execute[Record](ctx, c, http.MethodGet, fmt.Sprintf("/api/nginx/streams/%d", id), nil)
}

// CreateStream creates a stream with defaults applied (TCP forwarding on,
// UDP forwarding off unless supplied).
func (c *Client) CreateStream(ctx context.Context, req StreamRequest) (Record, error) {
	payload, err := creationPayload(req, streamDefaults)
	if err != nil {
		return nil, err
	}
	return execute[Record](ctx, c, http.MethodPost, "/api/nginx/streams", payload)
}

// UpdateStream updates a stream.
func (c *Client) UpdateStream(ctx context.Context, id int, req StreamRequest) (Record, error) {
	payload, err := toPayload(req)
	if err != nil {
		return nil, err
	}
	return execute[Record](ctx, c, http.MethodPut, fmt.Sprintf("/api/nginx/streams/%d", id), payload)
}

// DeleteStream deletes a stream.
func (c *Client) DeleteStream(ctx context.Context, id int) error {
	_, err := execute[Record](ctx, c, http.MethodDelete, fmt.Sprintf("/api/nginx/streams/%d", id), nil)
	return err
}

// EnableStream enables a stream.
func (c *Client) EnableStream(ctx context.Context, id int) error {
	_, err := execute[Record](ctx, c, http.MethodPost, fmt.Sprintf("/api/nginx/streams/%d/enable", id), nil)
	return err
}

// DisableStream disables a stream without deleting it.
func (c *Client) DisableStream(ctx context.Context, id int) error {
	_, err := execute[Record](ctx, c, http.MethodPost, fmt.Sprintf("/api/nginx/streams/%d/disable", id), nil)
	return err
}
