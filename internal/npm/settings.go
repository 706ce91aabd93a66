package npm

import (
	"context"
	"net/http"
	"net/url"
)

// ListSettings returns all settings.
func (c *Client) ListSettings(ctx context.Context) ([]Record, error) {
	return execute[[]Record](ctx, c, http.MethodGet, "/api/settings", nil)
}

// GetSetting returns one setting by its string id, e.g. "default-site".
func (c *Client) GetSetting(ctx context.Context, id string) (Record, error) {
	return execute[Record](ctx, c, http.MethodGet, "/api/settings/"+url.PathEscape(id), nil)
}

// UpdateSetting updates a setting's value. Which ids are editable is
// enforced by the remote service, not here.
func (c *Client) UpdateSetting(ctx context.Context, id string, req SettingUpdateRequest) (Record, error) {
	payload, err := toPayload(req)
	if err != nil {
		return nil, err
	}
	return execute[Record](ctx, c, http.MethodPut, "/api/settings/"+url.PathEscape(id), payload)
}

// ListAuditLog returns the audit log entries.
func (c *Client) ListAuditLog(ctx context.Context) ([]Record, error) {
	return execute[[]Record](ctx, c, http.MethodGet, "/api/audit-log", nil)
}

// HostsReport returns the remote service's own host-count report.
func (c *Client) HostsReport(ctx context.Context) (Record, error) {
	return execute[Record](ctx, c, http.MethodGet, "/api/reports/hosts", nil)
}
