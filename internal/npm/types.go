package npm

// Record is a remote entity as returned by the API. Entity shapes are
// owned by the remote service; the client relays them without imposing a
// schema beyond what the summary views read.
type Record = map[string]any

// ProxyHostRequest is the creation/update payload for a proxy host.
// Optional fields left nil are filled from proxyHostDefaults on creation.
type ProxyHostRequest struct {
	DomainNames           []string `json:"domain_names,omitempty" jsonschema:"domain names handled by this host"`
	ForwardHost           string   `json:"forward_host,omitempty" jsonschema:"upstream host to forward traffic to"`
	ForwardPort           int      `json:"forward_port,omitempty" jsonschema:"upstream port to forward traffic to"`
	ForwardScheme         *string  `json:"forward_scheme,omitempty" jsonschema:"scheme used to reach the upstream, http or https"`
	CertificateID         *int     `json:"certificate_id,omitempty" jsonschema:"certificate id, 0 for none"`
	SSLForced             *bool    `json:"ssl_forced,omitempty" jsonschema:"redirect HTTP to HTTPS"`
	HSTSEnabled           *bool    `json:"hsts_enabled,omitempty" jsonschema:"send HSTS headers"`
	HSTSSubdomains        *bool    `json:"hsts_subdomains,omitempty" jsonschema:"apply HSTS to subdomains"`
	HTTP2Support          *bool    `json:"http2_support,omitempty" jsonschema:"enable HTTP/2"`
	BlockExploits         *bool    `json:"block_exploits,omitempty" jsonschema:"block common exploits"`
	CachingEnabled        *bool    `json:"caching_enabled,omitempty" jsonschema:"cache static assets"`
	AllowWebsocketUpgrade *bool    `json:"allow_websocket_upgrade,omitempty" jsonschema:"allow websocket upgrades"`
	AccessListID          *int     `json:"access_list_id,omitempty" jsonschema:"access list id, 0 for none"`
	AdvancedConfig        *string  `json:"advanced_config,omitempty" jsonschema:"additional raw nginx configuration"`
	Enabled               *bool    `json:"enabled,omitempty" jsonschema:"whether the host is enabled"`
	Locations             []Record `json:"locations,omitempty" jsonschema:"custom location blocks"`
	Meta                  Record   `json:"meta,omitempty" jsonschema:"free-form metadata"`
}

// RedirectionHostRequest is the creation/update payload for a redirection
// host.
type RedirectionHostRequest struct {
	DomainNames       []string `json:"domain_names,omitempty" jsonschema:"domain names handled by this host"`
	ForwardScheme     *string  `json:"forward_scheme,omitempty" jsonschema:"scheme of the redirect target, http or https"`
	ForwardDomainName string   `json:"forward_domain_name,omitempty" jsonschema:"domain to redirect to"`
	ForwardHTTPCode   *int     `json:"forward_http_code,omitempty" jsonschema:"HTTP status code used for the redirect"`
	PreservePath      *bool    `json:"preserve_path,omitempty" jsonschema:"keep the request path on redirect"`
	CertificateID     *int     `json:"certificate_id,omitempty" jsonschema:"certificate id, 0 for none"`
	SSLForced         *bool    `json:"ssl_forced,omitempty" jsonschema:"redirect HTTP to HTTPS"`
	HSTSEnabled       *bool    `json:"hsts_enabled,omitempty" jsonschema:"send HSTS headers"`
	HSTSSubdomains    *bool    `json:"hsts_subdomains,omitempty" jsonschema:"apply HSTS to subdomains"`
	HTTP2Support      *bool    `json:"http2_support,omitempty" jsonschema:"enable HTTP/2"`
	BlockExploits     *bool    `json:"block_exploits,omitempty" jsonschema:"block common exploits"`
	AdvancedConfig    *string  `json:"advanced_config,omitempty" jsonschema:"additional raw nginx configuration"`
	Enabled           *bool    `json:"enabled,omitempty" jsonschema:"whether the host is enabled"`
	Meta              Record   `json:"meta,omitempty" jsonschema:"free-form metadata"`
}

// DeadHostRequest is the creation/update payload for a 404 host.
type DeadHostRequest struct {
	DomainNames    []string `json:"domain_names,omitempty" jsonschema:"domain names handled by this host"`
	CertificateID  *int     `json:"certificate_id,omitempty" jsonschema:"certificate id, 0 for none"`
	SSLForced      *bool    `json:"ssl_forced,omitempty" jsonschema:"redirect HTTP to HTTPS"`
	HSTSEnabled    *bool    `json:"hsts_enabled,omitempty" jsonschema:"send HSTS headers"`
	HSTSSubdomains *bool    `json:"hsts_subdomains,omitempty" jsonschema:"apply HSTS to subdomains"`
	HTTP2Support   *bool    `json:"http2_support,omitempty" jsonschema:"enable HTTP/2"`
	AdvancedConfig *string  `json:"advanced_config,omitempty" jsonschema:"additional raw nginx configuration"`
	Enabled        *bool    `json:"enabled,omitempty" jsonschema:"whether the host is enabled"`
	Meta           Record   `json:"meta,omitempty" jsonschema:"free-form metadata"`
}

// StreamRequest is the creation/update payload for a TCP/UDP stream.
type StreamRequest struct {
	IncomingPort   int    `json:"incoming_port,omitempty" jsonschema:"port the proxy listens on"`
	ForwardingHost string `json:"forwarding_host,omitempty" jsonschema:"upstream host to forward traffic to"`
	ForwardingPort int    `json:"forwarding_port,omitempty" jsonschema:"upstream port to forward traffic to"`
	TCPForwarding  *bool  `json:"tcp_forwarding,omitempty" jsonschema:"forward TCP traffic"`
	UDPForwarding  *bool  `json:"udp_forwarding,omitempty" jsonschema:"forward UDP traffic"`
	CertificateID  *int   `json:"certificate_id,omitempty" jsonschema:"certificate id, 0 for none"`
	Enabled        *bool  `json:"enabled,omitempty" jsonschema:"whether the stream is enabled"`
	Meta           Record `json:"meta,omitempty" jsonschema:"free-form metadata"`
}

// CertificateRequest is the creation payload for a certificate.
type CertificateRequest struct {
	Provider    *string  `json:"provider,omitempty" jsonschema:"certificate provider, letsencrypt or other"`
	NiceName    *string  `json:"nice_name,omitempty" jsonschema:"display name for the certificate"`
	DomainNames []string `json:"domain_names,omitempty" jsonschema:"domain names the certificate covers"`
	Meta        Record   `json:"meta,omitempty" jsonschema:"provider settings such as letsencrypt_email and letsencrypt_agree"`
}

// AccessListAuth is one username/password entry in an access list.
type AccessListAuth struct {
	Username string `json:"username" jsonschema:"basic auth username"`
	Password string `json:"password" jsonschema:"basic auth password"`
}

// AccessListClient is one address rule in an access list.
type AccessListClient struct {
	Address   string `json:"address" jsonschema:"client address or CIDR range"`
	Directive string `json:"directive" jsonschema:"allow or deny"`
}

// AccessListRequest is the creation/update payload for an access list.
type AccessListRequest struct {
	Name       string             `json:"name,omitempty" jsonschema:"access list name"`
	SatisfyAny *bool              `json:"satisfy_any,omitempty" jsonschema:"pass when any rule matches instead of all"`
	PassAuth   *bool              `json:"pass_auth,omitempty" jsonschema:"pass the auth header to the upstream"`
	Items      []AccessListAuth   `json:"items,omitempty" jsonschema:"basic auth entries"`
	Clients    []AccessListClient `json:"clients,omitempty" jsonschema:"client address rules"`
	Meta       Record             `json:"meta,omitempty" jsonschema:"free-form metadata"`
}

// UserRequest is the creation/update payload for a user.
type UserRequest struct {
	Name       string   `json:"name,omitempty" jsonschema:"full name"`
	Nickname   *string  `json:"nickname,omitempty" jsonschema:"display name"`
	Email      string   `json:"email,omitempty" jsonschema:"login email address"`
	Roles      []string `json:"roles,omitempty" jsonschema:"assigned roles, e.g. admin"`
	IsDisabled *bool    `json:"is_disabled,omitempty" jsonschema:"whether the account is disabled"`
}

// SettingUpdateRequest is the update payload for a named setting.
type SettingUpdateRequest struct {
	Value any    `json:"value" jsonschema:"new value for the setting"`
	Meta  Record `json:"meta,omitempty" jsonschema:"free-form metadata"`
}
