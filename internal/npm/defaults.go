package npm

import (
	"encoding/json"
	"fmt"
)

// Per-entity-kind default tables. Every optional field the caller omits on
// creation is filled with an explicit default before the request is built,
// matching what the remote service expects. Kept as data so the default
// policy is auditable and testable apart from the transport.
var (
	proxyHostDefaults = Record{
		"forward_scheme":          "http",
		"certificate_id":          0,
		"access_list_id":          0,
		"ssl_forced":              false,
		"hsts_enabled":            false,
		"hsts_subdomains":         false,
		"http2_support":           false,
		"block_exploits":          false,
		"caching_enabled":         false,
		"allow_websocket_upgrade": false,
		"enabled":                 true,
		"advanced_config":         "",
		"locations":               []any{},
		"meta":                    Record{},
	}

	redirectionHostDefaults = Record{
		"forward_scheme":    "http",
		"forward_http_code": 301,
		"preserve_path":     true,
		"certificate_id":    0,
		"ssl_forced":        false,
		"hsts_enabled":      false,
		"hsts_subdomains":   false,
		"http2_support":     false,
		"block_exploits":    false,
		"enabled":           true,
		"advanced_config":   "",
		"meta":              Record{},
	}

	deadHostDefaults = Record{
		"certificate_id":  0,
		"ssl_forced":      false,
		"hsts_enabled":    false,
		"hsts_subdomains": false,
		"http2_support":   false,
		"enabled":         true,
		"advanced_config": "",
		"meta":            Record{},
	}

	streamDefaults = Record{
		"tcp_forwarding": true,
		"udp_forwarding": false,
		"certificate_id": 0,
		"enabled":        true,
		"meta":           Record{},
	}

	certificateDefaults = Record{
		"provider": "letsencrypt",
		"meta":     Record{},
	}

	accessListDefaults = Record{
		"satisfy_any": false,
		"pass_auth":   false,
		"items":       []any{},
		"clients":     []any{},
		"meta":        Record{},
	}

	userDefaults = Record{
		"is_disabled": false,
		"roles":       []any{},
	}
)

// toPayload converts a request struct into its wire form. Fields left nil
// are absent from the result, which lets withDefaults distinguish
// "omitted" from "explicitly false/zero".
func toPayload(req any) (Record, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}
	var payload Record
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}
	if payload == nil {
		payload = Record{}
	}
	return payload, nil
}

// withDefaults fills every key absent from the payload with its default.
// Caller-supplied values always win, including explicit zero values.
func withDefaults(payload, defaults Record) Record {
	for key, value := range defaults {
		if _, ok := payload[key]; !ok {
			payload[key] = value
		}
	}
	return payload
}

// creationPayload builds the wire payload for a create call: the request
// struct's supplied fields merged over the entity kind's default table.
func creationPayload(req any, defaults Record) (Record, error) {
	payload, err := toPayload(req)
	if err != nil {
		return nil, err
	}
	return withDefaults(payload, defaults), nil
}
