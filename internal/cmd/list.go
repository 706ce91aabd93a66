package cmd

import "fmt"

// catalogGroup is one entity kind's slice of the operation catalog.
type catalogGroup struct {
	kind  string
	tools []struct {
		name        string
		description string
	}
}

// ListTools displays the full operation catalog grouped by entity kind.
func ListTools() error {
	catalog := []catalogGroup{
		{"Proxy Hosts", []struct{ name, description string }{
			{"list_proxy_hosts", "List all proxy hosts"},
			{"get_proxy_host", "Get a proxy host by id"},
			{"create_proxy_host", "Create a proxy host"},
			{"update_proxy_host", "Update an existing proxy host"},
			{"delete_proxy_host", "Delete a proxy host"},
			{"enable_proxy_host", "Enable a proxy host"},
			{"disable_proxy_host", "Disable a proxy host"},
		}},
		{"Redirection Hosts", []struct{ name, description string }{
			{"list_redirection_hosts", "List all redirection hosts"},
			{"get_redirection_host", "Get a redirection host by id"},
			{"create_redirection_host", "Create a redirection host"},
			{"update_redirection_host", "Update an existing redirection host"},
			{"delete_redirection_host", "Delete a redirection host"},
			{"enable_redirection_host", "Enable a redirection host"},
			{"disable_redirection_host", "Disable a redirection host"},
		}},
		{"404 Hosts", []struct{ name, description string }{
			{"list_dead_hosts", "List all 404 hosts"},
			{"get_dead_host", "Get a 404 host by id"},
			{"create_dead_host", "Create a 404 host"},
			{"update_dead_host", "Update an existing 404 host"},
			{"delete_dead_host", "Delete a 404 host"},
			{"enable_dead_host", "Enable a 404 host"},
			{"disable_dead_host", "Disable a 404 host"},
		}},
		{"Streams", []struct{ name, description string }{
			{"list_streams", "List all TCP/UDP streams"},
			{"get_stream", "Get a stream by id"},
			{"create_stream", "Create a stream"},
			{"update_stream", "Update an existing stream"},
			{"delete_stream", "Delete a stream"},
			{"enable_stream", "Enable a stream"},
			{"disable_stream", "Disable a stream"},
		}},
		{"Certificates", []struct{ name, description string }{
			{"list_certificates", "List all certificates"},
			{"get_certificate", "Get a certificate by id"},
			{"create_certificate", "Request a new certificate"},
			{"delete_certificate", "Delete a certificate"},
			{"renew_certificate", "Trigger renewal of a certificate"},
		}},
		{"Access Lists", []struct{ name, description string }{
			{"list_access_lists", "List all access lists"},
			{"get_access_list", "Get an access list by id"},
			{"create_access_list", "Create an access list"},
			{"update_access_list", "Update an existing access list"},
			{"delete_access_list", "Delete an access list"},
		}},
		{"Users", []struct{ name, description string }{
			{"list_users", "List all users"},
			{"get_user", "Get a user by id"},
			{"create_user", "Create a user account"},
			{"update_user", "Update an existing user"},
			{"delete_user", "Delete a user"},
		}},
		{"Settings & Audit", []struct{ name, description string }{
			{"list_settings", "List all settings"},
			{"get_setting", "Get a setting by id"},
			{"update_setting", "Update a setting's value"},
			{"get_hosts_report", "Get the proxy manager's own host count report"},
			{"list_audit_log", "List audit log entries"},
		}},
	}

	for _, group := range catalog {
		fmt.Printf("%s:\n", group.kind)
		for _, tool := range group.tools {
			fmt.Printf("  • %s - %s\n", tool.name, tool.description)
		}
		fmt.Println()
	}

	fmt.Println("Resources:")
	fmt.Println("  • npm://summary/hosts - Host counts plus per-proxy-host digest")
	fmt.Println("  • npm://summary/certificates - Certificate count plus per-certificate digest")

	return nil
}
