package ratelimit

import (
	"strings"
)

// MatchEndpoint resolves the endpoint configuration for a request path and
// method. Exact path matches win over prefix matches; configs with a
// trailing "/" act as prefixes (so "/analyses/" covers "/analyses/{id}").
// Returns nil when nothing matches, which selects the default limit.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// The health check is never limited
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") &&
			strings.HasPrefix(path, config.Path) {
			return config
		}
	}

	return nil
}
