package ratelimit

import "strings"

// unlimited marks an endpoint as exempt from rate limiting.
var unlimited = EndpointConfig{}

// MatchEndpoint resolves the rate limit configuration for a request path and
// method. Exact path matches win; configurations whose path ends in "/" act
// as prefix rules. Returns nil when no rule applies, in which case the
// caller falls back to the global default.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// The health check must stay reachable for probes even under abuse.
	if path == "/health" && method == "GET" {
		return &unlimited
	}

	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}

	for i := range configs {
		cfg := &configs[i]
		if cfg.Method == method && strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) {
			return cfg
		}
	}

	return nil
}
