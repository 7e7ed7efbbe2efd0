package ratelimit

import (
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/pathfinder/internal/config"
)

// Endpoints that are never limited.
var unlimited = map[string]string{
	"/health":  http.MethodGet,
	"/metrics": http.MethodGet,
}

// AnalyzePath is the expensive endpoint that gets its own limit.
const AnalyzePath = "/api/v1/analyze"

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// FromSettings builds the limiter configuration from application settings.
func FromSettings(rl config.RateLimitConfig) *Config {
	if !rl.Enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    rl.DefaultLimit,
		DefaultWindow:   rl.DefaultWindow,
		CleanupInterval: rl.CleanupInterval,
		Whitelist:       ipSet(rl.Whitelist),
		Blacklist:       ipSet(rl.Blacklist),
		EndpointConfigs: EndpointConfigs(rl),
	}
}

// EndpointConfigs returns the endpoint-specific limits. Everything else uses
// the default limit.
func EndpointConfigs(rl config.RateLimitConfig) []EndpointConfig {
	return []EndpointConfig{
		{Path: AnalyzePath, Method: http.MethodPost, Limit: rl.AnalyzeLimit, Window: rl.AnalyzeWindow, Burst: rl.AnalyzeBurst},
	}
}

func ipSet(list []string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range list {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}
	return result
}
