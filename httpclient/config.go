package httpclient

import (
	"fmt"
	"time"

	"github.com/relayops/reqkit/server/middleware"
)

const defaultTimeout = 30 * time.Second

// Config configures the HTTP client.
type Config struct {
	// BaseURL is the base URL prepended to all request paths.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Timeout is the default request timeout. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// CorrelationHeader is the header under which the context's correlation
	// ID is forwarded. Defaults to the server's primary correlation header.
	CorrelationHeader string `yaml:"correlation_header" mapstructure:"correlation_header"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.CorrelationHeader == "" {
		c.CorrelationHeader = middleware.DefaultCorrelationHeader
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("httpclient: timeout must be positive")
	}
	return nil
}
