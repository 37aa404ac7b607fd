package config

import (
	"fmt"

	"github.com/relayops/reqkit/logger"
)

// ServiceConfig contains the essential configuration fields every service
// needs. Projects extend this by embedding it in their own config structs:
//
//	type MyConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Server server.Config `yaml:"server" mapstructure:"server"`
//	}
type ServiceConfig struct {
	Name        string        `yaml:"name" mapstructure:"name"`
	Environment string        `yaml:"environment" mapstructure:"environment"`
	Version     string        `yaml:"version" mapstructure:"version"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`

	// RestrictedEnvironments lists deployment environments in which internal
	// error detail (messages, stack traces) is withheld from clients.
	// Defaults to ["production"]; add "staging" here to treat it the same way.
	RestrictedEnvironments []string `yaml:"restricted_environments" mapstructure:"restricted_environments"`
}

// GetServiceConfig returns the base ServiceConfig. When embedded in a larger
// config struct, this method is promoted so the embedding struct satisfies
// the loader's expectations automatically.
func (c *ServiceConfig) GetServiceConfig() *ServiceConfig {
	return c
}

// ApplyDefaults applies default values to the base configuration.
// Override this in embedding structs and call c.ServiceConfig.ApplyDefaults() first.
func (c *ServiceConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	if len(c.RestrictedEnvironments) == 0 {
		c.RestrictedEnvironments = []string{"production"}
	}
	c.Logging.ApplyDefaults()
}

// DisclosureRestricted reports whether the current environment withholds
// internal error detail from clients.
func (c *ServiceConfig) DisclosureRestricted() bool {
	for _, env := range c.RestrictedEnvironments {
		if c.Environment == env {
			return true
		}
	}
	return false
}

// Validate validates the base configuration fields.
// Override this in embedding structs and call c.ServiceConfig.Validate() first.
func (c *ServiceConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("config.name is required")
	}
	validEnvs := []string{"development", "staging", "production"}
	found := false
	for _, v := range validEnvs {
		if c.Environment == v {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("config.environment must be one of [development, staging, production] (got: %s)", c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}
