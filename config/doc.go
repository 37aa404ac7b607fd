// Package config provides configuration loading and validation for reqkit
// applications.
//
// It uses Viper to load configuration from YAML files with environment
// variable overrides, and godotenv to load .env files before binding.
// The service's deployment environment drives the disclosure policy used by
// the error-translation layer: restricted environments withhold internal
// error detail from clients.
//
// # Usage
//
//	var cfg MyConfig // embeds config.ServiceConfig
//	err := config.Load("my-service", &cfg)
package config
