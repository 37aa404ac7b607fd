// Package logger provides structured logging for reqkit applications
// using zerolog.
//
// It supports JSON and console output formats, log level configuration, and
// component-scoped loggers with structured fields. Loggers are constructed
// once at process start and passed explicitly — request-scoped loggers travel
// on the request context via IntoContext/FromContext, never through ambient
// global lookup.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.New(&cfg, "my-service").WithComponent("store")
//	log.Info("record saved", logger.Fields("id", id))
package logger
