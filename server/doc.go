// Package server provides a unified HTTP server backed by Gin with HTTP/2
// h2c support and a centralized request lifecycle stack.
//
// # Middleware
//
// Built-in middleware (server/middleware):
//
//   - Recovery: Panic recovery with structured logging
//   - Correlation: Correlation ID resolution and response echo
//   - RequestLifecycle: Entry/exit request logging with duration tracking
//   - CORS: Cross-origin resource sharing configuration
//   - BodySizeLimit: Request body size limits
//   - RateLimit: Sliding-window rate limiting
//   - ErrorHandler: Centralized error classification and translation
//   - NotFound: Route-miss responder for unmatched paths
//
// # Endpoints
//
// Built-in endpoints (server/endpoint):
//
//   - /health: Health check aggregation
//   - /liveness: Kubernetes liveness probe
//   - /readiness: Kubernetes readiness probe
//   - /info: Application information
//   - /version: Build version information
package server
