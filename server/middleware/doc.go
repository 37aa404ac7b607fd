// Package middleware provides the request-lifecycle pipeline for reqkit
// servers: correlation-ID propagation, entry/exit request logging,
// centralized error translation, panic recovery, CORS, body-size limiting,
// and rate limiting.
//
// Ordering matters. Server.ApplyMiddleware installs the stack as:
//
//	Recovery → Correlation → RequestLifecycle → CORS → BodySizeLimit → ErrorHandler
//
// ErrorHandler is registered last so that on unwind it is the first stage to
// see a failed request — no other middleware can intercept the error before
// the centralized translation runs.
package middleware
