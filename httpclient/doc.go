// Package httpclient provides a configurable outbound HTTP client with
// structured error classification and automatic correlation-ID propagation.
//
// Requests made with a context that carries a correlation ID (set by the
// server's correlation middleware) forward that ID on the configured header,
// so downstream services join the same trace of log events.
package httpclient
