// Package component defines the contract for lifecycle-managed
// infrastructure components in reqkit services.
//
// Components represent services that require startup, shutdown, and health
// monitoring — the HTTP server registers itself as one, and the health
// endpoints aggregate over the registry.
package component
