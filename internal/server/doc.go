// Package server exposes the relay's HTTP surface.
//
// Three independent dispatch handlers validate minimal input shape, delegate
// to a provider adapter, and answer with a small JSON body. Each handler is
// the sole error boundary for its request: upstream failures are logged with
// full detail and mapped to a fixed client-facing message, never leaking
// provider internals. Handlers share no state; the only shared resource is
// the staging directory, where each speech-to-text request uses a distinct
// generated path.
package server
