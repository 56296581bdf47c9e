// Package timeouts defines shared timeout constants used across the
// invoicer binaries. Centralizing these values prevents drift between
// service boundaries and makes the durations discoverable.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
