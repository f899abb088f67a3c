// Package lifecycle holds shared constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle operations such as database pings and
// HTTP server shutdown.
const DefaultTimeout = 10 * time.Second
