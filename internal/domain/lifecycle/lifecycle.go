// Package lifecycle holds shared constants for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start/stop hooks such as database pings and
// HTTP server shutdown.
const DefaultTimeout = 10 * time.Second
