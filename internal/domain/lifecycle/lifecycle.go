// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown hooks (server drain, DB ping).
const DefaultTimeout = 10 * time.Second
