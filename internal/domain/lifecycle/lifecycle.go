// Package lifecycle holds shared startup and shutdown settings.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle hooks such as connection pings and graceful shutdown.
const DefaultTimeout = 10 * time.Second
