// Package lifecycle holds shared process-lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown of managed
// resources (HTTP server, database pool, cache clients).
const DefaultTimeout = 10 * time.Second
