// Package lifecycle holds shared timing values for process start and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds each fx OnStart/OnStop hook (database ping, server shutdown, publisher close).
const DefaultTimeout = 10 * time.Second
