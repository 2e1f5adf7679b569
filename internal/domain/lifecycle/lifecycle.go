// Package lifecycle holds timing constants shared by start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds each lifecycle hook (DB ping, server shutdown, client close).
const DefaultTimeout = 10 * time.Second
