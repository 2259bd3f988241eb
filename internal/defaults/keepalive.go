package defaults

import "time"

const minKeepAliveInterval = time.Minute

// KeepAliveInterval returns how often a session should be kept alive given its idle lifetime.
//
// It uses lifetime / 2, clamps to a small minimum, and guarantees the result is strictly less
// than the lifetime.
func KeepAliveInterval(lifetime time.Duration) time.Duration {
	if lifetime <= 0 {
		return 0
	}
	interval := lifetime / 2
	if interval < minKeepAliveInterval {
		interval = minKeepAliveInterval
	}
	if interval >= lifetime {
		interval = lifetime / 2
	}
	return interval
}
