package services

import (
	"time"

	"orderboard/internal/core/domain/model/order"
)

// DefaultCancellationWindow is the interval after creation during which a
// customer cancel is considered meaningful.
const DefaultCancellationWindow = 3 * time.Minute

// CancellationPolicy is a domain service answering whether an order is still
// inside its cancellation window. The window is measured against the order's
// monotonic creation instant, so wall-clock adjustments cannot widen or
// shrink it.
//
// The policy only classifies; it does not reject. The board accepts a cancel
// command regardless and the surrounding UI is expected to withhold the button
// once the window has elapsed, matching the behavior clients already rely on.
// Out-of-window cancels are logged by the command handler for visibility.
type CancellationPolicy struct {
	window time.Duration
}

// NewCancellationPolicy creates a policy with the given window. A zero or
// negative window falls back to DefaultCancellationWindow.
func NewCancellationPolicy(window time.Duration) CancellationPolicy {
	if window <= 0 {
		window = DefaultCancellationWindow
	}
	return CancellationPolicy{window: window}
}

// Window returns the configured cancellation window.
func (p CancellationPolicy) Window() time.Duration {
	return p.window
}

// WithinWindow reports whether o can still be meaningfully cancelled at now.
func (p CancellationPolicy) WithinWindow(o *order.Order, now time.Time) bool {
	if o == nil {
		return false
	}
	return o.Age(now) <= p.window
}
