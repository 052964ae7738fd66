// Package now returns the current time in a way tests can override through
// the context, so click timestamps can be made deterministic.
package now

import (
	"context"
	"time"
)

type contextKeyType string

// ContextKey is the context value key that overrides Now. The value may be a
// time.Time (fixed clock) or a Provider (evaluated on every call).
const ContextKey contextKeyType = "overrideNow"

// Provider is a function clock. It must be threadsafe if the context crosses
// goroutines.
type Provider func() time.Time

// Now returns the current time, or the override carried by ctx.
func Now(ctx context.Context) time.Time {
	switch v := ctx.Value(ContextKey).(type) {
	case Provider:
		return v()
	case time.Time:
		return v
	default:
		return time.Now()
	}
}
