package interfaces

import "time"

// TimeProvider supplies the current time for the refresh policy.
// Injected so tests can move the clock instead of sleeping.
//
//go:generate moq -stub -out mock/time_provider.go -pkg mock . TimeProvider
type TimeProvider interface {
	// Now returns current time (UTC in prod; in tests a controlled clock).
	Now() time.Time
}
