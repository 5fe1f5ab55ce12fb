package ratelimit

// RateLimitConfig bounds request counts over fixed windows. A zero limit
// disables that window.
type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

// RateLimiter decides whether a keyed request may proceed.
type RateLimiter interface {
	Allow(key string, config RateLimitConfig) (bool, error)
}
