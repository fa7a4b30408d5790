// Package constants holds string values shared across layers.
package constants

const (
	// EnvDevelop is the env.env value used on developer machines.
	EnvDevelop = "development"

	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"

	// AttrRequestID and AttrEventType are Pub/Sub message attribute keys.
	AttrRequestID = "request_id"
	AttrEventType = "event_type"

	// SessionKeyPrefix prefixes the client-side access cache key of a token.
	SessionKeyPrefix = "guestpass.access."

	// RateLimitKeyPrefix namespaces limiter counters in redis.
	RateLimitKeyPrefix = "guestpass:ratelimit:"
)
