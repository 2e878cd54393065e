package ratelimit

// Config holds configuration for per-client rate limiting.
type Config struct {
	// Enabled turns the limiter on.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// RPS is the sustained number of requests per second allowed per client.
	RPS float64 `mapstructure:"rps" default:"5"`
	// Burst is the number of requests a client may make at once.
	Burst int `mapstructure:"burst" default:"10"`
	// KeyHeader, when set and present on the request, identifies the client instead of its IP.
	KeyHeader string `mapstructure:"key_header" default:""`
	// IdleTTLSeconds is how long an unused client limiter is kept.
	IdleTTLSeconds int `mapstructure:"idle_ttl_seconds" default:"900"`
	// RedisAddr enables shared counters in Redis when set (host:port).
	RedisAddr string `mapstructure:"redis_addr" default:""`
	// RedisPassword authenticates against Redis.
	RedisPassword string `mapstructure:"redis_password" default:""`
	// RedisDB selects the Redis database.
	RedisDB int `mapstructure:"redis_db" default:"0"`
	// RedisPrefix namespaces counter keys.
	RedisPrefix string `mapstructure:"redis_prefix" default:"poc-availability:ratelimit"`
}
