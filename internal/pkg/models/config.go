package models

// Config holds the complete gateway configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Services ServicesConfig
	Trips    TripsConfig
	Stats    StatsConfig
	Logger   LoggerConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name        string `json:"name"`
	Environment string `json:"environment"`
	Debug       bool   `json:"debug"`
	Version     string `json:"version"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string `json:"host"`
	Port            int    `json:"port"`
	ReadTimeout     int    `json:"read_timeout"`
	WriteTimeout    int    `json:"write_timeout"`
	ShutdownTimeout int    `json:"shutdown_timeout"`
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	PoolSize int    `json:"pool_size"`
}

// JWTConfig holds session token configuration
type JWTConfig struct {
	Secret     string `json:"secret"`
	Expiration int    `json:"expiration"` // in minutes
	Issuer     string `json:"issuer"`
	CookieName string `json:"cookie_name"`
}

// ServicesConfig holds the upstream backend base URLs
type ServicesConfig struct {
	AuthServiceURL   string `json:"auth_service_url"`
	TripsServiceURL  string `json:"trips_service_url"`
	TimeoutSeconds   int    `json:"timeout_seconds"`
}

// TripsConfig holds trip settlement behavior configuration
type TripsConfig struct {
	// PersistPickupConfirmation controls whether a pickup confirmation
	// without any rating is sent upstream as its own call, or kept as a
	// local attestation in the settlement result only.
	PersistPickupConfirmation bool `json:"persist_pickup_confirmation"`
}

// StatsConfig holds gamification/statistics configuration
type StatsConfig struct {
	LeaderboardCacheTTL int `json:"leaderboard_cache_ttl"` // in seconds
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}
