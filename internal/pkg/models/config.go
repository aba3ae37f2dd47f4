package models

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Logger   LoggerConfig
	Services ServicesConfig
	Match    MatchConfig
	Dispatch DispatchConfig
	Tracking TrackingConfig
	Balance  BalanceConfig
	SOS      SOSConfig
}

// AppConfig holds application-level settings
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig holds NATS connection settings
type NATSConfig struct {
	URL string
}

// JWTConfig holds token signing settings
type JWTConfig struct {
	Secret     string
	Expiration int
	Issuer     string
}

// LoggerConfig holds logging settings
type LoggerConfig struct {
	Level    string
	FilePath string
}

// ServicesConfig holds URLs of external collaborators
type ServicesConfig struct {
	TripsURL         string
	WalletServiceURL string
	DriverServiceURL string
	SOSServiceURL    string
}

// MatchConfig holds offer/matching settings
type MatchConfig struct {
	// PickupRadiusKm is the maximum driver distance from pickup for eligibility
	PickupRadiusKm float64
	// OfferPromptTimeoutSec auto-declines an unacted incoming offer prompt
	OfferPromptTimeoutSec int
	// IgnoreTTLSec is how long an ignored trip stays suppressed at the same price
	IgnoreTTLSec int
}

// DispatchConfig holds reconciliation loop settings
type DispatchConfig struct {
	// PollIntervalSec is the fixed polling fallback cadence while online
	PollIntervalSec int
	// RequestTimeoutSec bounds each Trip API call issued by the poller
	RequestTimeoutSec int
}

// TrackingConfig holds per-mode location sampling parameters
type TrackingConfig struct {
	IdleIntervalSec   int
	IdleDistanceM     float64
	NearIntervalSec   int
	NearDistanceM     float64
	ActiveIntervalSec int
	ActiveDistanceM   float64
}

// BalanceConfig holds balance gate settings
type BalanceConfig struct {
	// DebtThreshold blocks go-online when the reliable balance drops below it
	DebtThreshold float64
	// FetchTimeoutSec bounds each balance source fetch
	FetchTimeoutSec int
	// Payment verification polling: attempts and spacing
	VerifyAttempts        int
	VerifyInitialDelaySec int
	VerifySpacingSec      int
}

// SOSConfig holds safety escalation settings
type SOSConfig struct {
	// FixTimeoutSec bounds each location fix attempt (one retry allowed)
	FixTimeoutSec int
}
