package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "ridepulse-dispatch")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 15)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 15)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "postgres")
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 24)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "ridepulse")

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	// External services config
	configs.Services.TripsURL = GetEnv("TRIPS_SERVICE_URL", "http://localhost:9990")
	configs.Services.WalletServiceURL = GetEnv("WALLET_SERVICE_URL", "http://localhost:9993")
	configs.Services.DriverServiceURL = GetEnv("DRIVER_SERVICE_URL", "http://localhost:9992")
	configs.Services.SOSServiceURL = GetEnv("SOS_SERVICE_URL", "http://localhost:9991")

	// Match config
	configs.Match.PickupRadiusKm = GetEnvAsFloat("MATCH_PICKUP_RADIUS_KM", 5.0)
	configs.Match.OfferPromptTimeoutSec = GetEnvAsInt("MATCH_OFFER_PROMPT_TIMEOUT", 30)
	configs.Match.IgnoreTTLSec = GetEnvAsInt("MATCH_IGNORE_TTL", 60)

	// Dispatch config
	configs.Dispatch.PollIntervalSec = GetEnvAsInt("DISPATCH_POLL_INTERVAL", 4)
	configs.Dispatch.RequestTimeoutSec = GetEnvAsInt("DISPATCH_REQUEST_TIMEOUT", 10)

	// Tracking config
	configs.Tracking.IdleIntervalSec = GetEnvAsInt("TRACKING_IDLE_INTERVAL", 30)
	configs.Tracking.IdleDistanceM = GetEnvAsFloat("TRACKING_IDLE_DISTANCE_M", 200)
	configs.Tracking.NearIntervalSec = GetEnvAsInt("TRACKING_NEAR_INTERVAL", 10)
	configs.Tracking.NearDistanceM = GetEnvAsFloat("TRACKING_NEAR_DISTANCE_M", 50)
	configs.Tracking.ActiveIntervalSec = GetEnvAsInt("TRACKING_ACTIVE_INTERVAL", 3)
	configs.Tracking.ActiveDistanceM = GetEnvAsFloat("TRACKING_ACTIVE_DISTANCE_M", 10)

	// Balance config
	configs.Balance.DebtThreshold = GetEnvAsFloat("BALANCE_DEBT_THRESHOLD", -100)
	configs.Balance.FetchTimeoutSec = GetEnvAsInt("BALANCE_FETCH_TIMEOUT", 10)
	configs.Balance.VerifyAttempts = GetEnvAsInt("BALANCE_VERIFY_ATTEMPTS", 6)
	configs.Balance.VerifyInitialDelaySec = GetEnvAsInt("BALANCE_VERIFY_INITIAL_DELAY", 10)
	configs.Balance.VerifySpacingSec = GetEnvAsInt("BALANCE_VERIFY_SPACING", 20)

	// SOS config
	configs.SOS.FixTimeoutSec = GetEnvAsInt("SOS_FIX_TIMEOUT", 5)

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
