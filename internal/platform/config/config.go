package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Shared-admin credentials. There is exactly one operator account.
	AdminUsername string
	AdminPassword string

	// Recycle bin retention.
	RetentionDays      int
	SweepInterval      time.Duration
	StorageCallTimeout time.Duration

	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`
}

// RetentionDuration returns the retention window as a duration.
func (c *Config) RetentionDuration() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "shop-management-app")
	viper.SetDefault("ADMIN_USERNAME", "")
	viper.SetDefault("ADMIN_PASSWORD", "")
	viper.SetDefault("RETENTION_DAYS", 45)
	viper.SetDefault("SWEEP_INTERVAL", "1h")
	viper.SetDefault("STORAGE_CALL_TIMEOUT", "10s")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AdminUsername = viper.GetString("ADMIN_USERNAME")
	cfg.AdminPassword = viper.GetString("ADMIN_PASSWORD")
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD must be set in production")
		}
		log.Println("Warning: ADMIN_USERNAME/ADMIN_PASSWORD not set. Login is disabled until they are.")
	}

	cfg.RetentionDays = viper.GetInt("RETENTION_DAYS")
	if cfg.RetentionDays <= 0 {
		cfg.RetentionDays = 45
		log.Printf("Warning: Invalid RETENTION_DAYS. Defaulting to %d.\n", cfg.RetentionDays)
	}

	sweepIntervalStr := viper.GetString("SWEEP_INTERVAL")
	sweepInterval, err := time.ParseDuration(sweepIntervalStr)
	if err != nil || sweepInterval <= 0 {
		sweepInterval = time.Hour
		log.Printf("Warning: Invalid value for SWEEP_INTERVAL ('%s'). Defaulting to %s.\n", sweepIntervalStr, sweepInterval)
	}
	cfg.SweepInterval = sweepInterval

	callTimeoutStr := viper.GetString("STORAGE_CALL_TIMEOUT")
	callTimeout, err := time.ParseDuration(callTimeoutStr)
	if err != nil || callTimeout <= 0 {
		callTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for STORAGE_CALL_TIMEOUT ('%s'). Defaulting to %s.\n", callTimeoutStr, callTimeout)
	}
	cfg.StorageCallTimeout = callTimeout

	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	return cfg, nil
}
