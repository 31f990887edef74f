package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Stripe   StripeConfig
	Kafka    KafkaConfig
	Server   ServerConfig
	Billing  BillingConfig
	Fraud    FraudConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// RedisConfig holds redis connection settings. Redis backs the fraud windows,
// the idempotency cache and the asynq queues.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// AuthConfig holds bearer-token verification settings
type AuthConfig struct {
	JWTSecret string
	Issuer    string
}

// StripeConfig holds wallet top-up settings
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	Currency      string
}

// KafkaConfig holds metering-event relay settings
type KafkaConfig struct {
	Brokers string
	Topic   string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

// BillingConfig holds metering hot-path settings
type BillingConfig struct {
	Timeout        time.Duration
	Timezone       string
	IdempotencyTTL time.Duration
	RelayBatchSize int
}

// FraudConfig is the fraud-guard policy. Thresholds are injected into the
// guard at construction.
type FraudConfig struct {
	Enabled             bool
	ClickCooldown       time.Duration
	ClickVelocityLimit  int
	ClickVelocityWindow time.Duration
	DailyUniqueAdsLimit int
	ImpressionCooldown  time.Duration
	CheckTimeout        time.Duration
	MemoryPruneInterval time.Duration
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Redis configuration
	if cfg.Redis.Enabled, err = getBool("REDIS_ENABLED", true); err != nil {
		return nil, err
	}
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	if cfg.Redis.Port, err = getInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.DB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}

	// Auth configuration
	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}
	cfg.Auth.Issuer = getEnvWithDefault("JWT_ISSUER", "marketplace")

	// Stripe configuration
	if cfg.Stripe.SecretKey, err = requireEnv("STRIPE_SECRET_KEY"); err != nil {
		return nil, err
	}
	if cfg.Stripe.WebhookSecret, err = requireEnv("STRIPE_WEBHOOK_SECRET"); err != nil {
		return nil, err
	}
	cfg.Stripe.Currency = getEnvWithDefault("STRIPE_CURRENCY", "usd")

	// Kafka configuration
	if cfg.Kafka.Brokers, err = requireEnv("KAFKA_BROKERS"); err != nil {
		return nil, err
	}
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_METERING_TOPIC", "ad-metering-events")

	// Server configuration
	if cfg.Server.Port, err = getInt("SERVER_PORT", 8080); err != nil {
		return nil, err
	}
	cfg.Server.AllowedOrigins = splitList(getEnvWithDefault("ALLOWED_ORIGINS", "http://localhost:3000"))

	// Billing configuration
	if cfg.Billing.Timeout, err = getDuration("BILLING_TIMEOUT", 250*time.Millisecond); err != nil {
		return nil, err
	}
	cfg.Billing.Timezone = getEnvWithDefault("BILLING_TIMEZONE", "UTC")
	if _, err := time.LoadLocation(cfg.Billing.Timezone); err != nil {
		return nil, fmt.Errorf("failed to parse BILLING_TIMEZONE: %w", err)
	}
	if cfg.Billing.IdempotencyTTL, err = getDuration("IDEMPOTENCY_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.Billing.RelayBatchSize, err = getInt("METERING_RELAY_BATCH_SIZE", 500); err != nil {
		return nil, err
	}

	// Fraud policy
	if cfg.Fraud, err = loadFraudConfig(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadFraudConfig() (FraudConfig, error) {
	var (
		fc  FraudConfig
		err error
	)
	if fc.Enabled, err = getBool("FRAUD_GUARD_ENABLED", false); err != nil {
		return FraudConfig{}, err
	}
	if fc.ClickCooldown, err = getDuration("FRAUD_CLICK_COOLDOWN", 60*time.Second); err != nil {
		return FraudConfig{}, err
	}
	if fc.ClickVelocityLimit, err = getInt("FRAUD_CLICK_VELOCITY_LIMIT", 3); err != nil {
		return FraudConfig{}, err
	}
	if fc.ClickVelocityWindow, err = getDuration("FRAUD_CLICK_VELOCITY_WINDOW", time.Hour); err != nil {
		return FraudConfig{}, err
	}
	if fc.DailyUniqueAdsLimit, err = getInt("FRAUD_DAILY_UNIQUE_ADS_LIMIT", 10); err != nil {
		return FraudConfig{}, err
	}
	if fc.ImpressionCooldown, err = getDuration("FRAUD_IMPRESSION_COOLDOWN", 5*time.Second); err != nil {
		return FraudConfig{}, err
	}
	if fc.CheckTimeout, err = getDuration("FRAUD_CHECK_TIMEOUT", 25*time.Millisecond); err != nil {
		return FraudConfig{}, err
	}
	if fc.MemoryPruneInterval, err = getDuration("FRAUD_MEMORY_PRUNE_INTERVAL", time.Minute); err != nil {
		return FraudConfig{}, err
	}
	return fc, nil
}

// ConnectionString returns the PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// Addr returns the host:port redis address
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BrokerList splits the comma separated broker string
func (c *KafkaConfig) BrokerList() []string {
	return splitList(c.Brokers)
}

// requireEnv gets an environment variable or returns an error if not set
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault gets an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	// the marketplace settings table stores the fraud switch as enable/disable
	switch strings.ToLower(raw) {
	case "enable", "enabled":
		return true, nil
	case "disable", "disabled":
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
