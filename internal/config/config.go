package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"uplinepay/internal/money"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Plan      PlanConfig
	Payouts   PayoutConfig
	Withdraw  WithdrawConfig
	RateLimit RateLimitConfig
	Server    ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// RedisConfig holds Redis connection settings for the rate limiter
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig holds event streaming configuration for the audit log
type KafkaConfig struct {
	Brokers string
	Topic   string
}

// PlanConfig holds the compensation plan parameters
type PlanConfig struct {
	// ReferralPercent is the direct sponsor's cut of an activation.
	ReferralPercent money.Percent
	// LevelPercents holds the per-level cut for the sponsor chain,
	// index 0 = level 1. Its length is the maximum traversal depth.
	LevelPercents []money.Percent
	// GlobalPercent is the share reserved into the open global cycle.
	GlobalPercent money.Percent
	// ReenrollOnCycleComplete re-enters completed-cycle members into a
	// fresh cycle. Off unless explicitly enabled.
	ReenrollOnCycleComplete bool
}

// PayoutConfig holds payout queue processing settings
type PayoutConfig struct {
	BatchSize     int
	DrainInterval time.Duration
}

// WithdrawConfig holds withdrawal limits and per-method deductions
type WithdrawConfig struct {
	Minimum money.Amount
	// DeductionPercents maps withdrawal method to its fee.
	DeductionPercents map[string]money.Percent
}

// RateLimitConfig holds gateway rate limiting settings
type RateLimitConfig struct {
	RequestsPerMinute int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
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

	// Redis configuration (rate limiter; optional)
	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "false") == "true"
	if cfg.Redis.Enabled {
		if cfg.Redis.Host, err = requireEnv("REDIS_HOST"); err != nil {
			return nil, err
		}
		if cfg.Redis.Port, err = intEnvWithDefault("REDIS_PORT", "6379"); err != nil {
			return nil, err
		}
		cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
		if cfg.Redis.DB, err = intEnvWithDefault("REDIS_DB", "0"); err != nil {
			return nil, err
		}
	}

	// Kafka configuration (audit events)
	if cfg.Kafka.Brokers, err = requireEnv("KAFKA_BROKERS"); err != nil {
		return nil, err
	}
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "ledger-events")

	// Compensation plan configuration
	if cfg.Plan.ReferralPercent, err = percentEnvWithDefault("PLAN_REFERRAL_PERCENT", "50"); err != nil {
		return nil, err
	}
	if cfg.Plan.GlobalPercent, err = percentEnvWithDefault("PLAN_GLOBAL_PERCENT", "10"); err != nil {
		return nil, err
	}
	if cfg.Plan.LevelPercents, err = percentListEnvWithDefault("PLAN_LEVEL_PERCENTS", "5,5,5,5,5,5"); err != nil {
		return nil, err
	}
	cfg.Plan.ReenrollOnCycleComplete = getEnvWithDefault("PLAN_REENROLL_ON_CYCLE_COMPLETE", "false") == "true"

	// Payout queue configuration
	if cfg.Payouts.BatchSize, err = intEnvWithDefault("PAYOUT_BATCH_SIZE", "100"); err != nil {
		return nil, err
	}
	drainSecs, err := intEnvWithDefault("PAYOUT_DRAIN_INTERVAL_SECONDS", "60")
	if err != nil {
		return nil, err
	}
	cfg.Payouts.DrainInterval = time.Duration(drainSecs) * time.Second

	// Withdrawal configuration
	minimum := getEnvWithDefault("WITHDRAW_MINIMUM", "10.00")
	if cfg.Withdraw.Minimum, err = money.Parse(minimum); err != nil {
		return nil, fmt.Errorf("failed to parse WITHDRAW_MINIMUM: %w", err)
	}
	cfg.Withdraw.DeductionPercents = map[string]money.Percent{}
	for method, def := range map[string]string{
		"bank":     "15",
		"on_chain": "5",
		"internal": "10",
		"p2p":      "0",
	} {
		key := "WITHDRAW_DEDUCTION_" + strings.ToUpper(method) + "_PERCENT"
		pct, err := percentEnvWithDefault(key, def)
		if err != nil {
			return nil, err
		}
		cfg.Withdraw.DeductionPercents[method] = pct
	}

	// Rate limiting configuration
	if cfg.RateLimit.RequestsPerMinute, err = intEnvWithDefault("RATE_LIMIT_RPM", "60"); err != nil {
		return nil, err
	}

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func intEnvWithDefault(key, defaultValue string) (int, error) {
	v, err := strconv.Atoi(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

// percentEnvWithDefault parses a whole-number percentage into basis points.
func percentEnvWithDefault(key, defaultValue string) (money.Percent, error) {
	v, err := strconv.ParseInt(getEnvWithDefault(key, defaultValue), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	if v < 0 || v > 100 {
		return 0, fmt.Errorf("%s out of range: %d", key, v)
	}
	return money.PercentOf(v), nil
}

func percentListEnvWithDefault(key, defaultValue string) ([]money.Percent, error) {
	parts := strings.Split(getEnvWithDefault(key, defaultValue), ",")
	percents := make([]money.Percent, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", key, err)
		}
		percents = append(percents, money.PercentOf(v))
	}
	return percents, nil
}
