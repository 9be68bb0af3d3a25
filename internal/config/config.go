package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file - ignore error if file doesn't exist
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Note: .env file not found or could not be loaded: %v\n", err)
	}
}

type Config struct {
	Primary       PrimaryConfig
	Server        ServerConfig
	Checkout      CheckoutConfig
	Stripe        StripeConfig
	Observability *ObservabilityConfig
}

type PrimaryConfig struct {
	Env string
}

type ServerConfig struct {
	Port               string
	ReadTimeout        int
	WriteTimeout       int
	IdleTimeout        int
	CORSAllowedOrigins []string
}

// CheckoutConfig is read once at startup and never mutated afterwards.
type CheckoutConfig struct {
	ServiceFeeCents int64
	DefaultCurrency string
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	// APIBase overrides the SDK's default endpoint, used to point the
	// service at scripts/mock-stripe during local runs.
	APIBase string
}

type ObservabilityConfig struct {
	ServiceName string
	Environment string
	Logging     LoggingConfig
	NewRelic    NewRelicConfig
}

type LoggingConfig struct {
	Level  string
	Format string
}

type NewRelicConfig struct {
	LicenseKey                string
	AppLogForwardingEnabled   bool
	DistributedTracingEnabled bool
	DebugLogging              bool
}

// Helper functions for parsing env vars
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return fallback
}

func (c *ObservabilityConfig) GetLogLevel() string {
	if c.Logging.Level == "" {
		switch c.Environment {
		case "production":
			return "info"
		case "development":
			return "debug"
		default:
			return "info"
		}
	}
	return c.Logging.Level
}

func (c *ObservabilityConfig) IsProduction() bool {
	return c.Environment == "production"
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Primary: PrimaryConfig{
			Env: getEnv("CHECKOUT_ENV", "development"),
		},
		Server: ServerConfig{
			Port:               getEnv("CHECKOUT_SERVER_PORT", "8080"),
			ReadTimeout:        getEnvInt("CHECKOUT_SERVER_READ_TIMEOUT", 30),
			WriteTimeout:       getEnvInt("CHECKOUT_SERVER_WRITE_TIMEOUT", 30),
			IdleTimeout:        getEnvInt("CHECKOUT_SERVER_IDLE_TIMEOUT", 60),
			CORSAllowedOrigins: getEnvSlice("CHECKOUT_SERVER_CORS_ORIGINS", []string{"*"}),
		},
		Checkout: CheckoutConfig{
			ServiceFeeCents: getEnvInt64("SERVICE_FEE_CENTS", 99),
			DefaultCurrency: getEnv("CHECKOUT_DEFAULT_CURRENCY", "eur"),
		},
		Stripe: StripeConfig{
			SecretKey:     getEnv("STRIPE_SECRET_KEY", ""),
			WebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", ""),
			APIBase:       getEnv("STRIPE_API_BASE", ""),
		},
		Observability: &ObservabilityConfig{
			ServiceName: "autocheckout",
			Environment: getEnv("CHECKOUT_ENV", "development"),
			Logging: LoggingConfig{
				Level:  getEnv("CHECKOUT_LOG_LEVEL", "debug"),
				Format: getEnv("CHECKOUT_LOG_FORMAT", "console"),
			},
			NewRelic: NewRelicConfig{
				LicenseKey:                getEnv("CHECKOUT_NEWRELIC_LICENSE_KEY", ""),
				AppLogForwardingEnabled:   getEnvBool("CHECKOUT_NEWRELIC_LOG_FORWARDING", true),
				DistributedTracingEnabled: getEnvBool("CHECKOUT_NEWRELIC_DISTRIBUTED_TRACING", true),
				DebugLogging:              getEnvBool("CHECKOUT_NEWRELIC_DEBUG", false),
			},
		},
	}

	// Validate required fields
	if cfg.Stripe.SecretKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is required")
	}
	if cfg.Checkout.ServiceFeeCents < 0 {
		return nil, fmt.Errorf("SERVICE_FEE_CENTS must be >= 0")
	}

	return cfg, nil
}
