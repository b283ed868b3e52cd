package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Redis Redis

	RateLimit RateLimit `validate:"required"`

	Auth Auth `validate:"required"`

	Stripe Stripe `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	// Empty Brokers disables event publishing and the retry consumer.
	Brokers []string `validate:"omitempty,dive,hostname_port"`
	GroupID string   `validate:"required"`

	OrderEventsTopic  string `validate:"required"`
	PaymentRetryTopic string `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type Redis struct {
	Addr     string `validate:"omitempty,hostname_port"`
	Password string
	DB       int `validate:"gte=0"`
}

type RateLimit struct {
	Store string `validate:"required,oneof=memory redis"`

	Window       time.Duration `validate:"required,gt=0"`
	APIRequests  int           `validate:"required,gt=0"`
	AuthRequests int           `validate:"required,gt=0"`

	// Capacity bounds the in-memory table.
	Capacity int `validate:"gt=0"`
}

type Auth struct {
	AccessSecret  string `validate:"required,min=32"`
	RefreshSecret string `validate:"required,min=32,nefield=AccessSecret"`

	AccessTTL  time.Duration `validate:"required,gt=0"`
	RefreshTTL time.Duration `validate:"required,gtfield=AccessTTL"`

	MaxFailedLogins int           `validate:"required,gt=0"`
	LockDuration    time.Duration `validate:"required,gt=0"`
}

type Stripe struct {
	SecretKey     string `validate:"required"`
	WebhookSecret string `validate:"required"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			Brokers: splitCSV(env("KAFKA_BROKERS", "")),
			GroupID: env("KAFKA_GROUP_ID", "supermall"),

			OrderEventsTopic:  env("KAFKA_ORDER_EVENTS_TOPIC", "order-events"),
			PaymentRetryTopic: env("KAFKA_PAYMENT_RETRY_TOPIC", "payment-events-retry"),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "supermall"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Redis: Redis{
			Addr:     env("REDIS_ADDR", ""),
			Password: env("REDIS_PASSWORD", ""),
			DB:       envInt("REDIS_DB", 0),
		},

		RateLimit: RateLimit{
			Store:        env("RATE_LIMIT_STORE", "memory"),
			Window:       envDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
			APIRequests:  envInt("RATE_LIMIT_API_REQUESTS", 300),
			AuthRequests: envInt("RATE_LIMIT_AUTH_REQUESTS", 20),
			Capacity:     envInt("RATE_LIMIT_CAPACITY", 100_000),
		},

		Auth: Auth{
			AccessSecret:  env("JWT_ACCESS_SECRET", ""),
			RefreshSecret: env("JWT_REFRESH_SECRET", ""),

			AccessTTL:  envDuration("JWT_ACCESS_TTL", 15*time.Minute),
			RefreshTTL: envDuration("JWT_REFRESH_TTL", 7*24*time.Hour),

			MaxFailedLogins: envInt("AUTH_MAX_FAILED_LOGINS", 5),
			LockDuration:    envDuration("AUTH_LOCK_DURATION", 15*time.Minute),
		},

		Stripe: Stripe{
			SecretKey:     env("STRIPE_SECRET_KEY", ""),
			WebhookSecret: env("STRIPE_WEBHOOK_SECRET", ""),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	validate.RegisterStructValidation(func(sl validator.StructLevel) {
		rl := sl.Current().Interface().(Config)
		if rl.RateLimit.Store == "redis" && rl.Redis.Addr == "" {
			sl.ReportError(rl.Redis.Addr, "Redis.Addr", "Addr", "required_with_redis_store", "")
		}
	}, Config{})
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
