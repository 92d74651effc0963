package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

const (
	StorePostgres  = "postgres"
	StoreFirestore = "firestore"
	StoreMemory    = "memory"

	AuthLocal    = "local"
	AuthFirebase = "firebase"
)

// AppConfig holds the application configuration
type AppConfig struct {
	Env      string
	HTTPAddr string
	DBURL    string
	APIKey   string

	// SymmetricKey signs local session tokens. 32 bytes.
	SymmetricKey string

	StoreBackend string
	AuthBackend  string

	FirebaseProjectID       string
	FirebaseCredentialsFile string

	Redis RedisConfig
	SMTP  SMTPConfig

	PublicBaseURL string
	Location      *time.Location
	PaymentDelay  time.Duration
	ConnectDelay  time.Duration
	ReminderAt    string

	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
}

type RedisConfig struct {
	URL          string
	PoolSize     int
	DialTimeout  time.Duration
	MinIdleConns int
	ReadTimeout  time.Duration
	MaxRetries   int
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Enabled reports whether an SMTP relay is configured.
func (s SMTPConfig) Enabled() bool {
	return s.Host != ""
}

// GetAPIKey returns the client API key from the config
func (c *AppConfig) GetAPIKey() string {
	return c.APIKey
}

// IsDevelopment reports whether the service runs outside production.
func (c *AppConfig) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev"
}

// Load reads a .env file when present, then the process environment.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := &AppConfig{
		Env:                     getEnv("APP_ENV", "development"),
		HTTPAddr:                getEnv("HTTP_ADDR", ":8930"),
		DBURL:                   os.Getenv("DB_URL"),
		APIKey:                  os.Getenv("API_KEY"),
		SymmetricKey:            os.Getenv("SYMMETRIC_KEY"),
		StoreBackend:            strings.ToLower(getEnv("STORE_BACKEND", StorePostgres)),
		AuthBackend:             strings.ToLower(getEnv("AUTH_BACKEND", AuthLocal)),
		FirebaseProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
		FirebaseCredentialsFile: os.Getenv("FIREBASE_CREDENTIALS_FILE"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			DialTimeout:  getEnvAsDuration("REDIS_DIAL_TIMEOUT", 30*time.Second),
			MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 5),
			ReadTimeout:  getEnvAsDuration("REDIS_READ_TIMEOUT", 10*time.Second),
			MaxRetries:   getEnvAsInt("REDIS_MAX_RETRIES", 3),
		},
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			User:     os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
			From:     getEnv("SMTP_FROM", os.Getenv("SMTP_USER")),
		},
		PublicBaseURL:  strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8930"), "/"),
		PaymentDelay:   getEnvAsDuration("PAYMENT_DELAY", 2*time.Second),
		ConnectDelay:   getEnvAsDuration("CONNECT_DELAY", 5*time.Second),
		ReminderAt:     getEnv("REMINDER_AT", "08:00"),
		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		RateLimitRPS:   getEnvAsFloat("RATE_LIMIT_RPS", 15),
		RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", 30),
	}

	loc, err := time.LoadLocation(getEnv("TIMEZONE", "Asia/Kolkata"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	cfg.Location = loc

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) validate() error {
	if c.APIKey == "" {
		return errors.New("missing API_KEY environment variable")
	}
	if c.Redis.URL == "" {
		return errors.New("missing REDIS_URL environment variable")
	}

	switch c.StoreBackend {
	case StorePostgres, StoreFirestore, StoreMemory:
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}
	switch c.AuthBackend {
	case AuthLocal, AuthFirebase:
	default:
		return fmt.Errorf("unknown AUTH_BACKEND %q", c.AuthBackend)
	}

	// The memory store also keeps local accounts in memory
	needsDB := c.StoreBackend == StorePostgres || (c.AuthBackend == AuthLocal && c.StoreBackend != StoreMemory)
	if needsDB && c.DBURL == "" {
		return errors.New("missing DB_URL environment variable")
	}
	if c.AuthBackend == AuthLocal && len(c.SymmetricKey) != 32 {
		return fmt.Errorf("SYMMETRIC_KEY must be 32 bytes long, got %d", len(c.SymmetricKey))
	}
	if (c.StoreBackend == StoreFirestore || c.AuthBackend == AuthFirebase) && c.FirebaseProjectID == "" {
		return errors.New("missing FIREBASE_PROJECT_ID environment variable")
	}
	if _, err := time.Parse("15:04", c.ReminderAt); err != nil {
		return fmt.Errorf("REMINDER_AT must be HH:MM: %w", err)
	}
	return nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(name string, defaultValue int) int {
	if value, exists := os.LookupEnv(name); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
		log.Printf("Warning: Invalid integer value for %s, using default: %d", name, defaultValue)
	}
	return defaultValue
}

func getEnvAsFloat(name string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(name); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Printf("Warning: Invalid float value for %s, using default: %g", name, defaultValue)
	}
	return defaultValue
}

func getEnvAsDuration(name string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(name); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
		log.Printf("Warning: Invalid duration value for %s, using default: %s", name, defaultValue.String())
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
