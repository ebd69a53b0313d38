package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Sequence backends for purchase codes.
const (
	SequenceBackendPostgres = "postgres"
	SequenceBackendRedis    = "redis"
)

const (
	defaultJWTSecret  = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTExpiry  = time.Hour
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	RefreshTokenExpiryDuration time.Duration
	RefreshTokenCookieName     string
	RefreshTokenCookiePath     string

	FrontendBaseURL string

	// Redis is optional. When RedisAddr is empty the login limiter keeps its
	// state in memory and access tokens cannot be revoked.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	PurchaseCodePrefix     string
	PurchaseCodeSequence   string
	TaxIDLength            int
	InterbankCodeLength    int
	PageSize               int
	MaxPageSize            int
	RegistrationMasterCode string
	MinPasswordLength      int
	LoginRateLimit         string

	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "almacen-erp-lite")
	v.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	v.SetDefault("REFRESH_TOKEN_COOKIE_NAME", "rtid")
	v.SetDefault("REFRESH_TOKEN_COOKIE_PATH", "/api/v1/auth")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("PURCHASE_CODE_PREFIX", "ALM")
	v.SetDefault("PURCHASE_CODE_SEQUENCE", SequenceBackendPostgres)
	v.SetDefault("TAX_ID_LENGTH", 11)
	v.SetDefault("INTERBANK_CODE_LENGTH", 20)
	v.SetDefault("PAGE_SIZE", 10)
	v.SetDefault("MAX_PAGE_SIZE", 100)
	v.SetDefault("REGISTRATION_MASTER_CODE", "ALM2025")
	v.SetDefault("MIN_PASSWORD_LENGTH", 6)
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		DatabaseURL:            v.GetString("PGSQL_URL"),
		Port:                   v.GetString("PORT"),
		IsProduction:           v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:          v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:         v.GetString("MIGRATIONS_PATH"),
		JWTSecret:              v.GetString("JWT_SECRET"),
		JWTIssuer:              v.GetString("JWT_ISSUER"),
		RefreshTokenCookieName: v.GetString("REFRESH_TOKEN_COOKIE_NAME"),
		RefreshTokenCookiePath: v.GetString("REFRESH_TOKEN_COOKIE_PATH"),
		FrontendBaseURL:        v.GetString("FRONTEND_BASE_URL"),
		RedisAddr:              v.GetString("REDIS_ADDR"),
		RedisPassword:          v.GetString("REDIS_PASSWORD"),
		RedisDB:                v.GetInt("REDIS_DB"),
		PurchaseCodePrefix:     strings.ToUpper(strings.TrimSpace(v.GetString("PURCHASE_CODE_PREFIX"))),
		PurchaseCodeSequence:   strings.ToLower(v.GetString("PURCHASE_CODE_SEQUENCE")),
		TaxIDLength:            v.GetInt("TAX_ID_LENGTH"),
		InterbankCodeLength:    v.GetInt("INTERBANK_CODE_LENGTH"),
		PageSize:               v.GetInt("PAGE_SIZE"),
		MaxPageSize:            v.GetInt("MAX_PAGE_SIZE"),
		RegistrationMasterCode: v.GetString("REGISTRATION_MASTER_CODE"),
		MinPasswordLength:      v.GetInt("MIN_PASSWORD_LENGTH"),
		LoginRateLimit:         v.GetString("LOGIN_RATE_LIMIT"),
		PosthogAPIKey:          v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:        v.GetString("POSTHOG_ENDPOINT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTExpiryDuration = parseDuration(v, "JWT_EXPIRY_DURATION", defaultJWTExpiry)
	cfg.RefreshTokenExpiryDuration = parseDuration(v, "REFRESH_TOKEN_EXPIRY_DURATION", defaultRefreshTTL)

	if cfg.PurchaseCodePrefix == "" {
		cfg.PurchaseCodePrefix = "ALM"
	}
	switch cfg.PurchaseCodeSequence {
	case SequenceBackendPostgres, SequenceBackendRedis:
	default:
		log.Printf("Warning: unknown PURCHASE_CODE_SEQUENCE ('%s'). Defaulting to %s.\n", cfg.PurchaseCodeSequence, SequenceBackendPostgres)
		cfg.PurchaseCodeSequence = SequenceBackendPostgres
	}
	if cfg.PurchaseCodeSequence == SequenceBackendRedis && cfg.RedisAddr == "" {
		log.Println("Warning: PURCHASE_CODE_SEQUENCE=redis requires REDIS_ADDR. Falling back to postgres.")
		cfg.PurchaseCodeSequence = SequenceBackendPostgres
	}

	cfg.TaxIDLength = positiveOr(cfg.TaxIDLength, 11, "TAX_ID_LENGTH")
	cfg.InterbankCodeLength = positiveOr(cfg.InterbankCodeLength, 20, "INTERBANK_CODE_LENGTH")
	cfg.PageSize = positiveOr(cfg.PageSize, 10, "PAGE_SIZE")
	cfg.MaxPageSize = positiveOr(cfg.MaxPageSize, 100, "MAX_PAGE_SIZE")
	cfg.MinPasswordLength = positiveOr(cfg.MinPasswordLength, 6, "MIN_PASSWORD_LENGTH")

	if cfg.RegistrationMasterCode == "" {
		log.Println("Warning: REGISTRATION_MASTER_CODE is empty. Registration is disabled.")
	}

	return cfg
}

func parseDuration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		return fallback
	}
	return d
}

func positiveOr(value, fallback int, key string) int {
	if value > 0 {
		return value
	}
	log.Printf("Warning: Invalid value for %s (%d). Defaulting to %d.\n", key, value, fallback)
	return fallback
}
