package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Supported client platforms
const (
	PlatformAndroid = "android"
	PlatformIOS     = "ios"
	PlatformWeb     = "web"
)

var platformBaseURLs = map[string]string{
	PlatformAndroid: "http://10.112.217.13:8000",
	PlatformIOS:     "http://192.168.143.13:8000",
	PlatformWeb:     "http://localhost:8000",
}

type Config struct {
	API        APIConfig
	Session    SessionConfig
	Storage    StorageConfig
	Budget     BudgetConfig
	SMS        SMSConfig
	Resilience ResilienceConfig
	DevServer  DevServerConfig
	Logging    LoggingConfig
}

type APIConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	AuthTimeout    time.Duration
}

type SessionConfig struct {
	LogoutSettleDelay time.Duration
}

type StorageConfig struct {
	Path        string
	AutoMigrate bool
}

type BudgetConfig struct {
	MonthlyLimit     decimal.Decimal
	WarningThreshold int
	RiskThreshold    int
}

type SMSConfig struct {
	Enabled  bool
	Platform string
}

type ResilienceConfig struct {
	CircuitBreakerEnabled     bool
	CircuitBreakerMaxFailures int
	CircuitBreakerReset       time.Duration
	CircuitBreakerHalfOpenMax int
}

type DevServerConfig struct {
	Host               string
	Port               string
	Environment        string
	BCryptCost         int
	RateLimitPerSecond int
	RateLimitBurst     int
	SeedDemoData       bool
	DBPath             string
	JWT                JWTConfig
}

type JWTConfig struct {
	AccessTokenDuration  time.Duration
	RefreshTokenDuration time.Duration
	PrivateKey           *rsa.PrivateKey
	PublicKey            *rsa.PublicKey
	Issuer               string
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	platform := strings.ToLower(getEnv("APP_PLATFORM", PlatformAndroid))

	limit, err := getDecimalEnv("BUDGET_MONTHLY_LIMIT", decimal.NewFromInt(10000))
	if err != nil {
		return nil, err
	}

	config := &Config{
		API: APIConfig{
			BaseURL:        strings.TrimRight(getEnv("API_BASE_URL", DefaultBaseURL(platform)), "/"),
			RequestTimeout: getDurationEnv("API_REQUEST_TIMEOUT", 15*time.Second),
			AuthTimeout:    getDurationEnv("API_AUTH_TIMEOUT", 15*time.Second),
		},
		Session: SessionConfig{
			LogoutSettleDelay: getDurationEnv("SESSION_LOGOUT_SETTLE_DELAY", 300*time.Millisecond),
		},
		Storage: StorageConfig{
			Path:        getEnv("CREDENTIAL_STORE_PATH", defaultStoragePath()),
			AutoMigrate: getBoolEnv("CREDENTIAL_STORE_AUTO_MIGRATE", true),
		},
		Budget: BudgetConfig{
			MonthlyLimit:     limit,
			WarningThreshold: getIntEnv("BUDGET_WARNING_THRESHOLD", 75),
			RiskThreshold:    getIntEnv("BUDGET_RISK_THRESHOLD", 90),
		},
		SMS: SMSConfig{
			Enabled:  getBoolEnv("SMS_LISTENER_ENABLED", true),
			Platform: platform,
		},
		Resilience: ResilienceConfig{
			CircuitBreakerEnabled:     getBoolEnv("CIRCUIT_BREAKER_ENABLED", true),
			CircuitBreakerMaxFailures: getIntEnv("CIRCUIT_BREAKER_MAX_FAILURES", 5),
			CircuitBreakerReset:       getDurationEnv("CIRCUIT_BREAKER_RESET_TIMEOUT", 30*time.Second),
			CircuitBreakerHalfOpenMax: getIntEnv("CIRCUIT_BREAKER_HALF_OPEN_SUCCESSES", 3),
		},
		DevServer: DevServerConfig{
			Host:               getEnv("DEVSERVER_HOST", "localhost"),
			Port:               getEnv("DEVSERVER_PORT", "8000"),
			Environment:        getEnv("APP_ENV", "development"),
			BCryptCost:         getIntEnv("BCRYPT_COST", 10),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
			SeedDemoData:       getBoolEnv("DEVSERVER_SEED", false),
			DBPath:             getEnv("DEVSERVER_DB_PATH", ":memory:"),
			JWT: JWTConfig{
				AccessTokenDuration:  getDurationEnv("JWT_ACCESS_TOKEN_DURATION", 15*time.Minute),
				RefreshTokenDuration: getDurationEnv("JWT_REFRESH_TOKEN_DURATION", 7*24*time.Hour),
				Issuer:               getEnv("JWT_ISSUER", "expense-backend"),
			},
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks cross-field constraints that the env helpers cannot.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("API_BASE_URL must not be empty")
	}
	if c.API.RequestTimeout <= 0 || c.API.AuthTimeout <= 0 {
		return errors.New("request timeouts must be positive")
	}
	if c.Budget.MonthlyLimit.IsNegative() {
		return errors.New("BUDGET_MONTHLY_LIMIT must not be negative")
	}
	if c.Budget.WarningThreshold < 0 || c.Budget.RiskThreshold > 100 {
		return fmt.Errorf("budget thresholds must be within 0-100, got %d/%d", c.Budget.WarningThreshold, c.Budget.RiskThreshold)
	}
	if c.Budget.WarningThreshold >= c.Budget.RiskThreshold {
		return fmt.Errorf("BUDGET_WARNING_THRESHOLD (%d) must be below BUDGET_RISK_THRESHOLD (%d)", c.Budget.WarningThreshold, c.Budget.RiskThreshold)
	}
	return nil
}

// DefaultBaseURL returns the backend address used by the given platform when
// API_BASE_URL is not set.
func DefaultBaseURL(platform string) string {
	if url, ok := platformBaseURLs[platform]; ok {
		return url
	}
	return platformBaseURLs[PlatformWeb]
}

func (c *Config) IsDevelopment() bool {
	return c.DevServer.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.DevServer.Environment == "production"
}

// Address returns host:port for the development backend listener.
func (c *DevServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

// NewLogger builds the process logger from the logging section.
func (c LoggingConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(c.Level)}
	if strings.EqualFold(c.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "credentials.db"
	}
	return filepath.Join(home, ".expense-client", "credentials.db")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getDecimalEnv(key string, defaultValue decimal.Decimal) (decimal.Decimal, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return d, nil
}

// LoadJWTKeys resolves the signing keypair for the development backend.
// Keys come from JWT_PRIVATE_KEY/JWT_PUBLIC_KEY (base64 PEM) when both are set;
// production refuses to run without them, other environments generate a pair.
func (c *DevServerConfig) LoadJWTKeys() error {
	privateKeyB64 := os.Getenv("JWT_PRIVATE_KEY")
	publicKeyB64 := os.Getenv("JWT_PUBLIC_KEY")

	var err error
	switch {
	case privateKeyB64 != "" && publicKeyB64 != "":
		c.JWT.PrivateKey, c.JWT.PublicKey, err = loadKeysFromEnvVars(privateKeyB64, publicKeyB64)
	case c.Environment == "production":
		err = errors.New("JWT_PRIVATE_KEY and JWT_PUBLIC_KEY environment variables must be set in production environments")
	default:
		c.JWT.PrivateKey, c.JWT.PublicKey, err = GenerateRSAKeyPair()
	}
	return err
}

func loadKeysFromEnvVars(privateKeyB64, publicKeyB64 string) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKeyBytes, err := base64.StdEncoding.DecodeString(privateKeyB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode JWT_PRIVATE_KEY: %w", err)
	}

	publicKeyBytes, err := base64.StdEncoding.DecodeString(publicKeyB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode JWT_PUBLIC_KEY: %w", err)
	}

	privateKey, err := loadRSAPrivateKey(privateKeyBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	publicKey, err := loadRSAPublicKey(publicKeyBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	return privateKey, publicKey, nil
}

// GenerateRSAKeyPair generates a new RSA key pair
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	return privateKey, &privateKey.PublicKey, nil
}

func loadRSAPrivateKey(pemData []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err == nil {
		return privateKey, nil
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("not an RSA private key")
	}
	return rsaKey, nil
}

func loadRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPublicKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}

	return rsaPublicKey, nil
}
