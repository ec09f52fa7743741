package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/cricket-scores/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                       string `validate:"oneof=dev stage prod"`
	ServiceName                  string `validate:"required"`
	ServiceVersion               string
	LogLevel                     logging.Level
	CricAPIBaseURL               string `validate:"required,url"`
	CricAPIKey                   string `validate:"required"`
	CricAPITimeout               time.Duration
	CricAPIMaxRetries            int `validate:"gte=0,lte=5"`
	CricAPIPageSize              int `validate:"gte=1"`
	CricAPIMaxPages              int `validate:"gte=1"`
	CricAPICacheTTL              time.Duration
	CricAPICircuitEnabled        bool
	CricAPICircuitFailureCount   int `validate:"gte=1"`
	CricAPICircuitOpenTimeout    time.Duration
	CricAPICircuitHalfOpenMaxReq int `validate:"gte=1"`
	RefreshInterval              time.Duration
	BoardMaxWorkers              int `validate:"gte=1,lte=64"`
	UptraceEnabled               bool
	UptraceDSN                   string `validate:"required_if=UptraceEnabled true"`
	PyroscopeEnabled             bool
	PyroscopeServerAddress       string `validate:"required_if=PyroscopeEnabled true"`
	PyroscopeAppName             string `validate:"required_if=PyroscopeEnabled true"`
	PyroscopeAuthToken           string
	PyroscopeBasicAuthUser       string
	PyroscopeBasicAuthPassword   string
	PyroscopeUploadRate          time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cricAPITimeout, err := getEnvAsDuration("CRICAPI_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}
	cricAPIMaxRetries, err := getEnvAsInt("CRICAPI_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICAPI_MAX_RETRIES: %w", err)
	}
	cricAPIPageSize, err := getEnvAsInt("CRICAPI_PAGE_SIZE", 25)
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICAPI_PAGE_SIZE: %w", err)
	}
	cricAPIMaxPages, err := getEnvAsInt("CRICAPI_MAX_PAGES", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICAPI_MAX_PAGES: %w", err)
	}
	cricAPICacheTTL, err := getEnvAsDuration("CRICAPI_CACHE_TTL", "5m")
	if err != nil {
		return Config{}, err
	}

	circuitEnabled, err := strconv.ParseBool(getEnv("CRICAPI_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICAPI_CIRCUIT_ENABLED: %w", err)
	}
	circuitFailureCount, err := getEnvAsInt("CRICAPI_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICAPI_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	circuitOpenTimeout, err := getEnvAsDuration("CRICAPI_CIRCUIT_OPEN_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}
	circuitHalfOpenMaxReq, err := getEnvAsInt("CRICAPI_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICAPI_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}

	refreshInterval, err := getEnvAsDuration("REFRESH_INTERVAL", "60s")
	if err != nil {
		return Config{}, err
	}
	boardMaxWorkers, err := getEnvAsInt("BOARD_MAX_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse BOARD_MAX_WORKERS: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeUploadRate, err := getEnvAsDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                       appEnv,
		ServiceName:                  strings.TrimSpace(getEnv("APP_SERVICE_NAME", "cricketd")),
		ServiceVersion:               getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:                     logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		CricAPIBaseURL:               strings.TrimRight(strings.TrimSpace(getEnv("CRICAPI_BASE_URL", "https://api.cricapi.com/v1")), "/"),
		CricAPIKey:                   strings.TrimSpace(getEnv("CRICAPI_KEY", "")),
		CricAPITimeout:               cricAPITimeout,
		CricAPIMaxRetries:            cricAPIMaxRetries,
		CricAPIPageSize:              cricAPIPageSize,
		CricAPIMaxPages:              cricAPIMaxPages,
		CricAPICacheTTL:              cricAPICacheTTL,
		CricAPICircuitEnabled:        circuitEnabled,
		CricAPICircuitFailureCount:   circuitFailureCount,
		CricAPICircuitOpenTimeout:    circuitOpenTimeout,
		CricAPICircuitHalfOpenMaxReq: circuitHalfOpenMaxReq,
		RefreshInterval:              refreshInterval,
		BoardMaxWorkers:              boardMaxWorkers,
		UptraceEnabled:               uptraceEnabled,
		UptraceDSN:                   uptraceDSN,
		PyroscopeEnabled:             pyroscopeEnabled,
		PyroscopeServerAddress:       strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", "")),
		PyroscopeAuthToken:           strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:       strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:   strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:          pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

// getEnvAsDuration parses a positive duration.
func getEnvAsDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(strings.TrimSpace(getEnv(key, fallback)))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
