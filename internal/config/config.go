package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/mlb-stats/internal/platform/logging"
	"github.com/spf13/viper"
)

// ConfigFileEnv names an optional YAML file whose keys mirror the environment variables.
const ConfigFileEnv = "MLB_STATS_CONFIG"

// Config stores runtime configuration for the collector.
type Config struct {
	AppEnv                        string
	ServiceName                   string
	ServiceVersion                string
	Revision                      string
	LogLevel                      logging.Level
	LogLevelSet                   bool
	LogFormat                     logging.Format
	DBURL                         string
	DBPath                        string
	DBDisablePreparedBinary       bool
	CacheEnabled                  bool
	CacheDir                      string
	CacheVerifyWorkers            int
	StatsAPIBaseURL               string
	StatsAPITimeout               time.Duration
	StatsAPIMaxRetries            int
	StatsAPIBackoffBase           time.Duration
	StatsAPIBackoffMax            time.Duration
	StatsAPIRequestDelay          time.Duration
	StatsAPICircuitEnabled        bool
	StatsAPICircuitFailureCount   int
	StatsAPICircuitOpenTimeout    time.Duration
	StatsAPICircuitHalfOpenMaxReq int
	UptraceEnabled                bool
	UptraceDSN                    string
	PyroscopeEnabled              bool
	PyroscopeServerAddress        string
	PyroscopeAppName              string
	PyroscopeAuthToken            string
	PyroscopeBasicAuthUser        string
	PyroscopeBasicAuthPassword    string
	PyroscopeUploadRate           time.Duration
}

// Load reads configuration from the environment, layered over the optional file named by
// MLB_STATS_CONFIG.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	if path := strings.TrimSpace(os.Getenv(ConfigFileEnv)); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read %s %q: %w", ConfigFileEnv, path, err)
		}
	}
	src := source{v: v}

	appEnv, err := parseAppEnv(src.str("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	logFormat, err := parseLogFormat(src.str("LOG_FORMAT", string(logging.FormatConsole)))
	if err != nil {
		return Config{}, err
	}

	dbDisablePreparedBinary, err := src.boolean("MLB_STATS_DB_DISABLE_PREPARED_BINARY_RESULT", false)
	if err != nil {
		return Config{}, err
	}

	cacheEnabled, err := src.boolean("MLB_STATS_CACHE_ENABLED", true)
	if err != nil {
		return Config{}, err
	}
	cacheVerifyWorkers, err := src.integer("MLB_STATS_CACHE_VERIFY_WORKERS", 8)
	if err != nil {
		return Config{}, err
	}
	if cacheVerifyWorkers < 1 {
		return Config{}, fmt.Errorf("MLB_STATS_CACHE_VERIFY_WORKERS must be >= 1")
	}

	statsAPIBaseURL := src.str("STATSAPI_BASE_URL", "https://statsapi.mlb.com/api/")
	statsAPITimeout, err := src.duration("STATSAPI_TIMEOUT", 30*time.Second)
	if err != nil {
		return Config{}, err
	}
	if statsAPITimeout <= 0 {
		return Config{}, fmt.Errorf("STATSAPI_TIMEOUT must be > 0")
	}
	statsAPIMaxRetries, err := src.integer("STATSAPI_MAX_RETRIES", 3)
	if err != nil {
		return Config{}, err
	}
	if statsAPIMaxRetries < 0 {
		return Config{}, fmt.Errorf("STATSAPI_MAX_RETRIES must be >= 0")
	}
	statsAPIBackoffBase, err := src.duration("STATSAPI_BACKOFF_BASE", time.Second)
	if err != nil {
		return Config{}, err
	}
	if statsAPIBackoffBase <= 0 {
		return Config{}, fmt.Errorf("STATSAPI_BACKOFF_BASE must be > 0")
	}
	statsAPIBackoffMax, err := src.duration("STATSAPI_BACKOFF_MAX", 30*time.Second)
	if err != nil {
		return Config{}, err
	}
	if statsAPIBackoffMax < statsAPIBackoffBase {
		return Config{}, fmt.Errorf("STATSAPI_BACKOFF_MAX must be >= STATSAPI_BACKOFF_BASE")
	}
	statsAPIRequestDelay, err := src.duration("STATSAPI_REQUEST_DELAY", 500*time.Millisecond)
	if err != nil {
		return Config{}, err
	}
	if statsAPIRequestDelay < 0 {
		return Config{}, fmt.Errorf("STATSAPI_REQUEST_DELAY must be >= 0")
	}

	statsAPICircuitEnabled, err := src.boolean("STATSAPI_CIRCUIT_ENABLED", true)
	if err != nil {
		return Config{}, err
	}
	statsAPICircuitFailureCount, err := src.integer("STATSAPI_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, err
	}
	if statsAPICircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("STATSAPI_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	statsAPICircuitOpenTimeout, err := src.duration("STATSAPI_CIRCUIT_OPEN_TIMEOUT", 30*time.Second)
	if err != nil {
		return Config{}, err
	}
	if statsAPICircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("STATSAPI_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	statsAPICircuitHalfOpenMaxReq, err := src.integer("STATSAPI_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, err
	}
	if statsAPICircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("STATSAPI_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	uptraceEnabled, err := src.boolean("UPTRACE_ENABLED", false)
	if err != nil {
		return Config{}, err
	}
	uptraceDSN := src.str("UPTRACE_DSN", "")
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(src.str("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := src.boolean("PYROSCOPE_ENABLED", false)
	if err != nil {
		return Config{}, err
	}
	pyroscopeServerAddress := src.str("PYROSCOPE_SERVER_ADDRESS", "")
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := src.duration("PYROSCOPE_UPLOAD_RATE", 15*time.Second)
	if err != nil {
		return Config{}, err
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	rawLevel := src.str("LOG_LEVEL", "")
	cfg := Config{
		AppEnv:                        appEnv,
		ServiceName:                   src.str("APP_SERVICE_NAME", "mlb-stats"),
		ServiceVersion:                src.str("APP_SERVICE_VERSION", "0.1.0"),
		Revision:                      src.str("APP_REVISION", ""),
		LogLevel:                      logging.ParseLevel(rawLevel),
		LogLevelSet:                   rawLevel != "",
		LogFormat:                     logFormat,
		DBURL:                         src.str("MLB_STATS_DB_URL", ""),
		DBPath:                        src.str("MLB_STATS_DB_PATH", "./data/mlb_stats.db"),
		DBDisablePreparedBinary:       dbDisablePreparedBinary,
		CacheEnabled:                  cacheEnabled,
		CacheDir:                      src.str("MLB_STATS_CACHE_DIR", "./cache"),
		CacheVerifyWorkers:            cacheVerifyWorkers,
		StatsAPIBaseURL:               statsAPIBaseURL,
		StatsAPITimeout:               statsAPITimeout,
		StatsAPIMaxRetries:            statsAPIMaxRetries,
		StatsAPIBackoffBase:           statsAPIBackoffBase,
		StatsAPIBackoffMax:            statsAPIBackoffMax,
		StatsAPIRequestDelay:          statsAPIRequestDelay,
		StatsAPICircuitEnabled:        statsAPICircuitEnabled,
		StatsAPICircuitFailureCount:   statsAPICircuitFailureCount,
		StatsAPICircuitOpenTimeout:    statsAPICircuitOpenTimeout,
		StatsAPICircuitHalfOpenMaxReq: statsAPICircuitHalfOpenMaxReq,
		UptraceEnabled:                uptraceEnabled,
		UptraceDSN:                    uptraceDSN,
		PyroscopeEnabled:              pyroscopeEnabled,
		PyroscopeServerAddress:        pyroscopeServerAddress,
		PyroscopeAuthToken:            src.str("PYROSCOPE_AUTH_TOKEN", ""),
		PyroscopeBasicAuthUser:        src.str("PYROSCOPE_BASIC_AUTH_USER", ""),
		PyroscopeBasicAuthPassword:    src.str("PYROSCOPE_BASIC_AUTH_PASSWORD", ""),
		PyroscopeUploadRate:           pyroscopeUploadRate,
	}

	cfg.PyroscopeAppName = src.str("PYROSCOPE_APP_NAME", cfg.ServiceName)

	return cfg, nil
}

// source reads keys through viper so a config file and the environment share one namespace.
type source struct {
	v *viper.Viper
}

func (s source) str(key, fallback string) string {
	value := strings.TrimSpace(s.v.GetString(key))
	if value == "" {
		return fallback
	}
	return value
}

func (s source) boolean(key string, fallback bool) (bool, error) {
	raw := s.str(key, "")
	if raw == "" {
		return fallback, nil
	}
	out, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return out, nil
}

func (s source) integer(key string, fallback int) (int, error) {
	raw := s.str(key, "")
	if raw == "" {
		return fallback, nil
	}
	out, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return out, nil
}

func (s source) duration(key string, fallback time.Duration) (time.Duration, error) {
	raw := s.str(key, "")
	if raw == "" {
		return fallback, nil
	}
	out, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return out, nil
}

func parseLogFormat(v string) (logging.Format, error) {
	switch logging.Format(strings.ToLower(strings.TrimSpace(v))) {
	case logging.FormatJSON:
		return logging.FormatJSON, nil
	case logging.FormatConsole:
		return logging.FormatConsole, nil
	default:
		return "", fmt.Errorf("invalid LOG_FORMAT %q: valid values are %s, %s", v, logging.FormatJSON, logging.FormatConsole)
	}
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
