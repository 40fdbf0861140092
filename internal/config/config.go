package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Storage   StorageConfig   `yaml:"storage"`
	Builder   BuilderConfig   `yaml:"builder"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Profile-Id,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CatalogConfig describes where the two entity lists come from.
// A source is either a local path or an http(s) URL; the format follows the extension.
type CatalogConfig struct {
	CharactersSource string        `yaml:"characters_source" env:"CATALOG_CHARACTERS_SOURCE" env-default:"./data/characters.json"`
	PsychubesSource  string        `yaml:"psychubes_source"  env:"CATALOG_PSYCHUBES_SOURCE"  env-default:"./data/psychubes.json"`
	Watch            bool          `yaml:"watch"             env:"CATALOG_WATCH"             env-default:"false"`
	FetchTimeout     time.Duration `yaml:"fetch_timeout"     env:"CATALOG_FETCH_TIMEOUT"     env-default:"10s"`
	FetchRetries     int           `yaml:"fetch_retries"     env:"CATALOG_FETCH_RETRIES"     env-default:"3"`
}

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// StorageConfig selects the key-value backend behind the persistence gateway.
type StorageConfig struct {
	Backend  string         `yaml:"backend"  env:"STORAGE_BACKEND" env-default:"sqlite"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
}

// SQLiteConfig holds embedded database settings.
type SQLiteConfig struct {
	Path string `yaml:"path" env:"SQLITE_PATH" env-default:"./teambuilder.db"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr      string `yaml:"addr"       env:"REDIS_ADDR"       env-default:"localhost:6379"`
	Password  string `yaml:"password"   env:"REDIS_PASSWORD"`
	DB        int    `yaml:"db"         env:"REDIS_DB"         env-default:"0"`
	KeyPrefix string `yaml:"key_prefix" env:"REDIS_KEY_PREFIX" env-default:""`
}

// BuilderConfig holds builder session settings.
type BuilderConfig struct {
	AutosaveDelay        time.Duration `yaml:"autosave_delay"         env:"BUILDER_AUTOSAVE_DELAY"         env-default:"1500ms"`
	SessionIdleTTL       time.Duration `yaml:"session_idle_ttl"       env:"BUILDER_SESSION_IDLE_TTL"       env-default:"30m"`
	JanitorInterval      time.Duration `yaml:"janitor_interval"       env:"BUILDER_JANITOR_INTERVAL"       env-default:"1m"`
	MaxSessions          int           `yaml:"max_sessions"           env:"BUILDER_MAX_SESSIONS"           env-default:"1000"`
	PublicBaseURL        string        `yaml:"public_base_url"        env:"BUILDER_PUBLIC_BASE_URL"        env-default:"http://localhost:8080/"`
	MaxNameLength        int           `yaml:"max_name_length"        env:"BUILDER_MAX_NAME_LENGTH"        env-default:"100"`
	MaxDescriptionLength int           `yaml:"max_description_length" env:"BUILDER_MAX_DESCRIPTION_LENGTH" env-default:"500"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" env:"RATE_LIMIT_ENABLED" env-default:"true"`
	RPS     float64 `yaml:"rps"     env:"RATE_LIMIT_RPS"     env-default:"20"`
	Burst   int     `yaml:"burst"   env:"RATE_LIMIT_BURST"   env-default:"40"`
}

// TelemetryConfig holds OpenTelemetry metric export settings.
// An empty endpoint keeps the instruments in-process only.
type TelemetryConfig struct {
	OTLPEndpoint   string        `yaml:"otlp_endpoint"   env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Insecure       bool          `yaml:"insecure"        env:"OTEL_EXPORTER_OTLP_INSECURE" env-default:"true"`
	ExportInterval time.Duration `yaml:"export_interval" env:"TELEMETRY_EXPORT_INTERVAL"   env-default:"30s"`
	ServiceName    string        `yaml:"service_name"    env:"OTEL_SERVICE_NAME"           env-default:"teambuilder"`
}
