package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Storage   StorageConfig   `yaml:"storage"`
	Extractor ExtractorConfig `yaml:"extractor"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds bearer-token verification settings. Tokens are issued by
// the external identity provider and verified here with the shared secret.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"smartonix"`
}

// StorageConfig holds object storage settings. BaseURL points at the
// storage HTTP API; uploaded objects are publicly resolvable under it.
type StorageConfig struct {
	BaseURL    string        `yaml:"base_url"    env:"STORAGE_BASE_URL"    env-required:"true"`
	Bucket     string        `yaml:"bucket"      env:"STORAGE_BUCKET"      env-default:"item-photos"`
	ServiceKey string        `yaml:"service_key" env:"STORAGE_SERVICE_KEY" env-required:"true"`
	Timeout    time.Duration `yaml:"timeout"     env:"STORAGE_TIMEOUT"     env-default:"30s"`
}

// ExtractorConfig holds AI gateway settings for image analysis.
type ExtractorConfig struct {
	BaseURL string        `yaml:"base_url" env:"EXTRACTOR_BASE_URL" env-default:"https://ai.gateway.lovable.dev"`
	APIKey  string        `yaml:"api_key"  env:"EXTRACTOR_API_KEY"  env-required:"true"`
	Model   string        `yaml:"model"    env:"EXTRACTOR_MODEL"    env-default:"google/gemini-2.5-flash"`
	Timeout time.Duration `yaml:"timeout"  env:"EXTRACTOR_TIMEOUT"  env-default:"60s"`
}

// AnalysisConfig holds analysis orchestration settings.
type AnalysisConfig struct {
	MaxBatchSize       int `yaml:"max_batch_size"        env:"ANALYSIS_MAX_BATCH_SIZE"       env-default:"10"`
	RequestsPerMinute  int `yaml:"requests_per_minute"   env:"ANALYSIS_REQUESTS_PER_MINUTE"  env-default:"10"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings. The analysis endpoint is called from a
// browser client, so the default is wide open.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Authorization,Content-Type"`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"86400"`
}
