package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Upload    UploadConfig    `yaml:"upload"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Sweeper   SweeperConfig   `yaml:"sweeper"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
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
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// AuthConfig holds JWT settings for the admin API.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"cultour"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"12h"`
}

// UploadConfig holds asset storage settings.
type UploadConfig struct {
	Dir           string `yaml:"dir"             env:"UPLOAD_DIR"             env-default:"./uploads"`
	URLPrefix     string `yaml:"url_prefix"      env:"UPLOAD_URL_PREFIX"      env-default:"/uploads"`
	PublicBaseURL string `yaml:"public_base_url" env:"UPLOAD_PUBLIC_BASE_URL" env-default:""`
	MaxBytes      int64  `yaml:"max_bytes"       env:"UPLOAD_MAX_BYTES"       env-default:"5242880"`
	MaxImageSide  int    `yaml:"max_image_side"  env:"UPLOAD_MAX_IMAGE_SIDE"  env-default:"1600"`
	AllowedTypes  string `yaml:"allowed_types"   env:"UPLOAD_ALLOWED_TYPES"   env-default:"image/jpeg,image/png,image/gif,image/webp"`
}

// BaseURL returns the prefix public asset URLs are built from.
// PublicBaseURL wins when set, e.g. a CDN in front of the static server.
func (c UploadConfig) BaseURL() string {
	if c.PublicBaseURL != "" {
		return c.PublicBaseURL
	}
	return c.URLPrefix
}

// AllowedTypeList returns the MIME allow-list as a slice.
func (c UploadConfig) AllowedTypeList() []string {
	var out []string
	for _, t := range strings.Split(c.AllowedTypes, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// CatalogConfig holds public read API settings.
type CatalogConfig struct {
	// CacheTTL of 0 disables list caching. Invalidation is per process, so
	// enable it only with a single API instance.
	CacheTTL time.Duration `yaml:"cache_ttl" env:"CATALOG_CACHE_TTL" env-default:"0s"`
}

// SweeperConfig holds orphaned-asset sweeper settings.
type SweeperConfig struct {
	MinAge time.Duration `yaml:"min_age" env:"SWEEPER_MIN_AGE" env-default:"1h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits.
type RateLimitConfig struct {
	PublicPerMinute int           `yaml:"public_per_minute" env:"RATE_LIMIT_PUBLIC_PER_MINUTE" env-default:"300"`
	AdminPerMinute  int           `yaml:"admin_per_minute"  env:"RATE_LIMIT_ADMIN_PER_MINUTE"  env-default:"60"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATE_LIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
}
