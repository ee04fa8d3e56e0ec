package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Auth.validate(); err != nil {
		return err
	}

	if err := c.Upload.validate(); err != nil {
		return fmt.Errorf("upload: %w", err)
	}

	if c.Catalog.CacheTTL < 0 {
		return fmt.Errorf("catalog.cache_ttl must be >= 0 (got %v)", c.Catalog.CacheTTL)
	}

	if c.Sweeper.MinAge <= 0 {
		return fmt.Errorf("sweeper.min_age must be > 0 (got %v)", c.Sweeper.MinAge)
	}

	if c.RateLimit.PublicPerMinute <= 0 || c.RateLimit.AdminPerMinute <= 0 {
		return fmt.Errorf("rate_limit: per-minute limits must be > 0")
	}

	return nil
}

func (a *AuthConfig) validate() error {
	if len(a.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(a.JWTSecret))
	}
	if a.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", a.AccessTokenTTL)
	}
	return nil
}

func (u *UploadConfig) validate() error {
	if strings.TrimSpace(u.Dir) == "" {
		return fmt.Errorf("dir is required")
	}
	if !strings.HasPrefix(u.URLPrefix, "/") || u.URLPrefix == "/" {
		return fmt.Errorf("url_prefix must start with / and not be the root (got %q)", u.URLPrefix)
	}
	if u.PublicBaseURL != "" {
		parsed, err := url.Parse(u.PublicBaseURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("public_base_url must be an absolute URL (got %q)", u.PublicBaseURL)
		}
	}
	if u.MaxBytes <= 0 {
		return fmt.Errorf("max_bytes must be > 0 (got %d)", u.MaxBytes)
	}
	if u.MaxImageSide < 0 {
		return fmt.Errorf("max_image_side must be >= 0 (got %d)", u.MaxImageSide)
	}
	if len(u.AllowedTypeList()) == 0 {
		return fmt.Errorf("allowed_types must list at least one MIME type")
	}
	return nil
}
