package config

import (
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := validateBaseURL("storage.base_url", c.Storage.BaseURL); err != nil {
		return err
	}
	if err := validateBaseURL("extractor.base_url", c.Extractor.BaseURL); err != nil {
		return err
	}

	if c.Storage.Bucket == "" {
		return fmt.Errorf("storage.bucket must not be empty")
	}

	if c.Analysis.MaxBatchSize <= 0 {
		return fmt.Errorf("analysis.max_batch_size must be > 0 (got %d)", c.Analysis.MaxBatchSize)
	}
	if c.Analysis.RequestsPerMinute <= 0 {
		return fmt.Errorf("analysis.requests_per_minute must be > 0 (got %d)", c.Analysis.RequestsPerMinute)
	}

	return nil
}

func validateBaseURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must be an http(s) URL (got %q)", field, raw)
	}
	return nil
}
