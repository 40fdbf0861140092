package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Catalog.validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Builder.validate(); err != nil {
		return fmt.Errorf("builder: %w", err)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate_limit: rps and burst must be > 0 when enabled")
	}

	return nil
}

func (c *CatalogConfig) validate() error {
	if strings.TrimSpace(c.CharactersSource) == "" {
		return fmt.Errorf("characters_source is required")
	}
	if strings.TrimSpace(c.PsychubesSource) == "" {
		return fmt.Errorf("psychubes_source is required")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be > 0 (got %v)", c.FetchTimeout)
	}
	if c.FetchRetries < 0 {
		return fmt.Errorf("fetch_retries must be >= 0 (got %d)", c.FetchRetries)
	}
	return nil
}

func (s *StorageConfig) validate() error {
	s.Backend = strings.ToLower(strings.TrimSpace(s.Backend))

	switch s.Backend {
	case BackendMemory:
	case BackendSQLite:
		if s.SQLite.Path == "" {
			return fmt.Errorf("sqlite.path is required for the sqlite backend")
		}
	case BackendPostgres:
		if s.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres backend")
		}
		if s.Database.MaxConns < s.Database.MinConns {
			return fmt.Errorf("database.max_conns (%d) must be >= min_conns (%d)", s.Database.MaxConns, s.Database.MinConns)
		}
	case BackendRedis:
		if s.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown backend %q", s.Backend)
	}
	return nil
}

func (b *BuilderConfig) validate() error {
	if b.AutosaveDelay <= 0 {
		return fmt.Errorf("autosave_delay must be > 0 (got %v)", b.AutosaveDelay)
	}
	if b.SessionIdleTTL <= 0 {
		return fmt.Errorf("session_idle_ttl must be > 0 (got %v)", b.SessionIdleTTL)
	}
	if b.JanitorInterval <= 0 {
		return fmt.Errorf("janitor_interval must be > 0 (got %v)", b.JanitorInterval)
	}
	if b.MaxSessions <= 0 {
		return fmt.Errorf("max_sessions must be > 0 (got %d)", b.MaxSessions)
	}
	if b.MaxNameLength <= 0 || b.MaxDescriptionLength <= 0 {
		return fmt.Errorf("max_name_length and max_description_length must be > 0")
	}

	u, err := url.Parse(b.PublicBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("public_base_url must be an absolute URL (got %q)", b.PublicBaseURL)
	}
	return nil
}
