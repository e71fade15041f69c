package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader loads connector configuration from YAML files.
type Loader struct {
	// ExpandEnv enables ${VAR} expansion in the file contents.
	ExpandEnv bool
}

// NewLoader creates a loader with default settings.
func NewLoader() *Loader {
	return &Loader{ExpandEnv: true}
}

// Load reads a YAML configuration file, expands environment references, and
// merges it over the defaults. Environment credentials fill any auth fields
// the file leaves empty.
func (l *Loader) Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- path is operator-supplied
		if err != nil {
			return cfg, fmt.Errorf("reading config file: %w", err)
		}

		text := string(data)
		if l.ExpandEnv {
			text, err = expandEnv(text)
			if err != nil {
				return cfg, err
			}
		}

		if err := yaml.Unmarshal([]byte(text), &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// LoadFromEnv builds a configuration from defaults and the environment only.
func (l *Loader) LoadFromEnv() Config {
	cfg := Default()
	applyEnv(&cfg)
	return cfg
}

// applyEnv fills empty auth fields from well-known environment variables.
func applyEnv(cfg *Config) {
	setIfEmpty(&cfg.Auth.AccessToken, "SHAREPOINT_ACCESS_TOKEN")
	setIfEmpty(&cfg.Auth.RefreshToken, "SHAREPOINT_REFRESH_TOKEN")
	setIfEmpty(&cfg.Auth.ClientID, "SHAREPOINT_CLIENT_ID")
	setIfEmpty(&cfg.Auth.TenantID, "AZURE_TENANT_ID")
	setIfEmpty(&cfg.Auth.ClientSecret, "AZURE_CLIENT_SECRET")
}

func setIfEmpty(dst *string, env string) {
	if *dst == "" {
		*dst = os.Getenv(env)
	}
}
