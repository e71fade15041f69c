// Package config provides configuration loading for the connector.
package config

// Config is the root connector configuration.
type Config struct {
	Auth   AuthConfig   `yaml:"auth"`
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
}

// AuthConfig selects and configures the credential mode.
type AuthConfig struct {
	// Mode is "delegated" (default) or "azure".
	Mode string `yaml:"mode"`

	// Delegated token credentials.
	AccessToken  string `yaml:"access_token"`
	RefreshToken string `yaml:"refresh_token"`
	ClientID     string `yaml:"client_id"`

	// Azure AD app credentials (mode "azure").
	TenantID     string `yaml:"tenant_id"`
	ClientSecret string `yaml:"client_secret"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ServerConfig configures the MCP transport.
type ServerConfig struct {
	// Transport is "stdio" (default) or "http".
	Transport string `yaml:"transport"`

	// Addr is the listen address for the http transport.
	Addr string `yaml:"addr"`
}

// Default returns a configuration with sensible defaults.
func Default() Config {
	return Config{
		Auth: AuthConfig{
			Mode: "delegated",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Server: ServerConfig{
			Transport: "stdio",
			Addr:      ":8080",
		},
	}
}
