package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	loader := NewLoader()

	cfg := loader.LoadFromEnv()
	if cfg.Auth.Mode != "delegated" {
		t.Errorf("Mode = %s, want delegated", cfg.Auth.Mode)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Level = %s, want info", cfg.Log.Level)
	}
	if cfg.Server.Transport != "stdio" {
		t.Errorf("Transport = %s, want stdio", cfg.Server.Transport)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
auth:
  mode: azure
  tenant_id: tenant
  client_id: client
  client_secret: secret
log:
  level: debug
  format: json
server:
  transport: http
  addr: ":9090"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := NewLoader().Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Auth.Mode != "azure" || cfg.Auth.TenantID != "tenant" || cfg.Auth.ClientSecret != "secret" {
		t.Errorf("unexpected auth config %+v", cfg.Auth)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}
	if cfg.Server.Transport != "http" || cfg.Server.Addr != ":9090" {
		t.Errorf("unexpected server config %+v", cfg.Server)
	}
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	if _, err := NewLoader().Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("TEST_SP_TOKEN", "env-token")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "auth:\n  access_token: ${TEST_SP_TOKEN}\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := NewLoader().Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Auth.AccessToken != "env-token" {
		t.Errorf("AccessToken = %s, want env-token", cfg.Auth.AccessToken)
	}
}

func TestEnvFallbacks(t *testing.T) {
	t.Setenv("SHAREPOINT_ACCESS_TOKEN", "from-env")
	t.Setenv("SHAREPOINT_CLIENT_ID", "client-env")

	cfg := NewLoader().LoadFromEnv()
	if cfg.Auth.AccessToken != "from-env" {
		t.Errorf("AccessToken = %s, want from-env", cfg.Auth.AccessToken)
	}
	if cfg.Auth.ClientID != "client-env" {
		t.Errorf("ClientID = %s, want client-env", cfg.Auth.ClientID)
	}
}

func TestExpandEnvDefault(t *testing.T) {
	got, err := expandEnv("value: ${UNSET_VAR_FOR_TEST:-fallback}")
	if err != nil {
		t.Fatalf("expandEnv() error = %v", err)
	}
	if got != "value: fallback" {
		t.Errorf("expandEnv() = %q", got)
	}
}

func TestExpandEnvRequired(t *testing.T) {
	_, err := expandEnv("value: ${UNSET_VAR_FOR_TEST:?token is required}")
	if err == nil {
		t.Fatal("expected error for missing required variable")
	}
	if !strings.Contains(err.Error(), "token is required") {
		t.Errorf("error = %v, want to mention the message", err)
	}
}

func TestExpandEnvSet(t *testing.T) {
	t.Setenv("SET_VAR_FOR_TEST", "present")

	got, err := expandEnv("a: ${SET_VAR_FOR_TEST} b: ${SET_VAR_FOR_TEST:-other}")
	if err != nil {
		t.Fatalf("expandEnv() error = %v", err)
	}
	if got != "a: present b: present" {
		t.Errorf("expandEnv() = %q", got)
	}
}
