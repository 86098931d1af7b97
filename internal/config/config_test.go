package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const fileBody = `
server:
  port: "9090"
provider:
  base_url: https://billing.example.com/api/
  subscription_id: sub-1
  user_id: user-1
  sdp_id: sdp-1
  username: alice
  password: from-file
  timeout_seconds: 5
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(fileBody), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	cfg, err := Load(writeConfig(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Provider.Username != "alice" || cfg.Provider.Password != "from-file" {
		t.Errorf("credentials not loaded from file")
	}
	if cfg.Provider.Timeout() != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", cfg.Provider.Timeout())
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("PROVIDER_PASSWORD", "from-env")
	t.Setenv("API_PORT", "7070")

	cfg, err := Load(writeConfig(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Provider.Password != "from-env" {
		t.Errorf("password = %q, env should win over file", cfg.Provider.Password)
	}
	if cfg.Server.Port != "7070" {
		t.Errorf("port = %q, env should win over file", cfg.Server.Port)
	}
}

func TestLoadRejectsIncompleteConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("provider:\n  base_url: https://x/\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("expected validation error for missing provider fields")
	}
}

func TestTimeoutDefault(t *testing.T) {
	p := ProviderConfig{}
	if p.Timeout() != 15*time.Second {
		t.Errorf("default timeout = %v, want 15s", p.Timeout())
	}
}
