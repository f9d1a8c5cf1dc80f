package n8nctl

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o640); err != nil {
		t.Fatal(err)
	}
}

func TestResolveEnvFilePriority(t *testing.T) {
	dir := t.TempDir()

	if _, err := resolveEnvFile(dir, ""); err == nil {
		t.Fatal("expected error when no environment source exists")
	}

	example := filepath.Join(dir, ".env.example")
	writeFile(t, example, "N8N_PORT=5678\n")
	got, err := resolveEnvFile(dir, "")
	if err != nil {
		t.Fatal(err)
	}
	if got != example {
		t.Fatalf("expected %s, got %s", example, got)
	}

	dotenv := filepath.Join(dir, ".env")
	writeFile(t, dotenv, "N8N_PORT=5678\n")
	got, err = resolveEnvFile(dir, "")
	if err != nil {
		t.Fatal(err)
	}
	if got != dotenv {
		t.Fatalf(".env should win over .env.example, got %s", got)
	}

	explicit := filepath.Join(dir, "custom.env")
	writeFile(t, explicit, "N8N_PORT=5678\n")
	got, err = resolveEnvFile(dir, explicit)
	if err != nil {
		t.Fatal(err)
	}
	if got != explicit {
		t.Fatalf("explicit path should win, got %s", got)
	}
}

func TestResolveEnvFileMissingExplicit(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), "N8N_PORT=5678\n")

	// A nonexistent explicit path falls through to the default file.
	got, err := resolveEnvFile(dir, filepath.Join(dir, "nope.env"))
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(dir, ".env") {
		t.Fatalf("expected fallback to .env, got %s", got)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, "DOMAIN_NAME=n8n.example.com\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != "5678" {
		t.Errorf("Port = %q, want default 5678", cfg.Port)
	}
	if cfg.ImageTag != "latest" {
		t.Errorf("ImageTag = %q, want default latest", cfg.ImageTag)
	}
	if cfg.Domain != "n8n.example.com" {
		t.Errorf("Domain = %q", cfg.Domain)
	}
	if cfg.EnableTLS {
		t.Error("EnableTLS should default to false")
	}
	if cfg.WebhookURL != "http://localhost:5678/" {
		t.Errorf("WebhookURL = %q, want loopback default", cfg.WebhookURL)
	}
	if cfg.RedisPassword != InsecureRedisPassword {
		t.Errorf("RedisPassword = %q, want the labeled placeholder", cfg.RedisPassword)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, `N8N_PORT=8080
N8N_IMAGE_TAG=1.64.0
DOMAIN_NAME=flows.example.com
ENABLE_TLS=true
SSL_EMAIL=ops@example.com
WEBHOOK_URL=https://flows.example.com/
REDIS_PASSWORD=s3cret
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != "8080" || cfg.ImageTag != "1.64.0" {
		t.Errorf("overrides not applied: port=%q tag=%q", cfg.Port, cfg.ImageTag)
	}
	if !cfg.EnableTLS {
		t.Error("ENABLE_TLS=true not applied")
	}
	if cfg.Email != "ops@example.com" {
		t.Errorf("Email = %q", cfg.Email)
	}
	if cfg.RedisPassword != "s3cret" {
		t.Errorf("RedisPassword = %q", cfg.RedisPassword)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestServerNameCatchAll(t *testing.T) {
	if got := (Config{}).ServerName(); got != "_" {
		t.Fatalf("empty domain should yield catch-all token, got %q", got)
	}
	if got := (Config{Domain: "n8n.example.com"}).ServerName(); got != "n8n.example.com" {
		t.Fatalf("got %q", got)
	}
}
