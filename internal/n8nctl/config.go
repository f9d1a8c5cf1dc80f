package n8nctl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultEnvFile     = ".env"
	exampleEnvFile     = ".env.example"
	defaultPort        = "5678"
	defaultImageTag    = "latest"
	defaultWebhookURL  = "http://localhost:5678/"
	defaultTimezone    = "UTC"
	defaultDeployDir   = "/opt/n8n"
	sitesAvailableDir  = "/etc/nginx/sites-available"
	sitesEnabledDir    = "/etc/nginx/sites-enabled"
	systemdUnitDir     = "/etc/systemd/system"

	// InsecureRedisPassword is the placeholder shipped in .env.example. It is
	// deliberately never rewritten; the run warns when it is still in use.
	InsecureRedisPassword = "insecure-change-me"
)

// Config is the resolved, immutable view of one environment file plus
// defaults. It is threaded into every provisioning step; nothing reads the
// process environment after load.
type Config struct {
	EnvFile       string
	Port          string
	ImageTag      string
	Domain        string
	EnableTLS     bool
	Email         string
	WebhookURL    string
	Timezone      string
	RedisPassword string
	WithRedis     bool
}

// ServerName is the nginx server_name directive value: the configured
// domain, or the catch-all token when no domain is set.
func (c Config) ServerName() string {
	if c.Domain == "" {
		return "_"
	}
	return c.Domain
}

// ResolveEnvFile picks the environment source in priority order: the
// explicit path, then ./.env, then ./.env.example.
func ResolveEnvFile(explicit string) (string, error) {
	return resolveEnvFile(".", explicit)
}

func resolveEnvFile(dir, explicit string) (string, error) {
	candidates := []string{}
	if explicit != "" {
		candidates = append(candidates, explicit)
	}
	candidates = append(candidates,
		filepath.Join(dir, defaultEnvFile),
		filepath.Join(dir, exampleEnvFile),
	)
	for _, c := range candidates {
		info, err := os.Stat(c)
		if err == nil && !info.IsDir() {
			return c, nil
		}
	}
	return "", fmt.Errorf("no environment file found (tried %s)", strings.Join(candidates, ", "))
}

// LoadConfig reads a KEY=value environment file and applies defaults for any
// recognized option that is unset. It never mutates the filesystem or the
// process environment.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	v.SetDefault("N8N_PORT", defaultPort)
	v.SetDefault("N8N_IMAGE_TAG", defaultImageTag)
	v.SetDefault("DOMAIN_NAME", "")
	v.SetDefault("ENABLE_TLS", false)
	v.SetDefault("SSL_EMAIL", "")
	v.SetDefault("WEBHOOK_URL", defaultWebhookURL)
	v.SetDefault("GENERIC_TIMEZONE", defaultTimezone)
	v.SetDefault("REDIS_PASSWORD", InsecureRedisPassword)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read environment file %s: %w", path, err)
	}

	cfg := Config{
		EnvFile:       path,
		Port:          strings.TrimSpace(v.GetString("N8N_PORT")),
		ImageTag:      strings.TrimSpace(v.GetString("N8N_IMAGE_TAG")),
		Domain:        strings.TrimSpace(v.GetString("DOMAIN_NAME")),
		EnableTLS:     v.GetBool("ENABLE_TLS"),
		Email:         strings.TrimSpace(v.GetString("SSL_EMAIL")),
		WebhookURL:    strings.TrimSpace(v.GetString("WEBHOOK_URL")),
		Timezone:      strings.TrimSpace(v.GetString("GENERIC_TIMEZONE")),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.ImageTag == "" {
		cfg.ImageTag = defaultImageTag
	}
	if cfg.WebhookURL == "" {
		cfg.WebhookURL = defaultWebhookURL
	}
	return cfg, nil
}

// Paths holds the host locations the workflow mutates. Tests point these at
// temporary directories.
type Paths struct {
	DeployDir      string
	SitesAvailable string
	SitesEnabled   string
	SystemdDir     string
	Templates      string
}

func DefaultPaths() Paths {
	return Paths{
		DeployDir:      defaultDeployDir,
		SitesAvailable: sitesAvailableDir,
		SitesEnabled:   sitesEnabledDir,
		SystemdDir:     systemdUnitDir,
		Templates:      FindTemplatesDir(),
	}
}
