package n8nctl

import (
	"fmt"
	"path/filepath"
	"strings"
)

// The external tools this workflow drives are consumed strictly through
// their command-line contracts. Each gets a small typed wrapper over a
// Runner so provisioning steps read as intent rather than argv plumbing.

// Apt drives the system package manager. Install verbs are idempotent on
// Debian/Ubuntu: re-installing an installed package is a no-op.
type Apt struct {
	run Runner
}

func (a Apt) Update() error {
	if err := a.run.Run("apt-get", "update", "-q"); err != nil {
		return fmt.Errorf("apt-get update: %w", err)
	}
	return nil
}

func (a Apt) Install(pkgs ...string) error {
	args := append([]string{"install", "-y", "-q"}, pkgs...)
	if err := a.run.Run("apt-get", args...); err != nil {
		return fmt.Errorf("apt-get install %s: %w", strings.Join(pkgs, " "), err)
	}
	return nil
}

// Systemctl wraps the service manager.
type Systemctl struct {
	run Runner
}

func (s Systemctl) DaemonReload() error {
	return s.run.Run("systemctl", "daemon-reload")
}

func (s Systemctl) Enable(unit string) error {
	return s.run.Run("systemctl", "enable", unit)
}

// EnableNow enables a unit for future boots and starts it immediately.
func (s Systemctl) EnableNow(unit string) error {
	return s.run.Run("systemctl", "enable", "--now", unit)
}

func (s Systemctl) Start(unit string) error {
	return s.run.Run("systemctl", "start", unit)
}

func (s Systemctl) Reload(unit string) error {
	return s.run.Run("systemctl", "reload", unit)
}

// Compose wraps the container runtime's compose plugin for one deployment
// directory.
type Compose struct {
	run Runner
	dir string
}

func NewCompose(run Runner, dir string) Compose {
	return Compose{run: run, dir: dir}
}

func (c Compose) baseArgs() []string {
	return []string{
		"compose",
		"-f", filepath.Join(c.dir, "docker-compose.yml"),
		"--env-file", filepath.Join(c.dir, defaultEnvFile),
		"-p", "n8n",
	}
}

func (c Compose) Pull() error {
	return c.run.Run("docker", append(c.baseArgs(), "pull")...)
}

func (c Compose) Up() error {
	return c.run.Run("docker", append(c.baseArgs(), "up", "-d", "--remove-orphans")...)
}

func (c Compose) Down() error {
	return c.run.Run("docker", append(c.baseArgs(), "down")...)
}

func (c Compose) PS() (string, error) {
	return c.run.Output("docker", append(c.baseArgs(), "ps")...)
}

// Nginx wraps the proxy server binary.
type Nginx struct {
	run Runner
}

// TestConfig validates the full nginx configuration. A failure here must
// abort the run: a broken config is never reloaded into production.
func (n Nginx) TestConfig() error {
	if err := n.run.Run("nginx", "-t"); err != nil {
		return fmt.Errorf("nginx configuration validation failed: %w", err)
	}
	return nil
}

// Certbot wraps the certificate issuance client.
type Certbot struct {
	run Runner
}

// Issue obtains a certificate for domain non-interactively and rewrites the
// site for redirect-to-HTTPS.
func (cb Certbot) Issue(domain, email string) error {
	return cb.run.Run("certbot", "--nginx",
		"-d", domain,
		"-m", email,
		"--non-interactive", "--agree-tos", "--redirect")
}

// Ufw wraps the firewall manager.
type Ufw struct {
	run Runner
}

func (u Ufw) Installed() bool {
	_, err := u.run.LookPath("ufw")
	return err == nil
}

func (u Ufw) Active() bool {
	out, err := u.run.Output("ufw", "status")
	if err != nil {
		return false
	}
	return strings.Contains(out, "Status: active")
}

func (u Ufw) Allow(rule string) error {
	return u.run.Run("ufw", "allow", rule)
}
