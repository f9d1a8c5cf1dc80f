package n8nctl

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/roey132/n8n-one-click-setup/internal/logger"
)

const siteName = "n8n"

// ConfigureProxy renders the nginx site from its template, activates it,
// removes the conflicting default site, validates the configuration, and
// reloads nginx. TLS issuance runs last and is best-effort: the service must
// stay reachable over plain HTTP when issuance fails.
func (p *Provisioner) ConfigureProxy() error {
	text, err := renderTemplateFile(
		filepath.Join(p.paths.Templates, "nginx", "n8n.conf"),
		map[string]string{
			placeholderDomain: p.cfg.ServerName(),
			placeholderPort:   p.cfg.Port,
		})
	if err != nil {
		return err
	}

	available := filepath.Join(p.paths.SitesAvailable, siteName)
	if err := ensureDir(p.paths.SitesAvailable, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(available, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write site config: %w", err)
	}

	if err := ensureDir(p.paths.SitesEnabled, 0o755); err != nil {
		return err
	}
	enabled := filepath.Join(p.paths.SitesEnabled, siteName)
	_ = os.Remove(enabled)
	if err := os.Symlink(available, enabled); err != nil {
		return fmt.Errorf("enable site: %w", err)
	}

	// The distribution default site catches all hosts on port 80 and would
	// shadow ours.
	_ = os.Remove(filepath.Join(p.paths.SitesEnabled, "default"))

	if err := p.nginx.TestConfig(); err != nil {
		return err
	}
	if err := p.sysd.Reload("nginx"); err != nil {
		return fmt.Errorf("reload nginx: %w", err)
	}

	if p.cfg.EnableTLS {
		logger.Infof("requesting TLS certificate for %s", p.cfg.Domain)
		if err := p.certbot.Issue(p.cfg.Domain, p.cfg.Email); err != nil {
			logger.Warnf("certificate issuance failed, serving plain HTTP: %v", err)
		}
	}
	return nil
}
