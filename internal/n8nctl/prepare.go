package n8nctl

import (
	"github.com/roey132/n8n-one-click-setup/internal/logger"
)

var basePackages = []string{"curl", "ca-certificates", "gnupg"}

// PrepareHost converges system packages and services: container runtime with
// its compose plugin, the proxy server, and (when TLS stays enabled) the
// certificate client. Already-installed tools are detected and skipped.
// Installation failures are fatal; nothing here is retried.
func (p *Provisioner) PrepareHost() error {
	if err := p.apt.Update(); err != nil {
		return err
	}
	if err := p.apt.Install(basePackages...); err != nil {
		return err
	}

	if _, err := p.run.LookPath("docker"); err != nil {
		logger.Infof("installing docker and the compose plugin")
		if err := p.apt.Install("docker.io", "docker-compose-plugin"); err != nil {
			return err
		}
	} else {
		logger.Infof("docker already installed, skipping")
	}
	if err := p.sysd.EnableNow("docker"); err != nil {
		return err
	}

	if _, err := p.run.LookPath("nginx"); err != nil {
		logger.Infof("installing nginx")
		if err := p.apt.Install("nginx"); err != nil {
			return err
		}
	} else {
		logger.Infof("nginx already installed, skipping")
	}
	if err := p.sysd.EnableNow("nginx"); err != nil {
		return err
	}

	p.downgradeTLSIfUnderconfigured()

	if p.cfg.EnableTLS {
		if err := p.apt.Install("certbot", "python3-certbot-nginx"); err != nil {
			return err
		}
	}
	return nil
}

// TLS needs both a domain and a contact email. When either is missing the
// run degrades to plain HTTP instead of failing: the base service must stay
// reachable.
func (p *Provisioner) downgradeTLSIfUnderconfigured() {
	if !p.cfg.EnableTLS {
		return
	}
	if p.cfg.Domain == "" || p.cfg.Email == "" {
		logger.Warnf("TLS requested but DOMAIN_NAME or SSL_EMAIL is empty; continuing without TLS")
		p.cfg.EnableTLS = false
		p.tlsSkipped = true
	}
}
