package n8nctl

import (
	"fmt"
)

// Provisioner runs the convergence steps that bring a host from an unknown
// state to a running n8n stack. Every step is safe to repeat; a failed run
// is repaired by running again, not rolled back.
type Provisioner struct {
	cfg   Config
	paths Paths
	run   Runner

	apt     Apt
	sysd    Systemctl
	compose Compose
	nginx   Nginx
	certbot Certbot
	ufw     Ufw

	tlsSkipped bool
}

func NewProvisioner(cfg Config, paths Paths, run Runner) *Provisioner {
	return &Provisioner{
		cfg:     cfg,
		paths:   paths,
		run:     run,
		apt:     Apt{run: run},
		sysd:    Systemctl{run: run},
		compose: NewCompose(run, paths.DeployDir),
		nginx:   Nginx{run: run},
		certbot: Certbot{run: run},
		ufw:     Ufw{run: run},
	}
}

// Step is one named convergence operation, exposed so the setup wizard can
// drive the same pipeline with per-step progress.
type Step struct {
	Label string
	Run   func() error
}

// Steps returns the provisioning pipeline in its fixed order.
func (p *Provisioner) Steps() []Step {
	return []Step{
		{Label: "Preparing host packages", Run: p.PrepareHost},
		{Label: "Adjusting firewall", Run: p.AdjustFirewall},
		{Label: "Staging deployment directory", Run: p.StageStack},
		{Label: "Starting container stack", Run: p.DeployStack},
		{Label: "Configuring nginx", Run: p.ConfigureProxy},
		{Label: "Registering boot unit", Run: p.RegisterBootUnit},
	}
}

// Up runs the full pipeline and prints a summary.
func (p *Provisioner) Up() error {
	for _, step := range p.Steps() {
		if err := step.Run(); err != nil {
			return fmt.Errorf("%s: %w", step.Label, err)
		}
	}
	fmt.Print(p.Summary())
	return nil
}

// Summary describes where the deployed service is reachable.
func (p *Provisioner) Summary() string {
	scheme := "http"
	host := p.cfg.Domain
	if host == "" {
		host = "<server-ip>"
	}
	if p.cfg.EnableTLS {
		scheme = "https"
	}

	s := "\nn8n is up.\n"
	s += fmt.Sprintf("  URL:            %s://%s/\n", scheme, host)
	s += fmt.Sprintf("  Deployment dir: %s\n", p.paths.DeployDir)
	s += fmt.Sprintf("  Boot unit:      %s\n", bootUnitName)
	if p.tlsSkipped {
		s += "  TLS:            skipped (domain or email not configured)\n"
	}
	if p.cfg.WithRedis {
		s += "  Queue backend:  redis\n"
	}
	s += "\nnext: n8nctl status\n"
	return s
}
