package n8nctl

import (
	"github.com/roey132/n8n-one-click-setup/internal/logger"
)

// AdjustFirewall opens the proxy's web ports, but only when a firewall
// manager is installed and already active. A dormant firewall is never
// enabled: that is the operator's call, not ours. Rule failures are
// best-effort and never fail the run.
func (p *Provisioner) AdjustFirewall() error {
	if !p.ufw.Installed() {
		logger.Debugf("ufw not installed, skipping firewall adjustment")
		return nil
	}
	if !p.ufw.Active() {
		logger.Infof("ufw inactive, leaving firewall untouched")
		return nil
	}
	if err := p.ufw.Allow("Nginx Full"); err != nil {
		logger.Warnf("could not open web ports via ufw: %v", err)
	}
	return nil
}
