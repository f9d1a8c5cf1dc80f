package n8nctl

import (
	"fmt"
)

// DeployStack pulls the latest images and starts (or updates in place) the
// full stack detached. Either failure is fatal; compose's own reconciliation
// is the recovery mechanism, not partial-start logic here.
func (p *Provisioner) DeployStack() error {
	if err := p.compose.Pull(); err != nil {
		return fmt.Errorf("pull images: %w", err)
	}
	if err := p.compose.Up(); err != nil {
		return fmt.Errorf("start stack: %w", err)
	}
	return nil
}
