package n8nctl

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/roey132/n8n-one-click-setup/internal/logger"
)

const bootUnitName = "n8n-stack.service"

// RegisterBootUnit installs the systemd unit that restarts the stack after a
// reboot, reloads the unit database, enables the unit, and tries to start it
// once. The immediate start is allowed to fail (DeployStack already started
// the stack); enablement is not.
func (p *Provisioner) RegisterBootUnit() error {
	text, err := renderTemplateFile(
		filepath.Join(p.paths.Templates, "systemd", bootUnitName),
		map[string]string{placeholderDeployDir: p.paths.DeployDir})
	if err != nil {
		return err
	}

	if err := ensureDir(p.paths.SystemdDir, 0o755); err != nil {
		return err
	}
	target := filepath.Join(p.paths.SystemdDir, bootUnitName)
	if err := os.WriteFile(target, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write boot unit: %w", err)
	}

	if err := p.sysd.DaemonReload(); err != nil {
		return fmt.Errorf("systemctl daemon-reload: %w", err)
	}
	if err := p.sysd.Enable(bootUnitName); err != nil {
		return fmt.Errorf("enable boot unit: %w", err)
	}
	if err := p.sysd.Start(bootUnitName); err != nil {
		logger.Warnf("boot unit did not start immediately (stack is already up): %v", err)
	}
	return nil
}
