package n8nctl

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRegisterBootUnitWritesAndEnables(t *testing.T) {
	paths := testPaths(t)
	run := newFakeRunner()
	p := NewProvisioner(Config{}, paths, run)

	if err := p.RegisterBootUnit(); err != nil {
		t.Fatal(err)
	}

	unit, err := os.ReadFile(filepath.Join(paths.SystemdDir, bootUnitName))
	if err != nil {
		t.Fatal(err)
	}
	text := string(unit)
	if !strings.Contains(text, "RemainAfterExit=yes") {
		t.Error("unit must stay active after the one-shot start")
	}
	if !strings.Contains(text, "TimeoutStartSec=0") {
		t.Error("unit must not time out on slow image pulls")
	}
	if !strings.Contains(text, "WorkingDirectory="+paths.DeployDir) {
		t.Error("unit does not run from the deployment directory")
	}
	if !strings.Contains(text, "Requires=docker.service") {
		t.Error("unit does not depend on the container runtime")
	}
	if strings.Contains(text, "{{") {
		t.Error("placeholder tokens remain in rendered unit")
	}

	reload := run.indexOf("systemctl daemon-reload")
	enable := run.indexOf("systemctl enable " + bootUnitName)
	start := run.indexOf("systemctl start " + bootUnitName)
	if reload < 0 || enable < 0 || start < 0 {
		t.Fatalf("missing systemctl calls: %v", run.cmds)
	}
	if !(reload < enable && enable < start) {
		t.Errorf("systemctl calls out of order: %v", run.cmds)
	}
}

func TestRegisterBootUnitToleratesStartFailure(t *testing.T) {
	paths := testPaths(t)
	run := newFakeRunner()
	run.fail["systemctl start"] = errors.New("already starting")
	p := NewProvisioner(Config{}, paths, run)

	if err := p.RegisterBootUnit(); err != nil {
		t.Fatal("immediate start failure must be tolerated")
	}
	if !run.ran("systemctl enable " + bootUnitName) {
		t.Error("unit must still be enabled for future boots")
	}
}

func TestRegisterBootUnitEnableFailureIsFatal(t *testing.T) {
	paths := testPaths(t)
	run := newFakeRunner()
	run.fail["systemctl enable"] = errors.New("masked")
	p := NewProvisioner(Config{}, paths, run)

	if err := p.RegisterBootUnit(); err == nil {
		t.Fatal("enablement failure must be fatal")
	}
}
