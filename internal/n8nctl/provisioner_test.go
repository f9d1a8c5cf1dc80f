package n8nctl

import (
	"errors"
	"strings"
	"testing"
)

func TestUpRunsStepsInOrder(t *testing.T) {
	cfg := testConfig(t)
	run := newFakeRunner()
	p := NewProvisioner(cfg, testPaths(t), run)

	if err := p.Up(); err != nil {
		t.Fatal(err)
	}

	update := run.indexOf("apt-get update")
	pull := run.indexOf("docker compose")
	verify := run.indexOf("nginx -t")
	reload := run.indexOf("systemctl daemon-reload")
	if update < 0 || pull < 0 || verify < 0 || reload < 0 {
		t.Fatalf("pipeline skipped a phase: %v", run.cmds)
	}
	if !(update < pull && pull < verify && verify < reload) {
		t.Errorf("phases ran out of order: %v", run.cmds)
	}
}

func TestUpStopsAtFirstFailingStep(t *testing.T) {
	cfg := testConfig(t)
	run := newFakeRunner()
	run.fail["apt-get update"] = errors.New("mirror unreachable")
	p := NewProvisioner(cfg, testPaths(t), run)

	err := p.Up()
	if err == nil {
		t.Fatal("expected failure")
	}
	if !strings.Contains(err.Error(), "Preparing host packages") {
		t.Errorf("error does not name the failing step: %v", err)
	}
	if run.ran("docker compose") {
		t.Error("later steps must not run after a fatal failure")
	}
}

func TestStepsCoverFullPipeline(t *testing.T) {
	p := NewProvisioner(Config{}, testPaths(t), newFakeRunner())
	steps := p.Steps()
	if len(steps) != 6 {
		t.Fatalf("len(steps) = %d, want 6", len(steps))
	}
	if steps[0].Label != "Preparing host packages" {
		t.Errorf("first step = %q", steps[0].Label)
	}
	if steps[len(steps)-1].Label != "Registering boot unit" {
		t.Errorf("last step = %q", steps[len(steps)-1].Label)
	}
}

func TestSummaryReflectsConfig(t *testing.T) {
	paths := testPaths(t)

	p := NewProvisioner(Config{Domain: "n8n.example.com", EnableTLS: true, WithRedis: true}, paths, newFakeRunner())
	s := p.Summary()
	if !strings.Contains(s, "https://n8n.example.com/") {
		t.Errorf("summary URL wrong:\n%s", s)
	}
	if !strings.Contains(s, "redis") {
		t.Errorf("summary omits queue backend:\n%s", s)
	}

	p = NewProvisioner(Config{}, paths, newFakeRunner())
	p.tlsSkipped = true
	s = p.Summary()
	if !strings.Contains(s, "http://<server-ip>/") {
		t.Errorf("summary must fall back to the server IP:\n%s", s)
	}
	if !strings.Contains(s, "skipped") {
		t.Errorf("summary must mention the TLS downgrade:\n%s", s)
	}
}
