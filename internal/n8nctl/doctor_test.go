package n8nctl

import (
	"errors"
	"testing"
)

func checkByName(t *testing.T, results []CheckResult, name string) CheckResult {
	t.Helper()
	for _, r := range results {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("no check named %q in %v", name, results)
	return CheckResult{}
}

func TestRunChecksHealthyHost(t *testing.T) {
	run := newFakeRunner()
	results := runChecks(run, testPaths(t))

	for _, name := range []string{"docker binary", "docker compose plugin", "docker daemon", "nginx binary", "ports 80/443 free"} {
		if r := checkByName(t, results, name); !r.OK {
			t.Errorf("%s: %v", r.Name, r.Err)
		}
	}
}

func TestRunChecksReportsMissingDocker(t *testing.T) {
	run := newFakeRunner()
	run.missing["docker"] = true
	run.fail["docker info"] = errors.New("cannot connect to the docker daemon")

	results := runChecks(run, testPaths(t))
	if r := checkByName(t, results, "docker binary"); r.OK {
		t.Error("missing docker binary must be reported")
	}
	if r := checkByName(t, results, "docker daemon"); r.OK {
		t.Error("unreachable daemon must be reported")
	}
	if r := checkByName(t, results, "nginx binary"); !r.OK {
		t.Error("unrelated checks must still pass")
	}
}

func TestRunChecksFlagsBusyPorts(t *testing.T) {
	run := newFakeRunner()
	run.outputs["ss -ltn"] = "LISTEN 0 511 0.0.0.0:80 0.0.0.0:*\n"

	r := checkByName(t, runChecks(run, testPaths(t)), "ports 80/443 free")
	if r.OK {
		t.Error("a listener on port 80 must fail the check")
	}
}
