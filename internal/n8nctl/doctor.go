package n8nctl

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"syscall"
)

// CheckResult is one host readiness probe outcome, shared by the doctor
// command and the wizard's preflight screen.
type CheckResult struct {
	Name string
	Err  error
	OK   bool
}

// RunChecks probes the host read-only: nothing is installed or mutated.
func RunChecks() []CheckResult {
	return runChecks(NewRunner(), DefaultPaths())
}

func runChecks(run Runner, paths Paths) []CheckResult {
	checks := []struct {
		name string
		fn   func() error
	}{
		{"docker binary", func() error {
			_, err := run.LookPath("docker")
			return err
		}},
		{"docker compose plugin", func() error {
			_, err := run.Output("docker", "compose", "version")
			return err
		}},
		{"docker daemon", func() error {
			_, err := run.Output("docker", "info")
			return err
		}},
		{"nginx binary", func() error {
			_, err := run.LookPath("nginx")
			return err
		}},
		{"ports 80/443 free", func() error {
			out, err := run.Output("ss", "-ltn")
			if err != nil {
				return err
			}
			if strings.Contains(out, ":80 ") || strings.Contains(out, ":443 ") {
				return fmt.Errorf("ports 80/443 already in use")
			}
			return nil
		}},
		{paths.DeployDir + " writable", func() error {
			return writableCheck(paths.DeployDir)
		}},
		{"disk space >= 2GiB", func() error {
			return diskCheck("/", 2)
		}},
	}

	results := make([]CheckResult, 0, len(checks))
	for _, check := range checks {
		err := check.fn()
		results = append(results, CheckResult{Name: check.name, Err: err, OK: err == nil})
	}
	return results
}

// RunDoctor prints the host readiness report. Failing checks are warnings,
// not errors: `up` installs most of what is missing.
func RunDoctor() error {
	fmt.Println("n8nctl doctor")
	fmt.Printf("runtime: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	for _, r := range RunChecks() {
		if r.OK {
			fmt.Printf("[ OK ] %s\n", r.Name)
		} else {
			fmt.Printf("[WARN] %s: %v\n", r.Name, r.Err)
		}
	}
	return nil
}

func writableCheck(dir string) error {
	if !dirExists(dir) {
		// Not created yet; check the parent instead so doctor stays read-only.
		return writableParent(dir)
	}
	f, err := os.CreateTemp(dir, "n8nctl-write-check-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return nil
}

func writableParent(dir string) error {
	parent := "/"
	if i := strings.LastIndex(dir, "/"); i > 0 {
		parent = dir[:i]
	}
	if !dirExists(parent) {
		return fmt.Errorf("%s does not exist", parent)
	}
	return nil
}

func diskCheck(path string, minGiB uint64) error {
	var stat syscall.Statfs_t
	if err := syscall.Statfs(path, &stat); err != nil {
		return err
	}
	free := (stat.Bavail * uint64(stat.Bsize)) / (1024 * 1024 * 1024)
	if free < minGiB {
		return fmt.Errorf("free space %dGiB < %dGiB", free, minGiB)
	}
	return nil
}
