package n8nctl

import (
	"os"
	"os/exec"
)

// Runner abstracts shell-outs to host tooling (apt-get, docker, nginx,
// certbot, ufw, systemctl) so every collaborator can be exercised in tests
// without touching real system services.
type Runner interface {
	// Run executes a command, streaming its output to the current process.
	Run(name string, args ...string) error
	// Output executes a command and returns its combined output.
	Output(name string, args ...string) (string, error)
	// LookPath reports where a binary lives, or an error if it is not installed.
	LookPath(name string) (string, error)
}

type execRunner struct{}

// NewRunner returns a Runner backed by os/exec.
func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (execRunner) Output(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).CombinedOutput()
	return string(out), err
}

func (execRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
