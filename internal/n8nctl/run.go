package n8nctl

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RequireRoot refuses to run mutating commands without elevation. Package
// installation, nginx, and systemd all need it.
func RequireRoot() error {
	if os.Geteuid() != 0 {
		return errors.New("this command must be run as root (try sudo)")
	}
	return nil
}

// NewDefaultProvisioner resolves and loads the environment source, then
// builds a provisioner against the real host.
func NewDefaultProvisioner(envPath string, withRedis bool) (*Provisioner, error) {
	src, err := ResolveEnvFile(envPath)
	if err != nil {
		return nil, err
	}
	cfg, err := LoadConfig(src)
	if err != nil {
		return nil, err
	}
	cfg.WithRedis = withRedis
	return NewProvisioner(cfg, DefaultPaths(), NewRunner()), nil
}

// RunUp is the `n8nctl up` entry point: the full linear convergence run.
func RunUp(envPath string, withRedis bool) error {
	if err := RequireRoot(); err != nil {
		return err
	}
	p, err := NewDefaultProvisioner(envPath, withRedis)
	if err != nil {
		return err
	}
	return p.Up()
}

// RunStatus shows the compose view of the deployed stack. Read-only.
func RunStatus() error {
	paths := DefaultPaths()
	if !dirExists(paths.DeployDir) {
		return fmt.Errorf("deployment directory %s does not exist; run n8nctl up first", paths.DeployDir)
	}
	out, err := NewCompose(NewRunner(), paths.DeployDir).PS()
	if err != nil {
		fmt.Println("docker compose status unavailable:")
		fmt.Println(strings.TrimSpace(out))
		return nil
	}
	fmt.Println(strings.TrimSpace(out))
	return nil
}

// RunDown stops the stack. Data volumes stay on disk.
func RunDown() error {
	if err := RequireRoot(); err != nil {
		return err
	}
	paths := DefaultPaths()
	if !dirExists(paths.DeployDir) {
		return fmt.Errorf("deployment directory %s does not exist", paths.DeployDir)
	}
	return NewCompose(NewRunner(), paths.DeployDir).Down()
}

// ApplyWizardEnv records the setup wizard's answers in ./.env, creating it
// from the shipped example when absent, and returns the file path.
func ApplyWizardEnv(domain, email string, enableTLS bool) (string, error) {
	target := defaultEnvFile
	if !fileExists(target) {
		example := filepath.Join(FindTemplatesDir(), exampleEnvFile)
		if fileExists(example) {
			if err := copyFile(example, target); err != nil {
				return "", fmt.Errorf("seed %s: %w", target, err)
			}
		}
	}

	vars := map[string]string{
		"DOMAIN_NAME": domain,
		"SSL_EMAIL":   email,
		"ENABLE_TLS":  fmt.Sprintf("%t", enableTLS),
	}
	if err := UpdateDotEnv(target, vars); err != nil {
		return "", err
	}
	return target, nil
}
