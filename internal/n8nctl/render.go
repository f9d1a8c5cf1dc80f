package n8nctl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Site and unit templates carry literal placeholder tokens, substituted
// verbatim. Deliberately not a template engine: the contract is two fixed
// tokens per artifact.
const (
	placeholderDomain    = "{{DOMAIN}}"
	placeholderPort      = "{{N8N_PORT}}"
	placeholderDeployDir = "{{DEPLOY_DIR}}"
)

func renderPlaceholders(text string, repl map[string]string) string {
	for token, value := range repl {
		text = strings.ReplaceAll(text, token, value)
	}
	return text
}

func renderTemplateFile(path string, repl map[string]string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", path, err)
	}
	return renderPlaceholders(string(content), repl), nil
}

// FindTemplatesDir locates the templates shipped alongside the binary. The
// N8NCTL_TEMPLATES environment variable overrides the search.
func FindTemplatesDir() string {
	if custom := strings.TrimSpace(os.Getenv("N8NCTL_TEMPLATES")); custom != "" {
		return custom
	}

	exe, err := os.Executable()
	if err == nil {
		binDir := filepath.Dir(exe)
		candidates := []string{
			filepath.Join(binDir, "..", "templates"),
			filepath.Join(binDir, "templates"),
		}
		for _, c := range candidates {
			if dirExists(c) {
				return c
			}
		}
	}

	cwd, err := os.Getwd()
	if err == nil {
		c := filepath.Join(cwd, "templates")
		if dirExists(c) {
			return c
		}
	}

	if dirExists("/usr/local/share/n8nctl/templates") {
		return "/usr/local/share/n8nctl/templates"
	}
	return "templates"
}
