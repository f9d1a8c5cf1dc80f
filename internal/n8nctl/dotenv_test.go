package n8nctl

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, `# comment
N8N_PORT=5678

DOMAIN_NAME="n8n.example.com"
not a pair
`)

	vars, err := ReadDotEnv(path)
	if err != nil {
		t.Fatal(err)
	}
	if vars["N8N_PORT"] != "5678" {
		t.Errorf("N8N_PORT = %q", vars["N8N_PORT"])
	}
	if vars["DOMAIN_NAME"] != "n8n.example.com" {
		t.Errorf("quotes should be stripped, got %q", vars["DOMAIN_NAME"])
	}
	if len(vars) != 2 {
		t.Errorf("expected 2 vars, got %d", len(vars))
	}
}

func TestMergeDotEnvUserValueWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, "# user file\nN8N_PORT=9999\n")

	defaults := map[string]string{"N8N_PORT": "5678", "WEBHOOK_URL": "http://localhost:5678/"}
	order := []string{"N8N_PORT", "WEBHOOK_URL"}
	if err := MergeDotEnv(path, defaults, order); err != nil {
		t.Fatal(err)
	}

	vars, err := ReadDotEnv(path)
	if err != nil {
		t.Fatal(err)
	}
	if vars["N8N_PORT"] != "9999" {
		t.Errorf("user value should win, got %q", vars["N8N_PORT"])
	}
	if vars["WEBHOOK_URL"] != "http://localhost:5678/" {
		t.Errorf("missing key should be appended, got %q", vars["WEBHOOK_URL"])
	}
}

func TestMergeDotEnvIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, "N8N_PORT=9999\n")

	defaults := map[string]string{"N8N_PORT": "5678", "N8N_IMAGE_TAG": "latest", "WEBHOOK_URL": "http://localhost:5678/"}
	order := []string{"N8N_PORT", "N8N_IMAGE_TAG", "WEBHOOK_URL"}

	if err := MergeDotEnv(path, defaults, order); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := MergeDotEnv(path, defaults, order); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Fatalf("second merge changed the file:\n--- first\n%s--- second\n%s", first, second)
	}

	for _, key := range order {
		count := 0
		for _, line := range strings.Split(string(second), "\n") {
			if strings.HasPrefix(line, key+"=") {
				count++
			}
		}
		if count != 1 {
			t.Errorf("key %s defined %d times, want exactly 1", key, count)
		}
	}
}

func TestUpdateDotEnvPreservesComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, "# keep me\nDOMAIN_NAME=old.example.com\nN8N_PORT=5678\n")

	err := UpdateDotEnv(path, map[string]string{
		"DOMAIN_NAME": "new.example.com",
		"ENABLE_TLS":  "true",
	})
	if err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(content)

	if !strings.Contains(text, "# keep me") {
		t.Error("comment was dropped")
	}
	if !strings.Contains(text, "DOMAIN_NAME=new.example.com") {
		t.Error("value was not updated in place")
	}
	if strings.Contains(text, "old.example.com") {
		t.Error("stale value still present")
	}
	if !strings.Contains(text, "ENABLE_TLS=true") {
		t.Error("new key was not appended")
	}
}

func TestUpdateDotEnvCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := UpdateDotEnv(path, map[string]string{"DOMAIN_NAME": "n8n.example.com"}); err != nil {
		t.Fatal(err)
	}
	vars, err := ReadDotEnv(path)
	if err != nil {
		t.Fatal(err)
	}
	if vars["DOMAIN_NAME"] != "n8n.example.com" {
		t.Fatalf("got %q", vars["DOMAIN_NAME"])
	}
}
