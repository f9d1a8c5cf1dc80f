package n8nctl

import (
	"bufio"
	"os"
	"strings"
)

// ReadDotEnv parses a shell-sourced KEY=value file into a map. Comments and
// blank lines are skipped; later definitions win, matching shell semantics.
func ReadDotEnv(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	vars := map[string]string{}
	s := bufio.NewScanner(file)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		k := strings.TrimSpace(parts[0])
		v := strings.Trim(strings.TrimSpace(parts[1]), "\"")
		vars[k] = v
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return vars, nil
}

// MergeDotEnv guarantees every key in order has exactly one definition in
// the file: keys the user already defined keep their value, missing keys are
// appended. Comments and line order are preserved. Running it twice is a
// no-op.
func MergeDotEnv(path string, defaults map[string]string, order []string) error {
	existing := map[string]bool{}
	var lines []string

	if file, err := os.Open(path); err == nil {
		s := bufio.NewScanner(file)
		for s.Scan() {
			line := s.Text()
			lines = append(lines, line)
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "#") {
				continue
			}
			parts := strings.SplitN(trimmed, "=", 2)
			if len(parts) != 2 {
				continue
			}
			existing[strings.TrimSpace(parts[0])] = true
		}
		scanErr := s.Err()
		file.Close()
		if scanErr != nil {
			return scanErr
		}
	}

	changed := false
	for _, key := range order {
		if existing[key] {
			continue
		}
		lines = append(lines, key+"="+defaults[key])
		existing[key] = true
		changed = true
	}
	if !changed && len(lines) > 0 {
		return nil
	}

	content := strings.Join(lines, "\n") + "\n"
	return os.WriteFile(path, []byte(content), 0o640)
}

// UpdateDotEnv rewrites the values of the given keys in place, preserving
// comments and ordering, and appends keys the file does not yet define. Used
// by the setup wizard to record its answers.
func UpdateDotEnv(path string, vars map[string]string) error {
	written := map[string]bool{}
	var lines []string

	if file, err := os.Open(path); err == nil {
		s := bufio.NewScanner(file)
		for s.Scan() {
			line := s.Text()
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "#") {
				lines = append(lines, line)
				continue
			}
			parts := strings.SplitN(trimmed, "=", 2)
			if len(parts) != 2 {
				lines = append(lines, line)
				continue
			}
			key := strings.TrimSpace(parts[0])
			if newVal, ok := vars[key]; ok {
				lines = append(lines, key+"="+newVal)
				written[key] = true
			} else {
				lines = append(lines, line)
			}
		}
		scanErr := s.Err()
		file.Close()
		if scanErr != nil {
			return scanErr
		}
	}

	for _, key := range sortedKeys(vars) {
		if !written[key] {
			lines = append(lines, key+"="+vars[key])
		}
	}

	content := strings.Join(lines, "\n") + "\n"
	return os.WriteFile(path, []byte(content), 0o640)
}
