package n8nctl

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roey132/n8n-one-click-setup/internal/logger"
)

// StageStack materializes the deployment directory: the compose definition
// (rewritten every run, it is versioned with this tool), the merged
// environment file, and the data subdirectories. Existing data is never
// clobbered.
func (p *Provisioner) StageStack() error {
	if err := ensureDir(p.paths.DeployDir, 0o755); err != nil {
		return err
	}

	if err := p.writeCompose(); err != nil {
		return err
	}
	if err := p.stageEnvFile(); err != nil {
		return err
	}
	if err := p.ensureDataDirs(); err != nil {
		return err
	}

	if p.cfg.WithRedis && p.cfg.RedisPassword == InsecureRedisPassword {
		logger.Warnf("REDIS_PASSWORD is still the shipped placeholder %q; change it in %s",
			InsecureRedisPassword, filepath.Join(p.paths.DeployDir, defaultEnvFile))
	}
	return nil
}

// writeCompose renders the compose definition for the selected profile: the
// base services, with the redis overlay deep-merged in when the queue
// backend is enabled.
func (p *Provisioner) writeCompose() error {
	baseData, err := os.ReadFile(filepath.Join(p.paths.Templates, "docker-compose.yml"))
	if err != nil {
		return fmt.Errorf("read compose template: %w", err)
	}

	merged := map[string]any{}
	if err := yaml.Unmarshal(baseData, &merged); err != nil {
		return fmt.Errorf("parse compose template: %w", err)
	}

	if p.cfg.WithRedis {
		overlayData, err := os.ReadFile(filepath.Join(p.paths.Templates, "docker-compose.redis.yml"))
		if err != nil {
			return fmt.Errorf("read redis overlay: %w", err)
		}
		var overlay map[string]any
		if err := yaml.Unmarshal(overlayData, &overlay); err != nil {
			return fmt.Errorf("parse redis overlay: %w", err)
		}
		deepMerge(merged, overlay)
	}

	out, err := yaml.Marshal(merged)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(p.paths.DeployDir, "docker-compose.yml"), out, 0o640)
}

// stageEnvFile copies the resolved environment source into the deployment
// directory (unless it already is that file) and merges in the keys the
// stack requires, one definition per key, user values winning.
func (p *Provisioner) stageEnvFile() error {
	staged := filepath.Join(p.paths.DeployDir, defaultEnvFile)
	if !sameFile(p.cfg.EnvFile, staged) {
		if err := copyFile(p.cfg.EnvFile, staged); err != nil {
			return fmt.Errorf("copy environment file: %w", err)
		}
	}

	required := map[string]string{
		"N8N_PORT":      p.cfg.Port,
		"N8N_IMAGE_TAG": p.cfg.ImageTag,
		"WEBHOOK_URL":   p.cfg.WebhookURL,
	}
	order := []string{"N8N_PORT", "N8N_IMAGE_TAG", "WEBHOOK_URL"}
	if p.cfg.WithRedis {
		required["REDIS_PASSWORD"] = p.cfg.RedisPassword
		order = append(order, "REDIS_PASSWORD")
	}
	return MergeDotEnv(staged, required, order)
}

func (p *Provisioner) ensureDataDirs() error {
	dirs := []string{filepath.Join(p.paths.DeployDir, "n8n_data")}
	if p.cfg.WithRedis {
		dirs = append(dirs, filepath.Join(p.paths.DeployDir, "redis_data"))
	}
	for _, dir := range dirs {
		if err := ensureDir(dir, 0o750); err != nil {
			return err
		}
	}
	return nil
}

func deepMerge(dst, src map[string]any) {
	for k, v := range src {
		existing, exists := dst[k]
		if !exists {
			dst[k] = v
			continue
		}
		dstMap, dstMapOK := existing.(map[string]any)
		srcMap, srcMapOK := v.(map[string]any)
		if dstMapOK && srcMapOK {
			deepMerge(dstMap, srcMap)
			dst[k] = dstMap
			continue
		}
		dst[k] = v
	}
}
