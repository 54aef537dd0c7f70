// Where: internal/config/global.go
// What: Global config load/save helpers.
// Why: Manage ~/.alice_new/config.yaml consistently.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/alice-bot/alice-new/internal/fileops"
	"github.com/alice-bot/alice-new/internal/meta"
)

// GlobalConfig represents the ~/.alice_new/config.yaml configuration.
// It tracks generated handler projects and when each was last created.
type GlobalConfig struct {
	Version  int                     `yaml:"version"`
	Projects map[string]ProjectEntry `yaml:"projects,omitempty"`
}

// ProjectEntry stores a generated project's directory path and creation
// timestamp.
type ProjectEntry struct {
	Path      string `yaml:"path"`
	CreatedAt string `yaml:"created_at"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		Version:  1,
		Projects: map[string]ProjectEntry{},
	}
}

// GlobalConfigPath returns the path to the global config file,
// honoring the config home override.
func GlobalConfigPath() (string, error) {
	if home := strings.TrimSpace(os.Getenv(meta.EnvConfigHome)); home != "" {
		return filepath.Join(home, meta.ConfigFile), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, meta.HomeDir, meta.ConfigFile), nil
}

// Load reads the global config, returning the default when the file
// does not exist yet.
func Load(path string) (GlobalConfig, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultGlobalConfig(), nil
	}
	if err != nil {
		return GlobalConfig{}, err
	}
	cfg := DefaultGlobalConfig()
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return GlobalConfig{}, err
	}
	if cfg.Projects == nil {
		cfg.Projects = map[string]ProjectEntry{}
	}
	return cfg, nil
}

// Save writes the global config, creating its directory when needed.
func Save(path string, cfg GlobalConfig) error {
	content, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return fileops.WriteFile(path, string(content))
}

var now = time.Now

// RecordProject notes a freshly generated project in the global config.
func RecordProject(path, appName, projectDir string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	absDir := projectDir
	if abs, err := filepath.Abs(projectDir); err == nil {
		absDir = abs
	}
	cfg.Projects[appName] = ProjectEntry{
		Path:      absDir,
		CreatedAt: now().UTC().Format(time.RFC3339),
	}
	return Save(path, cfg)
}
