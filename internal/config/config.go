package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppID names the per-user data directory.
const AppID = "io.github.sandeepkv93.Todo"

type RuntimeConfig struct {
	DataDir        string `yaml:"data_dir"`
	DataFile       string `yaml:"data_file"`
	SettingsDB     string `yaml:"settings_db"`
	MemorySettings bool   `yaml:"memory_settings"`
	LogLevel       string `yaml:"log_level"`
	LogFile        string `yaml:"log_file"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DataDir:    defaultDataDir(),
		DataFile:   "data.json",
		SettingsDB: "settings.db",
		LogLevel:   "info",
		LogFile:    "todo.log",
	}
}

// Load starts from defaults, applies the YAML file named by TODO_CONFIG_PATH
// when set, then the TODO_* environment overrides.
func Load() (RuntimeConfig, error) {
	cfg := DefaultRuntimeConfig()
	if path := strings.TrimSpace(os.Getenv("TODO_CONFIG_PATH")); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return RuntimeConfig{}, err
		}
	}
	return RuntimeConfigFromEnv(cfg), nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("TODO_DATA_DIR"); ok {
		cfg.DataDir = v
	}
	if v, ok := getEnvString("TODO_DATA_FILE"); ok {
		cfg.DataFile = v
	}
	if v, ok := getEnvString("TODO_SETTINGS_DB"); ok {
		cfg.SettingsDB = v
	}
	if v, ok := getEnvBool("TODO_MEMORY_SETTINGS"); ok {
		cfg.MemorySettings = v
	}
	if v, ok := getEnvString("TODO_LOG_LEVEL"); ok {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := os.LookupEnv("TODO_LOG_FILE"); ok {
		// An explicitly empty value sends logs to stderr.
		cfg.LogFile = strings.TrimSpace(v)
	}
	return cfg
}

func (c RuntimeConfig) DataPath() string     { return c.resolve(c.DataFile) }
func (c RuntimeConfig) SettingsPath() string { return c.resolve(c.SettingsDB) }

func (c RuntimeConfig) LogPath() string {
	if c.LogFile == "" {
		return ""
	}
	return c.resolve(c.LogFile)
}

func (c RuntimeConfig) resolve(name string) string {
	if filepath.IsAbs(name) || c.DataDir == "" {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

func defaultDataDir() string {
	if xdg := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); xdg != "" {
		return filepath.Join(xdg, AppID)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", AppID)
}

func loadFromFile(path string, cfg *RuntimeConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
