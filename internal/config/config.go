package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Timer    TimerConfig    `yaml:"timer"`
	Database DatabaseConfig `yaml:"database"`
	Theme    ThemeConfig    `yaml:"theme"`
}

type AppConfig struct {
	Name         string `yaml:"name"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
}

type TimerConfig struct {
	OffsetSeconds int64   `yaml:"offset_seconds"`
	OffsetHours   float64 `yaml:"offset_hours"`
	Compact       bool    `yaml:"compact"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type ThemeConfig struct {
	AccentPulse     bool `yaml:"accent_pulse"`
	PulseIntervalMs int  `yaml:"pulse_interval_ms"`
	Sound           bool `yaml:"sound"`
}

func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:         "Steam Play Hours Simulator",
			WindowWidth:  520,
			WindowHeight: 260,
		},
		Timer: TimerConfig{},
		Database: DatabaseConfig{
			Path: "sessions.db",
		},
		Theme: ThemeConfig{
			AccentPulse:     true,
			PulseIntervalMs: 120,
			Sound:           true,
		},
	}
}

type Manager struct {
	config     *Config
	configPath string
}

// NewManager loads the config file at path, or the default location when
// path is empty. A missing or unreadable file is replaced with defaults,
// which are written back so the user has something to edit.
func NewManager(path string) (*Manager, error) {
	if path == "" {
		configDir, err := getConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(configDir, "config.yaml")
	}

	manager := &Manager{configPath: path}

	if err := manager.loadConfig(); err != nil {
		manager.config = DefaultConfig()
		if err := manager.SaveConfig(); err != nil {
			return nil, err
		}
	}

	return manager, nil
}

func (m *Manager) loadConfig() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) SaveConfig() error {
	data, err := yaml.Marshal(m.config)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	return os.WriteFile(m.configPath, data, 0644)
}

func (m *Manager) GetConfig() *Config {
	return m.config
}

// DatabasePath resolves the configured database file. Relative paths land
// next to the config file rather than in the working directory.
func (m *Manager) DatabasePath() string {
	p := m.config.Database.Path
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(m.configPath), p)
}

func getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".steamtimer"), nil
}
