package storage

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"slideshow/models"
)

// Manager handles configuration persistence
type Manager struct {
	configPath string
}

// NewManager creates a storage manager using the default config location,
// ~/.slideshow/config.json. It falls back to the current directory when the
// home directory cannot be determined.
func NewManager() *Manager {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	dataPath := filepath.Join(homeDir, ".slideshow")
	if err := os.MkdirAll(dataPath, 0755); err != nil {
		// Fallback to current directory
		dataPath = "."
	}

	return &Manager{
		configPath: filepath.Join(dataPath, "config.json"),
	}
}

// NewManagerAt creates a storage manager reading and writing the given file.
func NewManagerAt(path string) *Manager {
	return &Manager{
		configPath: path,
	}
}

// Path returns the config file location
func (m *Manager) Path() string {
	return m.configPath
}

// LoadConfig loads the configuration from disk. Missing keys keep their
// default values. A missing file is created with defaults; a malformed file
// falls back to defaults without failing.
func (m *Manager) LoadConfig() (*models.Config, error) {
	config := models.DefaultConfig()

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			if err := m.SaveConfig(config); err != nil {
				return nil, err
			}
			log.Printf("created default config at %s", m.configPath)
			return config, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, config); err != nil {
		log.Printf("config file %s is invalid, using defaults: %v", m.configPath, err)
		return models.DefaultConfig(), nil
	}

	config.Normalize()
	return config, nil
}

// SaveConfig saves the configuration to disk
func (m *Manager) SaveConfig(config *models.Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(m.configPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(m.configPath, data, 0644)
}
