package config

import (
	"encoding/json"
	"os"
	"sync"
)

type Config struct {
	ListenAddr     string `json:"listenAddr"`
	DatabasePath   string `json:"databasePath"`
	SeedFolderPath string `json:"seedFolderPath"`
	PageSize       int    `json:"pageSize"`
}

var (
	cfg Config
	mu  sync.RWMutex
)

const configFilePath = "./planboard_config.json"

func applyDefaults(c *Config) {
	if c.ListenAddr == "" {
		c.ListenAddr = ":4000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "./planboard.db"
	}
	if c.SeedFolderPath == "" {
		c.SeedFolderPath = "./seed"
	}
	if c.PageSize == 0 {
		c.PageSize = 10
	}
}

func LoadConfig() (Config, error) {
	mu.Lock()
	defer mu.Unlock()

	file, err := os.ReadFile(configFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			applyDefaults(&cfg)
			return cfg, nil
		}
		return Config{}, err
	}

	var tempCfg Config
	if err := json.Unmarshal(file, &tempCfg); err != nil {
		return Config{}, err
	}
	applyDefaults(&tempCfg)
	cfg = tempCfg

	return cfg, nil
}

func SaveConfig(newCfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	applyDefaults(&newCfg)

	file, err := json.MarshalIndent(newCfg, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(configFilePath, file, 0644); err != nil {
		return err
	}
	cfg = newCfg
	return nil
}

func GetConfig() Config {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

// SetOverrides applies environment overrides on top of the loaded file.
func SetOverrides(listenAddr, databasePath, seedFolderPath string) {
	mu.Lock()
	defer mu.Unlock()

	if listenAddr != "" {
		cfg.ListenAddr = listenAddr
	}
	if databasePath != "" {
		cfg.DatabasePath = databasePath
	}
	if seedFolderPath != "" {
		cfg.SeedFolderPath = seedFolderPath
	}
}
