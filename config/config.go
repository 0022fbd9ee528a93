package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

type Config struct {
	ListenAddr           string `json:"listenAddr"`
	DataDir              string `json:"dataDir"`
	DatabaseFile         string `json:"databaseFile"`
	StandardDailyOutput  int    `json:"standardDailyOutput"`
	OpenBrowserOnStartup bool   `json:"openBrowserOnStartup"`
}

var (
	cfg Config
	mu  sync.RWMutex
)

const configFilePath = "./ofi_config.json"

func defaults() Config {
	return Config{
		ListenAddr:           ":8080",
		DataDir:              "data",
		DatabaseFile:         "production.db",
		StandardDailyOutput:  120,
		OpenBrowserOnStartup: true,
	}
}

func LoadConfig() (Config, error) {
	mu.Lock()
	defer mu.Unlock()

	file, err := os.ReadFile(configFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg = defaults()
			return cfg, nil
		}
		return Config{}, err
	}

	tempCfg := defaults()
	if err := json.Unmarshal(file, &tempCfg); err != nil {
		return Config{}, err
	}
	cfg = tempCfg

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.DatabaseFile == "" {
		cfg.DatabaseFile = "production.db"
	}
	if cfg.StandardDailyOutput == 0 {
		cfg.StandardDailyOutput = 120
	}

	return cfg, nil
}

func SaveConfig(newCfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	if newCfg.StandardDailyOutput == 0 {
		newCfg.StandardDailyOutput = 120
	}

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

// DatabasePath は設定されたデータディレクトリ配下のDBファイルパスを返します。
func (c Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DatabaseFile)
}
