package config

import (
	"encoding/json"
	"os"
	"sync"
)

type Config struct {
	ListenAddr   string `json:"listenAddr"`
	DatabasePath string `json:"databasePath"`
	// OpenAppWindow が真なら起動時にアプリモードのブラウザウィンドウを
	// 開きます。偽なら既定のブラウザでタブを開くだけです。
	OpenAppWindow bool `json:"openAppWindow"`
}

var (
	cfg Config
	mu  sync.RWMutex
)

const configFilePath = "./tana_config.json"

func defaults() Config {
	return Config{
		ListenAddr:    ":8630",
		DatabasePath:  "./tana.db",
		OpenAppWindow: true,
	}
}

func applyDefaults(c Config) Config {
	d := defaults()
	if c.ListenAddr == "" {
		c.ListenAddr = d.ListenAddr
	}
	if c.DatabasePath == "" {
		c.DatabasePath = d.DatabasePath
	}
	return c
}

func LoadConfig() (Config, error) {
	mu.Lock()
	defer mu.Unlock()

	file, err := os.ReadFile(configFilePath)
	if err != nil {
		cfg = defaults()
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var tempCfg Config
	if err := json.Unmarshal(file, &tempCfg); err != nil {
		cfg = defaults()
		return cfg, err
	}
	cfg = applyDefaults(tempCfg)
	return cfg, nil
}

func SaveConfig(newCfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	newCfg = applyDefaults(newCfg)

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
