package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// Configs представляет структуру конфигурации.
type Configs struct {
	Address        string `json:"address"`          // аналог переменной окружения SECRETKEEPER_SERVER_ADDRESS или флага -a
	BaseURL        string `json:"base_url"`         // аналог переменной окружения SECRETKEEPER_SERVER_BASE_URL или флага -base-url
	LogLevel       string `json:"log_level"`        // аналог переменной окружения SECRETKEEPER_SERVER_LOG_LEVEL или флага -l
	DatabaseDSN    string `json:"database_dsn"`     // аналог переменной окружения SECRETKEEPER_SERVER_DATABASE_URL или флага -d
	SecretKey      string `json:"secret_key"`       // аналог переменной окружения SECRETKEEPER_SERVER_SECRET_KEY или флага -secret-key
	ExpireToken    int    `json:"expire_token"`     // аналог переменной окружения SECRETKEEPER_SERVER_EXPIRE_TOKEN или флага -expire-token
	GoogleID       string `json:"google_id"`        // аналог переменной окружения SECRETKEEPER_SERVER_GOOGLE_CLIENT_ID
	GoogleSecret   string `json:"google_secret"`    // аналог переменной окружения SECRETKEEPER_SERVER_GOOGLE_CLIENT_SECRET
	FacebookID     string `json:"facebook_id"`      // аналог переменной окружения SECRETKEEPER_SERVER_FACEBOOK_CLIENT_ID
	FacebookSecret string `json:"facebook_secret"`  // аналог переменной окружения SECRETKEEPER_SERVER_FACEBOOK_CLIENT_SECRET
}

// ParseConfigFile - функция для переопределения параметров конфигурации из файла конфигурации.
func ParseConfigFile(configFileName string) (Configs, error) {
	var configs Configs
	f, err := os.Open(configFileName)
	if err != nil {
		return Configs{}, fmt.Errorf("open cofiguration file error: %w", err)
	}
	reader := bufio.NewReader(f)
	dec := json.NewDecoder(reader)
	err = dec.Decode(&configs)
	if err != nil {
		return Configs{}, fmt.Errorf("parse cofiguration file error: %w", err)
	}

	return configs, nil
}
