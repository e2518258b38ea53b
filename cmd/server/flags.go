package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"secretkeeper/internal/common/identity/tools/token"
	"secretkeeper/internal/server/config"
)

var (
	netAddr        string // адрес запуска сервиса
	baseURL        string // базовый адрес сервиса для обратных адресов внешних провайдеров
	databaseDsn    string // адрес базы данных
	logLevel       string // уровень логирования
	configFile     string // путь к файлу конфигурации
	secretKey      string // секретный ключ для создания JWT
	expireToken    int    // время действия JWT
	googleID       string // идентификатор клиента у провайдера google
	googleSecret   string // секрет клиента у провайдера google
	facebookID     string // идентификатор клиента у провайдера facebook
	facebookSecret string // секрет клиента у провайдера facebook
)

// parseVariables - функция для установки конфигурационных параметров приложения.
// Конфигурирование приложения с приоритетом в порядке убывания: значения флагов, значения из файла, значения переменных окружения.
func parseVariables() error {
	parseFlags()
	parseConfigFile()
	parseEnvironment()

	// Проверяю корректность установки глобальных переменных
	err := checkVariables()
	if err != nil {
		return fmt.Errorf("failed to set global variable, %w", err)
	}

	// Устанавливаю полученные значения глобальных переменных
	token.SetSecretKey(secretKey)
	token.SetExpireHour(expireToken)
	return nil
}

// parseFlags - функция для определения параметров конфигурации из флагов.
func parseFlags() {
	flag.StringVar(&netAddr, "a", "", "address and port to run server")
	flag.StringVar(&baseURL, "base-url", "", "base URL of the service for federated callbacks")

	flag.StringVar(&databaseDsn, "d", "", "database connection address") // по умолчанию адрес не задан

	flag.StringVar(&logLevel, "l", "", "log level")
	flag.StringVar(&configFile, "c", "", "name of configuration file")
	flag.StringVar(&secretKey, "secret-key", "", "secret key for generating JWT")
	flagExpireToken := flag.Int("expire-token", 0, "JWT expiration date in hours")

	// Вызов flag.Parse() для парсинга аргументов
	flag.Parse()
	expireToken = *flagExpireToken
}

// parseConfigFile - функция для переопределения параметров конфигурации из файла конфигурации.
func parseConfigFile() {
	// если не указан файл конфигурации, то оставляю параметры запуска без изменения
	if configFile == "" {
		return
	}
	configs, err := config.ParseConfigFile(configFile)
	if err != nil {
		log.Fatalf("parse config file error: %v\n", err)
	}

	// обновляю параметры запуска если они не определены флагами
	if netAddr == "" {
		netAddr = configs.Address
	}
	if baseURL == "" {
		baseURL = configs.BaseURL
	}
	if logLevel == "" {
		logLevel = configs.LogLevel
	}
	if databaseDsn == "" {
		databaseDsn = configs.DatabaseDSN
	}
	if secretKey == "" {
		secretKey = configs.SecretKey
	}
	if expireToken == 0 {
		expireToken = configs.ExpireToken
	}
	if googleID == "" {
		googleID = configs.GoogleID
	}
	if googleSecret == "" {
		googleSecret = configs.GoogleSecret
	}
	if facebookID == "" {
		facebookID = configs.FacebookID
	}
	if facebookSecret == "" {
		facebookSecret = configs.FacebookSecret
	}
}

// parseEnvironment - функция для переопределения конфигурации из глобальных переменных.
// Переопределяет конфигурацию, если значения не установлены флагами или файлом конфигурации.
func parseEnvironment() {
	if netAddr == "" {
		netAddr = os.Getenv("SECRETKEEPER_SERVER_ADDRESS")
	}
	if baseURL == "" {
		baseURL = os.Getenv("SECRETKEEPER_SERVER_BASE_URL")
	}
	if databaseDsn == "" {
		databaseDsn = os.Getenv("SECRETKEEPER_SERVER_DATABASE_URL")
	}
	if logLevel == "" {
		logLevel = os.Getenv("SECRETKEEPER_SERVER_LOG_LEVEL")
	}
	if secretKey == "" {
		secretKey = os.Getenv("SECRETKEEPER_SERVER_SECRET_KEY")
	}
	if expireToken == 0 {
		envExpireToken := os.Getenv("SECRETKEEPER_SERVER_EXPIRE_TOKEN")
		if envExpireToken != "" {
			expire, err := strconv.Atoi(envExpireToken)
			if err == nil {
				expireToken = expire
			}
		}
	}
	if googleID == "" {
		googleID = os.Getenv("SECRETKEEPER_SERVER_GOOGLE_CLIENT_ID")
	}
	if googleSecret == "" {
		googleSecret = os.Getenv("SECRETKEEPER_SERVER_GOOGLE_CLIENT_SECRET")
	}
	if facebookID == "" {
		facebookID = os.Getenv("SECRETKEEPER_SERVER_FACEBOOK_CLIENT_ID")
	}
	if facebookSecret == "" {
		facebookSecret = os.Getenv("SECRETKEEPER_SERVER_FACEBOOK_CLIENT_SECRET")
	}
}

// checkVariables - функция для проверки корректности установки глобальных переменных.
// Параметры внешних провайдеров не обязательны: без них сервис работает только с локальными учетными записями.
func checkVariables() error {
	if netAddr == "" {
		return fmt.Errorf("address and port to run server must be set")
	}
	if baseURL == "" {
		return fmt.Errorf("base URL of the service must be set")
	}
	if logLevel == "" {
		return fmt.Errorf("log level must be set")
	}
	if databaseDsn == "" {
		return fmt.Errorf("database connection address must be set")
	}
	if secretKey == "" {
		return fmt.Errorf("secret key must be set")
	}
	if expireToken == 0 {
		return fmt.Errorf("expire token must be set")
	}
	return nil
}
