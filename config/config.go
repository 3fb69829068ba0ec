package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Бэкенды журнала решений
const (
	LogBackendCSV    = "csv"
	LogBackendSQLite = "sqlite"
)

type Config struct {
	Data   DataConfig
	Logs   LogConfig
	Rules  RulesConfig
	Kafka  KafkaConfig
	Server ServerConfig
}

type DataConfig struct {
	BaselinePath string // Путь к CSV с базовой выборкой транзакций
}

type LogConfig struct {
	Backend       string // csv или sqlite
	FullLogPath   string // Полный журнал решений (CSV)
	DeniedLogPath string // Журнал отклоненных транзакций (CSV)
	DBPath        string // Путь к файлу SQLite для бэкенда sqlite
}

type RulesConfig struct {
	RapidWindowMinutes int     // Окно детектора частых транзакций
	DailyLimit         float64 // Дневной лимит суммы на пользователя
}

type KafkaConfig struct {
	Brokers       []string
	DecisionTopic string
}

type ServerConfig struct {
	Port int
}

func Load() *Config {
	// Загружаем .env файл, если он существует
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Data: DataConfig{
			BaselinePath: getEnv("BASELINE_CSV_PATH", "./data/transactional-sample.csv"),
		},
		Logs: LogConfig{
			Backend:       getEnv("LOG_BACKEND", LogBackendCSV),
			FullLogPath:   getEnv("LOGS_CSV_PATH", "./data/logs.csv"),
			DeniedLogPath: getEnv("DENIED_LOGS_CSV_PATH", "./data/denied_logs.csv"),
			DBPath:        getEnv("LOG_DB_PATH", "./data/antifraud_logs.db"),
		},
		Rules: RulesConfig{
			RapidWindowMinutes: getEnvAsInt("RAPID_WINDOW_MINUTES", 5),
			DailyLimit:         getEnvAsFloat("DAILY_LIMIT", 3000.0),
		},
		Kafka: KafkaConfig{
			Brokers:       getEnvAsSlice("KAFKA_BROKERS"),
			DecisionTopic: getEnv("KAFKA_DECISION_TOPIC", "antifraud.decisions"),
		},
		Server: ServerConfig{
			Port: getEnvAsInt("ANTIFRAUD_SERVICE_PORT", 8080),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsSlice разбирает список значений, разделенных запятыми.
// Пустая переменная означает отсутствие списка (функция отключена)
func getEnvAsSlice(key string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return nil
	}
	parts := strings.Split(valueStr, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
