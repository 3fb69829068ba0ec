package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "./data/transactional-sample.csv", cfg.Data.BaselinePath)
	assert.Equal(t, LogBackendCSV, cfg.Logs.Backend)
	assert.Equal(t, "./data/logs.csv", cfg.Logs.FullLogPath)
	assert.Equal(t, "./data/denied_logs.csv", cfg.Logs.DeniedLogPath)
	assert.Equal(t, 5, cfg.Rules.RapidWindowMinutes)
	assert.InDelta(t, 3000.0, cfg.Rules.DailyLimit, 1e-9)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("LOG_BACKEND", LogBackendSQLite)
	t.Setenv("RAPID_WINDOW_MINUTES", "10")
	t.Setenv("DAILY_LIMIT", "5000.5")
	t.Setenv("KAFKA_BROKERS", "broker1:9092, broker2:9092")
	t.Setenv("ANTIFRAUD_SERVICE_PORT", "9090")

	cfg := Load()

	assert.Equal(t, LogBackendSQLite, cfg.Logs.Backend)
	assert.Equal(t, 10, cfg.Rules.RapidWindowMinutes)
	assert.InDelta(t, 5000.5, cfg.Rules.DailyLimit, 1e-9)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("RAPID_WINDOW_MINUTES", "not-a-number")
	t.Setenv("DAILY_LIMIT", "oops")

	cfg := Load()

	assert.Equal(t, 5, cfg.Rules.RapidWindowMinutes)
	assert.InDelta(t, 3000.0, cfg.Rules.DailyLimit, 1e-9)
}
