package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"antifraud-system/config"
	_ "antifraud-system/docs" // Swagger docs
	"antifraud-system/internal/api/rest"
	"antifraud-system/internal/fraud"
	"antifraud-system/internal/generator"
	"antifraud-system/internal/history"
	"antifraud-system/internal/kafka"
	"antifraud-system/internal/logger"
	"antifraud-system/internal/services"
	"antifraud-system/internal/storage"
	"antifraud-system/internal/storage/csvlog"
	"antifraud-system/internal/storage/sqlite"
)

// StartAntifraudService запускает сервис проверки транзакций
func StartAntifraudService() {
	cfg := config.Load()

	// Загрузка базовой выборки. Отсутствующий источник не фатален:
	// сервис стартует с пустой историей
	store, err := history.Load(cfg.Data.BaselinePath)
	if err != nil {
		if errors.Is(err, history.ErrDataUnavailable) {
			log.Printf("Warning: %v, starting with empty history", err)
		} else {
			log.Fatalf("Failed to load baseline: %v", err)
		}
	}
	log.Printf("Baseline loaded: %d transactions", store.Size())
	logger.LogEvent(logger.EventBaselineLoaded, "antifraud-service", "history", map[string]interface{}{
		"source": cfg.Data.BaselinePath,
		"size":   store.Size(),
	})

	// Журнал решений: CSV или SQLite
	sink, err := newDecisionLog(cfg)
	if err != nil {
		log.Fatalf("Failed to create decision log: %v", err)
	}
	defer func() {
		if err := sink.Close(); err != nil {
			log.Printf("Warning: failed to close decision log: %v", err)
		}
	}()

	rules := fraud.NewRuleset(store, cfg.Rules.RapidWindowMinutes, cfg.Rules.DailyLimit)
	engine := fraud.NewDecisionEngine(rules, sink)

	// Опциональный Kafka producer для событий решений
	decisionService := services.NewDecisionService(engine, sink)
	if len(cfg.Kafka.Brokers) > 0 {
		log.Println("Connecting to Kafka...")
		producer, err := kafka.NewProducer(cfg)
		if err != nil {
			log.Printf("Warning: failed to connect to Kafka, continuing without decision events: %v", err)
		} else {
			defer producer.Close()
			decisionService = services.NewDecisionServiceWithKafka(engine, sink, producer)
		}
	}

	// Генератор тестовых транзакций относительно квартилей выборки
	q1, q3, ok := rules.Quantiles()
	if !ok {
		q1, q3 = 100.0, 1000.0
	}
	gen := generator.NewTransactionGenerator(q1, q3)

	// Настройка REST API
	handlers := rest.NewHandlers(decisionService, gen)
	router := rest.SetupRouter(handlers)

	// Запуск HTTP сервера
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("AntiFraud Service starting on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down service...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Service exited")
}

// newDecisionLog создает журнал решений для настроенного бэкенда
func newDecisionLog(cfg *config.Config) (storage.DecisionLog, error) {
	switch cfg.Logs.Backend {
	case config.LogBackendSQLite:
		db, err := sqlite.NewConnection(cfg.Logs.DBPath)
		if err != nil {
			return nil, err
		}
		return sqlite.NewSink(db), nil
	case config.LogBackendCSV:
		return csvlog.NewSink(cfg.Logs.FullLogPath, cfg.Logs.DeniedLogPath)
	default:
		return nil, fmt.Errorf("unknown log backend %q", cfg.Logs.Backend)
	}
}
