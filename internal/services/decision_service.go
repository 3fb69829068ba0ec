package services

import (
	"log"
	"time"

	"github.com/google/uuid"

	"antifraud-system/internal/fraud"
	"antifraud-system/internal/kafka"
	"antifraud-system/internal/logger"
	"antifraud-system/internal/models"
	"antifraud-system/internal/storage"
)

// DecisionServiceImpl реализует интерфейс DecisionService
type DecisionServiceImpl struct {
	engine   *fraud.DecisionEngine
	sink     storage.DecisionLog
	producer kafka.Producer // Опциональный продюсер событий решений
}

// NewDecisionService создает новый сервис принятия решений
func NewDecisionService(engine *fraud.DecisionEngine, sink storage.DecisionLog) DecisionService {
	return &DecisionServiceImpl{
		engine: engine,
		sink:   sink,
	}
}

// NewDecisionServiceWithKafka создает сервис с публикацией событий решений в Kafka
func NewDecisionServiceWithKafka(engine *fraud.DecisionEngine, sink storage.DecisionLog, producer kafka.Producer) DecisionService {
	return &DecisionServiceImpl{
		engine:   engine,
		sink:     sink,
		producer: producer,
	}
}

// SubmitTransaction проверяет транзакцию, материализует журнал и публикует событие.
// Ошибки валидации возвращаются до любых изменений состояния; сбой материализации
// не отменяет решение — записи остаются в памяти, предупреждение уходит в журнал событий
func (s *DecisionServiceImpl) SubmitTransaction(req *models.SubmitRequest) (*models.Decision, error) {
	decision, err := s.engine.Submit(req)
	if err != nil {
		return nil, err
	}

	logger.LogEvent(logger.EventDecisionMade, "antifraud-service", "engine", map[string]interface{}{
		"transaction_id": decision.TransactionID,
		"recommendation": decision.Recommendation,
		"reason":         decision.Reason,
	})

	if err := s.sink.Flush(); err != nil {
		// Решение корректно, несохраненные записи уйдут следующим Flush
		log.Printf("Warning: failed to flush decision log: %v", err)
		logger.LogEvent(logger.EventLogFlushFailed, "antifraud-service", "storage", map[string]interface{}{
			"transaction_id": decision.TransactionID,
			"error":          err.Error(),
		})
	}

	if s.producer != nil {
		s.publishDecision(req, decision)
	}

	return decision, nil
}

// publishDecision отправляет событие о решении в Kafka.
// Сбой публикации логируется и не влияет на результат
func (s *DecisionServiceImpl) publishDecision(req *models.SubmitRequest, decision *models.Decision) {
	event := &models.KafkaDecisionEvent{
		EventID:   "evt_" + uuid.New().String(),
		EventType: "decision_made",
		Timestamp: time.Now(),
		Data: models.KafkaDecisionData{
			TransactionID:  decision.TransactionID,
			UserID:         req.UserID,
			Amount:         req.TransactionAmount,
			Recommendation: decision.Recommendation,
			Reason:         decision.Reason,
		},
	}

	if err := s.producer.SendDecisionEvent(event); err != nil {
		log.Printf("Warning: failed to publish decision event: %v", err)
		return
	}

	logger.LogEvent(logger.EventKafkaSent, "antifraud-service", "kafka", map[string]interface{}{
		"event_id":       event.EventID,
		"transaction_id": decision.TransactionID,
	})
}

// GetLogRecords возвращает последние записи полного журнала решений
func (s *DecisionServiceImpl) GetLogRecords(limit int) ([]models.LogRecord, error) {
	return s.sink.Full(limit), nil
}

// GetDeniedRecords возвращает последние записи журнала отказов
func (s *DecisionServiceImpl) GetDeniedRecords(limit int) ([]models.LogRecord, error) {
	return s.sink.Denied(limit), nil
}
