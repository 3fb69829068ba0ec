package kafka

import (
	"antifraud-system/internal/models"
)

// Producer определяет интерфейс для публикации событий решений в Kafka
type Producer interface {
	SendDecisionEvent(event *models.KafkaDecisionEvent) error

	Close() error
}
