package services

import (
	"antifraud-system/internal/models"
)

// DecisionService определяет интерфейс сервиса принятия решений
type DecisionService interface {
	// SubmitTransaction проверяет транзакцию и возвращает решение
	SubmitTransaction(req *models.SubmitRequest) (*models.Decision, error)

	// GetLogRecords возвращает последние записи полного журнала решений
	GetLogRecords(limit int) ([]models.LogRecord, error)

	// GetDeniedRecords возвращает последние записи журнала отказов
	GetDeniedRecords(limit int) ([]models.LogRecord, error)
}
