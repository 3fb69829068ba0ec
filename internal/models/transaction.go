package models

import (
	"fmt"
	"time"
)

// Рекомендации движка принятия решений
const (
	RecommendationApprove = "approve"
	RecommendationDeny    = "deny"
)

// Коды причин решения. Взаимоисключающие, перечислены в порядке приоритета правил
const (
	ReasonPreviousChargeback = "previous_chargeback"
	ReasonHighValueRapidTx   = "high_value_rapid_tx"
	ReasonDailyLimitExceeded = "daily_limit_exceeded"
	ReasonLooksOK            = "looks_ok"
)

// Классы риска транзакции по квартилям распределения сумм базовой выборки
const (
	RiskClassLow  = "LOW"
	RiskClassMed  = "MED"
	RiskClassHigh = "HIGH"
)

// Transaction представляет историческую транзакцию из базовой выборки.
// Выборка иммутабельна после загрузки, поэтому структура передается по значению
type Transaction struct {
	TransactionID     int64     `json:"transaction_id"`
	MerchantID        int64     `json:"merchant_id"`
	UserID            int64     `json:"user_id"`
	CardNumber        string    `json:"card_number"`
	TransactionDate   time.Time `json:"transaction_date"`
	TransactionAmount float64   `json:"transaction_amount"`
	DeviceID          int64     `json:"device_id"`
	HasCbk            bool      `json:"has_cbk"`
}

// SubmitRequest представляет входящую транзакцию на проверку.
// Дата приходит строкой и валидируется движком (ISO-8601)
type SubmitRequest struct {
	TransactionID     int64   `json:"transaction_id" binding:"required"`
	MerchantID        int64   `json:"merchant_id"`
	UserID            int64   `json:"user_id" binding:"required"`
	CardNumber        string  `json:"card_number"`
	TransactionDate   string  `json:"transaction_date" binding:"required"`
	TransactionAmount float64 `json:"transaction_amount" binding:"gte=0"`
	DeviceID          int64   `json:"device_id"`
}

// Decision представляет решение по транзакции: approve/deny плюс единственный код причины
type Decision struct {
	TransactionID  int64  `json:"transaction_id"`
	Recommendation string `json:"recommendation"`
	Reason         string `json:"reason"`
}

// Denied сообщает, была ли транзакция отклонена
func (d *Decision) Denied() bool {
	return d.Recommendation == RecommendationDeny
}

// LogRecord представляет строку журнала решений: поля транзакции плюс результаты анализа.
// Дата хранится в исходном строковом виде, как была отправлена клиентом
type LogRecord struct {
	TransactionID     int64   `json:"transaction_id"`
	MerchantID        int64   `json:"merchant_id"`
	UserID            int64   `json:"user_id"`
	CardNumber        string  `json:"card_number"`
	TransactionDate   string  `json:"transaction_date"`
	TransactionAmount float64 `json:"transaction_amount"`
	DeviceID          int64   `json:"device_id"`
	HasCbk            bool    `json:"has_cbk"`
	TransactionClass  string  `json:"transaction_class"`
	RapidUser         bool    `json:"rapid_user"`
	RapidDevice       bool    `json:"rapid_device"`
	Recommendation    string  `json:"recommendation"`
	Reason            string  `json:"reason"`
}

// KafkaDecisionEvent представляет событие о принятом решении для публикации в Kafka
type KafkaDecisionEvent struct {
	EventID   string            `json:"event_id"`
	EventType string            `json:"event_type"`
	Timestamp time.Time         `json:"timestamp"`
	Data      KafkaDecisionData `json:"data"`
}

// KafkaDecisionData представляет полезную нагрузку события решения
type KafkaDecisionData struct {
	TransactionID  int64   `json:"transaction_id"`
	UserID         int64   `json:"user_id"`
	Amount         float64 `json:"transaction_amount"`
	Recommendation string  `json:"recommendation"`
	Reason         string  `json:"reason"`
}

// Форматы даты, принимаемые как ISO-8601
var transactionDateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTransactionDate разбирает дату транзакции в одном из допустимых ISO-8601 форматов
func ParseTransactionDate(value string) (time.Time, error) {
	for _, layout := range transactionDateLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported transaction_date %q", value)
}

// SameCalendarDay сообщает, приходятся ли два момента на одну календарную дату
// (сравнивается только компонент даты, не скользящее 24-часовое окно)
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
