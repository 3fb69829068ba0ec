package fraud

import (
	"errors"

	"antifraud-system/internal/models"
)

// ErrInvalidTimestamp возвращается при неразбираемой дате транзакции.
// Текст ошибки совпадает с сообщением в ответе API, поэтому начинается с заглавной
var ErrInvalidTimestamp = errors.New("Invalid date format. Use ISO format YYYY-MM-DDTHH:MM:SS")

// LogSink принимает записи журнала решений. Реализуется storage.DecisionLog.
// Append не возвращает ошибку: запись попадает в память, материализация отдельно
type LogSink interface {
	Append(record *models.LogRecord)
}

// DecisionEngine применяет правила в фиксированном порядке приоритета и
// формирует решение approve/deny с единственным кодом причины
type DecisionEngine struct {
	rules *Ruleset
	sink  LogSink
}

// NewDecisionEngine создает движок принятия решений
func NewDecisionEngine(rules *Ruleset, sink LogSink) *DecisionEngine {
	return &DecisionEngine{
		rules: rules,
		sink:  sink,
	}
}

// Submit проверяет входящую транзакцию и возвращает решение.
// Валидация даты выполняется до любых правил и записей в журнал.
// Порядок правил, срабатывает первое:
//  1. чарджбэк в истории пользователя -> deny / previous_chargeback
//  2. класс HIGH и частая транзакция по пользователю или устройству -> deny / high_value_rapid_tx
//  3. превышен дневной лимит с учетом входящей суммы -> deny / daily_limit_exceeded
//  4. иначе -> approve / looks_ok
//
// Перед возвратом запись журнала передается в LogSink. Другого I/O движок не выполняет
func (e *DecisionEngine) Submit(req *models.SubmitRequest) (*models.Decision, error) {
	at, err := models.ParseTransactionDate(req.TransactionDate)
	if err != nil {
		return nil, ErrInvalidTimestamp
	}

	class := e.rules.ClassifyAmount(req.TransactionAmount)
	rapidUser, rapidDevice := e.rules.IsRapid(req.UserID, req.DeviceID, at)

	recommendation := models.RecommendationApprove
	reason := models.ReasonLooksOK
	switch {
	case e.rules.HasChargeback(req.UserID):
		recommendation = models.RecommendationDeny
		reason = models.ReasonPreviousChargeback
	case class == models.RiskClassHigh && (rapidUser || rapidDevice):
		recommendation = models.RecommendationDeny
		reason = models.ReasonHighValueRapidTx
	case e.rules.ExceedsDailyLimit(req.UserID, at, req.TransactionAmount):
		recommendation = models.RecommendationDeny
		reason = models.ReasonDailyLimitExceeded
	}

	record := &models.LogRecord{
		TransactionID:     req.TransactionID,
		MerchantID:        req.MerchantID,
		UserID:            req.UserID,
		CardNumber:        req.CardNumber,
		TransactionDate:   req.TransactionDate,
		TransactionAmount: req.TransactionAmount,
		DeviceID:          req.DeviceID,
		HasCbk:            false, // У новых транзакций чарджбэка еще нет
		TransactionClass:  class,
		RapidUser:         rapidUser,
		RapidDevice:       rapidDevice,
		Recommendation:    recommendation,
		Reason:            reason,
	}
	e.sink.Append(record)

	return &models.Decision{
		TransactionID:  req.TransactionID,
		Recommendation: recommendation,
		Reason:         reason,
	}, nil
}
