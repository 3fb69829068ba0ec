package generator

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"antifraud-system/internal/models"
)

// TransactionGenerator генерирует случайные транзакции для тестирования сервиса.
// Суммы подбираются относительно квартилей базовой выборки, чтобы класс
// сгенерированной транзакции был предсказуем
type TransactionGenerator struct {
	rand *rand.Rand
	q1   float64
	q3   float64
}

// NewTransactionGenerator создает генератор с квартилями распределения сумм.
// Вырожденные квартили заменяются значениями по умолчанию
func NewTransactionGenerator(q1, q3 float64) *TransactionGenerator {
	if q1 <= 0 || q3 <= q1 {
		q1, q3 = 100.0, 1000.0
	}
	return &TransactionGenerator{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
		q1:   q1,
		q3:   q3,
	}
}

// GenerateRandomTransaction генерирует транзакцию случайного класса риска
func (g *TransactionGenerator) GenerateRandomTransaction() *models.SubmitRequest {
	classes := []string{models.RiskClassLow, models.RiskClassMed, models.RiskClassHigh}
	return g.GenerateTransaction(classes[g.rand.Intn(len(classes))])
}

// GenerateTransaction генерирует транзакцию с заданным классом риска
func (g *TransactionGenerator) GenerateTransaction(riskClass string) *models.SubmitRequest {
	// Уникальный ID на основе времени и случайного числа
	baseID := time.Now().UnixNano()%1_000_000_000 + int64(g.rand.Intn(1_000_000))

	req := &models.SubmitRequest{
		TransactionID:   baseID,
		MerchantID:      int64(1000 + g.rand.Intn(9000)),
		UserID:          int64(1 + g.rand.Intn(100000)),
		CardNumber:      g.randomCardNumber(),
		TransactionDate: time.Now().Format("2006-01-02T15:04:05"),
		DeviceID:        int64(g.rand.Intn(1000)),
	}

	switch riskClass {
	case models.RiskClassLow:
		// Строго ниже 25-го перцентиля
		req.TransactionAmount = roundToTwoDecimals(g.q1 * (0.1 + 0.8*g.rand.Float64()))
	case models.RiskClassHigh:
		// Строго выше 75-го перцентиля
		req.TransactionAmount = roundToTwoDecimals(g.q3 * (1.1 + 2.0*g.rand.Float64()))
	default:
		// Между квартилями включительно
		req.TransactionAmount = roundToTwoDecimals(g.q1 + (g.q3-g.q1)*g.rand.Float64())
	}

	return req
}

// randomCardNumber генерирует маскированный номер карты в формате выборки
func (g *TransactionGenerator) randomCardNumber() string {
	return fmt.Sprintf("%06d******%04d", 400000+g.rand.Intn(200000), g.rand.Intn(10000))
}

// roundToTwoDecimals округляет число до 2 знаков после запятой
func roundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}
