package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"antifraud-system/internal/fraud"
	"antifraud-system/internal/generator"
	"antifraud-system/internal/logger"
	"antifraud-system/internal/models"
	"antifraud-system/internal/services"
)

type Handlers struct {
	decisionService services.DecisionService
	generator       *generator.TransactionGenerator
}

// Создает новые обработчики REST API
func NewHandlers(decisionService services.DecisionService, gen *generator.TransactionGenerator) *Handlers {
	return &Handlers{
		decisionService: decisionService,
		generator:       gen,
	}
}

// Welcome возвращает приветственное сообщение API
// @Summary Приветствие
// @Description Возвращает приветственное сообщение AntiFraud API
// @Tags service
// @Produce json
// @Success 200 {object} map[string]string "Приветствие"
// @Router / [get]
func (h *Handlers) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the AntiFraud API"})
}

// Recommend обрабатывает POST запрос на проверку транзакции
// @Summary Проверить транзакцию
// @Description Принимает транзакцию, применяет антифрод-правила к базовой выборке и возвращает рекомендацию approve/deny с кодом причины. Решение дописывается в журналы.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body models.SubmitRequest true "Данные транзакции"
// @Success 200 {object} models.Decision "Решение по транзакции"
// @Failure 400 {object} map[string]string "Bad Request - неверный формат данных или даты"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /recommend [post]
func (h *Handlers) Recommend(c *gin.Context) {
	var req models.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Логируем получение транзакции
	logger.LogEvent(logger.EventTransactionReceived, "antifraud-service", "api", map[string]interface{}{
		"transaction_id": req.TransactionID,
		"user_id":        req.UserID,
		"amount":         req.TransactionAmount,
	})

	decision, err := h.decisionService.SubmitTransaction(&req)
	if err != nil {
		// Ошибка валидации даты — клиентская, до каких-либо изменений состояния
		if errors.Is(err, fraud.ErrInvalidTimestamp) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process transaction"})
		return
	}

	c.JSON(http.StatusOK, decision)
}

// GetLogs возвращает записи полного журнала решений
// @Summary Получить журнал решений
// @Description Возвращает последние записи полного журнала решений в порядке вставки
// @Tags logs
// @Produce json
// @Param limit query int false "Лимит результатов (максимум 500)" default(100)
// @Success 200 {object} map[string]interface{} "Записи журнала"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /logs [get]
func (h *Handlers) GetLogs(c *gin.Context) {
	records, err := h.decisionService.GetLogRecords(parseLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get log records"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}

// GetDeniedLogs возвращает записи журнала отказов
// @Summary Получить журнал отказов
// @Description Возвращает последние записи журнала отклоненных транзакций в порядке вставки
// @Tags logs
// @Produce json
// @Param limit query int false "Лимит результатов (максимум 500)" default(100)
// @Success 200 {object} map[string]interface{} "Записи журнала отказов"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /logs/denied [get]
func (h *Handlers) GetDeniedLogs(c *gin.Context) {
	records, err := h.decisionService.GetDeniedRecords(parseLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get denied records"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}

// GenerateRandomTransaction генерирует случайную транзакцию
// @Summary Сгенерировать случайную транзакцию
// @Description Генерирует случайную транзакцию для тестирования. Параметр class задает целевой класс риска (LOW, MED, HIGH)
// @Tags transactions
// @Produce json
// @Param class query string false "Класс риска (LOW, MED, HIGH)"
// @Success 200 {object} models.SubmitRequest "Сгенерированная транзакция"
// @Router /transactions/generate [get]
func (h *Handlers) GenerateRandomTransaction(c *gin.Context) {
	var tx *models.SubmitRequest
	switch c.Query("class") {
	case models.RiskClassLow, models.RiskClassMed, models.RiskClassHigh:
		tx = h.generator.GenerateTransaction(c.Query("class"))
	default:
		tx = h.generator.GenerateRandomTransaction()
	}

	c.JSON(http.StatusOK, tx)
}

// parseLimit читает query параметр limit (по умолчанию 100, максимум 500)
func parseLimit(c *gin.Context) int {
	limit := 100
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 500 {
			limit = parsed
		}
	}
	return limit
}
