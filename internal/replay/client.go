package replay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"antifraud-system/internal/models"
)

// Статусы обработки строк выборки
const (
	StatusSuccess       = "success"
	StatusFailedRequest = "failed_request"
)

// Пауза между запросами по умолчанию, для стабильности сервиса
const DefaultPause = 200 * time.Millisecond

// Client проигрывает историческую выборку против работающего сервиса,
// отправляя транзакции по одной
type Client struct {
	baseURL    string
	httpClient *http.Client
	pause      time.Duration
}

// Outcome представляет результат отправки одной транзакции
type Outcome struct {
	Request        models.SubmitRequest
	Status         string // success, error_<код>, failed_request
	Recommendation string
	Reason         string
	Timestamp      time.Time
}

// Denied сообщает, была ли транзакция отклонена сервисом
func (o *Outcome) Denied() bool {
	return o.Status == StatusSuccess && o.Recommendation == models.RecommendationDeny
}

// Summary агрегирует итоги проигрывания выборки
type Summary struct {
	Total     int
	Succeeded int
	Denied    int
	Failed    int
}

// NewClient создает клиент проигрывания. pause <= 0 отключает паузу
func NewClient(baseURL string, pause time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		pause:      pause,
	}
}

// Run отправляет каждую транзакцию выборки на проверку и собирает результаты.
// Ошибки отдельных запросов не прерывают проигрывание
func (c *Client) Run(ctx context.Context, transactions []models.Transaction) ([]Outcome, Summary, error) {
	outcomes := make([]Outcome, 0, len(transactions))
	var summary Summary

	for i := range transactions {
		if err := ctx.Err(); err != nil {
			return outcomes, summary, err
		}

		req := submitRequestFrom(&transactions[i])
		outcome := Outcome{
			Request:   *req,
			Timestamp: time.Now(),
		}

		decision, statusCode, err := c.send(ctx, req)
		switch {
		case err != nil:
			outcome.Status = StatusFailedRequest
			outcome.Reason = err.Error()
			summary.Failed++
			log.Printf("Failed to send transaction %d: %v", req.TransactionID, err)
		case statusCode != http.StatusOK:
			outcome.Status = fmt.Sprintf("error_%d", statusCode)
			summary.Failed++
			log.Printf("Error in transaction %d: status %d", req.TransactionID, statusCode)
		default:
			outcome.Status = StatusSuccess
			outcome.Recommendation = decision.Recommendation
			outcome.Reason = decision.Reason
			summary.Succeeded++
			if decision.Denied() {
				summary.Denied++
			}
			log.Printf("Transaction %d processed: %s - %s", req.TransactionID, decision.Recommendation, decision.Reason)
		}

		outcomes = append(outcomes, outcome)
		summary.Total++

		if c.pause > 0 && i < len(transactions)-1 {
			select {
			case <-ctx.Done():
				return outcomes, summary, ctx.Err()
			case <-time.After(c.pause):
			}
		}
	}

	return outcomes, summary, nil
}

// send отправляет одну транзакцию на /api/v1/recommend
func (c *Client) send(ctx context.Context, req *models.SubmitRequest) (*models.Decision, int, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to marshal transaction: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/recommend", bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, resp.StatusCode, nil
	}

	var decision models.Decision
	if err := json.NewDecoder(resp.Body).Decode(&decision); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to decode decision: %w", err)
	}
	return &decision, resp.StatusCode, nil
}

// submitRequestFrom переводит историческую транзакцию во входной формат API
func submitRequestFrom(tx *models.Transaction) *models.SubmitRequest {
	return &models.SubmitRequest{
		TransactionID:     tx.TransactionID,
		MerchantID:        tx.MerchantID,
		UserID:            tx.UserID,
		CardNumber:        tx.CardNumber,
		TransactionDate:   tx.TransactionDate.Format("2006-01-02T15:04:05"),
		TransactionAmount: tx.TransactionAmount,
		DeviceID:          tx.DeviceID,
	}
}
