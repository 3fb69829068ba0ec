package replay

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"antifraud-system/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTransactions() []models.Transaction {
	at := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	return []models.Transaction{
		{TransactionID: 1, MerchantID: 10, UserID: 100, TransactionDate: at, TransactionAmount: 100},
		{TransactionID: 2, MerchantID: 10, UserID: 200, TransactionDate: at, TransactionAmount: 5000},
		{TransactionID: 3, MerchantID: 11, UserID: 300, TransactionDate: at, TransactionAmount: 50},
	}
}

// recommendStub отвечает на /api/v1/recommend по transaction_id
func recommendStub(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/recommend", r.URL.Path)

		var req models.SubmitRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		switch req.TransactionID {
		case 2:
			json.NewEncoder(w).Encode(models.Decision{
				TransactionID:  req.TransactionID,
				Recommendation: models.RecommendationDeny,
				Reason:         models.ReasonDailyLimitExceeded,
			})
		case 3:
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid date format. Use ISO format YYYY-MM-DDTHH:MM:SS"})
		default:
			json.NewEncoder(w).Encode(models.Decision{
				TransactionID:  req.TransactionID,
				Recommendation: models.RecommendationApprove,
				Reason:         models.ReasonLooksOK,
			})
		}
	}))
}

func TestRun_CollectsOutcomes(t *testing.T) {
	server := recommendStub(t)
	defer server.Close()

	client := NewClient(server.URL, 0)
	outcomes, summary, err := client.Run(context.Background(), sampleTransactions())

	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	assert.Equal(t, StatusSuccess, outcomes[0].Status)
	assert.Equal(t, models.RecommendationApprove, outcomes[0].Recommendation)
	assert.False(t, outcomes[0].Denied())

	assert.Equal(t, StatusSuccess, outcomes[1].Status)
	assert.True(t, outcomes[1].Denied())
	assert.Equal(t, models.ReasonDailyLimitExceeded, outcomes[1].Reason)

	// Ошибка 400 не прерывает проигрывание
	assert.Equal(t, "error_400", outcomes[2].Status)
	assert.False(t, outcomes[2].Denied())

	assert.Equal(t, Summary{Total: 3, Succeeded: 2, Denied: 1, Failed: 1}, summary)

	// Дата сериализуется в формате ISO без таймзоны
	assert.Equal(t, "2024-01-01T10:00:00", outcomes[0].Request.TransactionDate)
}

func TestRun_UnreachableService(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 0)
	outcomes, summary, err := client.Run(context.Background(), sampleTransactions()[:1])

	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, StatusFailedRequest, outcomes[0].Status)
	assert.Equal(t, 1, summary.Failed)
}

func TestRun_CanceledContext(t *testing.T) {
	server := recommendStub(t)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL, 0)
	outcomes, _, err := client.Run(ctx, sampleTransactions())

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, outcomes)
}

func readReport(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteReports(t *testing.T) {
	server := recommendStub(t)
	defer server.Close()

	client := NewClient(server.URL, 0)
	outcomes, _, err := client.Run(context.Background(), sampleTransactions())
	require.NoError(t, err)

	outDir := t.TempDir()
	require.NoError(t, WriteReports(outcomes, outDir))

	// Результаты: только успешные отправки
	results := readReport(t, filepath.Join(outDir, ResultsFileName))
	require.Len(t, results, 3)
	assert.Equal(t, resultColumns, results[0])
	assert.Equal(t, "1", results[1][0])
	assert.Equal(t, "2", results[2][0])

	// Отказы: подмножество успешных с recommendation = deny
	denied := readReport(t, filepath.Join(outDir, DeniedFileName))
	require.Len(t, denied, 2)
	assert.Equal(t, "2", denied[1][0])
	assert.Equal(t, "deny", denied[1][7])

	// Статусы: по строке на каждую отправку
	statuses := readReport(t, filepath.Join(outDir, StatusFileName))
	require.Len(t, statuses, 4)
	assert.Equal(t, statusColumns, statuses[0])
	assert.Equal(t, StatusSuccess, statuses[1][1])
	assert.Equal(t, "error_400", statuses[3][1])
}
