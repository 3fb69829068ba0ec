package storage

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"antifraud-system/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(txID int64, recommendation string) *models.LogRecord {
	return &models.LogRecord{
		TransactionID:   txID,
		UserID:          txID,
		Recommendation:  recommendation,
		Reason:          models.ReasonLooksOK,
		TransactionDate: "2024-01-01T10:00:00",
	}
}

func TestLedger_AppendConcurrent(t *testing.T) {
	ledger := NewLedger()

	// 50 конкурентных записей: каждая должна попасть в полный журнал ровно один раз
	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(txID int64) {
			defer wg.Done()
			rec := models.RecommendationApprove
			if txID%2 == 0 {
				rec = models.RecommendationDeny
			}
			ledger.Append(record(txID, rec))
		}(int64(i))
	}
	wg.Wait()

	full := ledger.Full(0)
	denied := ledger.Denied(0)
	assert.Len(t, full, 50)
	assert.Len(t, denied, 25)

	seen := make(map[int64]int)
	for _, r := range full {
		seen[r.TransactionID]++
	}
	for txID := int64(1); txID <= 50; txID++ {
		assert.Equal(t, 1, seen[txID], fmt.Sprintf("transaction %d", txID))
	}
}

func TestLedger_DeniedIsSubsequenceOfFull(t *testing.T) {
	ledger := NewLedger()

	ledger.Append(record(1, models.RecommendationApprove))
	ledger.Append(record(2, models.RecommendationDeny))
	ledger.Append(record(3, models.RecommendationApprove))
	ledger.Append(record(4, models.RecommendationDeny))

	full := ledger.Full(0)
	denied := ledger.Denied(0)

	require.Len(t, full, 4)
	require.Len(t, denied, 2)
	assert.Equal(t, int64(2), denied[0].TransactionID)
	assert.Equal(t, int64(4), denied[1].TransactionID)

	// Журнал отказов — подпоследовательность полного журнала в том же порядке
	i := 0
	for _, r := range full {
		if i < len(denied) && r.TransactionID == denied[i].TransactionID {
			i++
		}
	}
	assert.Equal(t, len(denied), i)
}

func TestLedger_AppendKeepsDuplicates(t *testing.T) {
	ledger := NewLedger()

	ledger.Append(record(7, models.RecommendationDeny))
	ledger.Append(record(7, models.RecommendationDeny))

	assert.Len(t, ledger.Full(0), 2)
	assert.Len(t, ledger.Denied(0), 2)
}

func TestLedger_FullLimit(t *testing.T) {
	ledger := NewLedger()
	for i := 1; i <= 5; i++ {
		ledger.Append(record(int64(i), models.RecommendationApprove))
	}

	last2 := ledger.Full(2)
	require.Len(t, last2, 2)
	assert.Equal(t, int64(4), last2[0].TransactionID)
	assert.Equal(t, int64(5), last2[1].TransactionID)

	// Лимит больше журнала и неположительный лимит отдают все
	assert.Len(t, ledger.Full(100), 5)
	assert.Len(t, ledger.Full(0), 5)
	assert.Len(t, ledger.Full(-1), 5)
}

func TestLedger_FlushWithAdvancesWatermarks(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(record(1, models.RecommendationApprove))
	ledger.Append(record(2, models.RecommendationDeny))

	var gotFull, gotDenied int
	err := ledger.FlushWith(func(full, denied []models.LogRecord) (int, int, error) {
		gotFull, gotDenied = len(full), len(denied)
		return len(full), len(denied), nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, gotFull)
	assert.Equal(t, 1, gotDenied)

	// Повторный сброс без новых записей не трогает бэкенд
	called := false
	err = ledger.FlushWith(func(full, denied []models.LogRecord) (int, int, error) {
		called = true
		return 0, 0, nil
	})
	require.NoError(t, err)
	assert.False(t, called)

	// После новой записи в очереди только она
	ledger.Append(record(3, models.RecommendationApprove))
	err = ledger.FlushWith(func(full, denied []models.LogRecord) (int, int, error) {
		gotFull, gotDenied = len(full), len(denied)
		return len(full), len(denied), nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, gotFull)
	assert.Equal(t, 0, gotDenied)
}

func TestLedger_FlushWithPartialFailureRetainsPending(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(record(1, models.RecommendationDeny))
	ledger.Append(record(2, models.RecommendationDeny))

	// Бэкенд сохранил полный журнал, но упал на журнале отказов
	failure := errors.New("disk full")
	err := ledger.FlushWith(func(full, denied []models.LogRecord) (int, int, error) {
		return len(full), 0, failure
	})
	require.ErrorIs(t, err, failure)

	// Несохраненные отказы остаются в очереди, полный журнал не дублируется
	err = ledger.FlushWith(func(full, denied []models.LogRecord) (int, int, error) {
		assert.Empty(t, full)
		assert.Len(t, denied, 2)
		return len(full), len(denied), nil
	})
	require.NoError(t, err)

	// Записи по-прежнему читаются целиком независимо от материализации
	assert.Len(t, ledger.Full(0), 2)
	assert.Len(t, ledger.Denied(0), 2)
}
