package storage

import (
	"sync"

	"antifraud-system/internal/models"
)

// Ledger хранит обе последовательности журнала в памяти и отслеживает,
// какая их часть уже материализована. Единственное разделяемое изменяемое
// состояние системы: мьютекс сериализует Append и Flush, поэтому запись об
// отказе никогда не расходится с записью полного журнала.
// Встраивается в конкретные бэкенды (CSV, SQLite)
type Ledger struct {
	mu              sync.Mutex
	full            []models.LogRecord
	denied          []models.LogRecord
	persistedFull   int
	persistedDenied int
}

// NewLedger создает пустой журнал в памяти
func NewLedger() *Ledger {
	return &Ledger{}
}

// Append добавляет запись в полный журнал и, для отклоненных транзакций,
// в журнал отказов в той же критической секции.
// Дубликаты по transaction_id не отбрасываются: повторная отправка дает повторную строку
func (l *Ledger) Append(record *models.LogRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.full = append(l.full, *record)
	if record.Recommendation == models.RecommendationDeny {
		l.denied = append(l.denied, *record)
	}
}

// FlushWith отдает бэкенду срезы еще не материализованных записей.
// Бэкенд возвращает, сколько записей каждой последовательности он сохранил;
// водяные знаки продвигаются ровно на эти количества, поэтому при сбое
// несохраненные записи остаются в очереди на следующий Flush.
// Мьютекс удерживается на время материализации: однописательная дисциплина
func (l *Ledger) FlushWith(persist func(full, denied []models.LogRecord) (int, int, error)) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	pendingFull := l.full[l.persistedFull:]
	pendingDenied := l.denied[l.persistedDenied:]
	if len(pendingFull) == 0 && len(pendingDenied) == 0 {
		return nil
	}

	nFull, nDenied, err := persist(pendingFull, pendingDenied)
	l.persistedFull += nFull
	l.persistedDenied += nDenied
	return err
}

// Full возвращает копию последних limit записей полного журнала.
// limit <= 0 или больше размера журнала означает весь журнал
func (l *Ledger) Full(limit int) []models.LogRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	return tail(l.full, limit)
}

// Denied возвращает копию последних limit записей журнала отказов
func (l *Ledger) Denied(limit int) []models.LogRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	return tail(l.denied, limit)
}

func tail(records []models.LogRecord, limit int) []models.LogRecord {
	if limit <= 0 || limit > len(records) {
		limit = len(records)
	}
	result := make([]models.LogRecord, limit)
	copy(result, records[len(records)-limit:])
	return result
}
