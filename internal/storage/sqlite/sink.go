package sqlite

import (
	"fmt"
	"time"

	"antifraud-system/internal/models"
	"antifraud-system/internal/storage"
)

const (
	flushMaxRetries = 3
	flushRetryDelay = 50 * time.Millisecond
)

// Sink материализует журнал решений в таблицы SQLite.
// Последовательности живут в общем Ledger, Flush дописывает только
// еще не сохраненные записи
type Sink struct {
	*storage.Ledger
	db *Storage
}

// NewSink создает SQLite журнал решений поверх открытого соединения
func NewSink(db *Storage) *Sink {
	return &Sink{
		Ledger: storage.NewLedger(),
		db:     db,
	}
}

// Flush вставляет еще не сохраненные записи в decision_logs и denied_logs.
// Вставка повторяется при блокировке БД; водяной знак таблицы продвигается
// только после успешного коммита
func (s *Sink) Flush() error {
	return s.FlushWith(func(full, denied []models.LogRecord) (int, int, error) {
		nFull, nDenied := 0, 0
		var firstErr error

		err := retryOperation(func() error {
			return s.db.appendRecords(fullLogTable, full)
		}, flushMaxRetries, flushRetryDelay)
		if err != nil {
			firstErr = fmt.Errorf("%w: %s: %v", storage.ErrWriteFailure, fullLogTable, err)
		} else {
			nFull = len(full)
		}

		err = retryOperation(func() error {
			return s.db.appendRecords(deniedLogTable, denied)
		}, flushMaxRetries, flushRetryDelay)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%w: %s: %v", storage.ErrWriteFailure, deniedLogTable, err)
			}
		} else {
			nDenied = len(denied)
		}

		return nFull, nDenied, firstErr
	})
}

// Close материализует остаток журнала и закрывает соединение с БД
func (s *Sink) Close() error {
	flushErr := s.Flush()
	if err := s.db.Close(); err != nil {
		return err
	}
	return flushErr
}
