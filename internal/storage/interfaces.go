package storage

import (
	"errors"

	"antifraud-system/internal/models"
)

// ErrWriteFailure возвращается, когда материализация журнала не удалась.
// Записи в памяти при этом сохраняются и будут записаны следующим Flush
var ErrWriteFailure = errors.New("decision log write failure")

// DecisionLog определяет интерфейс журнала решений.
// Журнал append-only: операций обновления и удаления не существует.
// Отклоненные транзакции дублируются во второй, отфильтрованный журнал
type DecisionLog interface {
	// Append добавляет запись в полный журнал; при recommendation=deny
	// запись попадает и в журнал отказов. Только в память, без I/O
	Append(record *models.LogRecord)

	// Flush материализует еще не сохраненные записи во внешнее назначение
	Flush() error

	// Full возвращает последние limit записей полного журнала в порядке вставки
	Full(limit int) []models.LogRecord

	// Denied возвращает последние limit записей журнала отказов в порядке вставки
	Denied(limit int) []models.LogRecord

	// Close материализует остаток и освобождает ресурсы журнала
	Close() error
}
