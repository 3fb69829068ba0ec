package csvlog

import (
	"fmt"
	"os"
	"path/filepath"

	"antifraud-system/internal/models"
	"antifraud-system/internal/storage"
)

// Sink материализует журнал решений в два CSV файла: полный журнал и журнал отказов.
// Семантика истинного дозаписывания: при каждом Flush в файлы дописываются только
// еще не сохраненные строки, файлы никогда не переписываются целиком
type Sink struct {
	*storage.Ledger
	fullPath   string
	deniedPath string
}

// NewSink создает CSV журнал решений, при необходимости создавая директории
func NewSink(fullPath, deniedPath string) (*Sink, error) {
	for _, path := range []string{fullPath, deniedPath} {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	return &Sink{
		Ledger:     storage.NewLedger(),
		fullPath:   fullPath,
		deniedPath: deniedPath,
	}, nil
}

// Flush дописывает еще не сохраненные записи в оба файла.
// Водяной знак каждого файла продвигается только при успешной дозаписи,
// поэтому сбой не теряет записи — они уйдут следующим Flush
func (s *Sink) Flush() error {
	return s.FlushWith(func(full, denied []models.LogRecord) (int, int, error) {
		nFull, nDenied := 0, 0
		var firstErr error

		if err := appendRows(s.fullPath, full); err != nil {
			firstErr = fmt.Errorf("%w: full log: %v", storage.ErrWriteFailure, err)
		} else {
			nFull = len(full)
		}

		if err := appendRows(s.deniedPath, denied); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%w: denied log: %v", storage.ErrWriteFailure, err)
			}
		} else {
			nDenied = len(denied)
		}

		return nFull, nDenied, firstErr
	})
}

// Close материализует остаток журнала. Открытых дескрипторов Sink не держит
func (s *Sink) Close() error {
	return s.Flush()
}
