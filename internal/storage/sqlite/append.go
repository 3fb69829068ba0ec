package sqlite

import (
	"fmt"

	"antifraud-system/internal/models"
)

// appendRecords вставляет записи в указанную таблицу журнала одной транзакцией.
// Только INSERT: журнал append-only, порядок строк задается автоинкрементным id
func (s *Storage) appendRecords(table string, records []models.LogRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (
			transaction_id, merchant_id, user_id, card_number,
			transaction_date, transaction_amount, device_id, has_cbk,
			transaction_class, rapid_user, rapid_device, recommendation, reason
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, table)

	stmt, err := tx.Prepare(query)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := range records {
		r := &records[i]
		if _, err := stmt.Exec(
			r.TransactionID, r.MerchantID, r.UserID, r.CardNumber,
			r.TransactionDate, r.TransactionAmount, r.DeviceID, r.HasCbk,
			r.TransactionClass, r.RapidUser, r.RapidDevice, r.Recommendation, r.Reason,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
	}

	return tx.Commit()
}
