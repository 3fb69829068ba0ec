package csvlog

import (
	"encoding/csv"
	"os"
	"strconv"

	"antifraud-system/internal/models"
)

// Колонки обоих журналов решений, в порядке внешнего контракта
var logColumns = []string{
	"transaction_id", "merchant_id", "user_id", "card_number",
	"transaction_date", "transaction_amount", "device_id", "has_cbk",
	"transaction_class", "rapid_user", "rapid_device",
	"recommendation", "reason",
}

// appendRows дозаписывает строки в конец CSV файла.
// Заголовок пишется один раз, когда файл новый или пустой
func appendRows(path string, records []models.LogRecord) error {
	if len(records) == 0 {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return err
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(logColumns); err != nil {
			f.Close()
			return err
		}
	}
	for i := range records {
		if err := w.Write(recordRow(&records[i])); err != nil {
			f.Close()
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func recordRow(r *models.LogRecord) []string {
	return []string{
		strconv.FormatInt(r.TransactionID, 10),
		strconv.FormatInt(r.MerchantID, 10),
		strconv.FormatInt(r.UserID, 10),
		r.CardNumber,
		r.TransactionDate,
		strconv.FormatFloat(r.TransactionAmount, 'f', -1, 64),
		strconv.FormatInt(r.DeviceID, 10),
		strconv.FormatBool(r.HasCbk),
		r.TransactionClass,
		strconv.FormatBool(r.RapidUser),
		strconv.FormatBool(r.RapidDevice),
		r.Recommendation,
		r.Reason,
	}
}
