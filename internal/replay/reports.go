package replay

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Имена файлов отчетов проигрывания
const (
	ResultsFileName = "transactional-results.csv"
	DeniedFileName  = "denied_logs.csv"
	StatusFileName  = "logs.csv"
)

var resultColumns = []string{
	"transaction_id", "merchant_id", "user_id", "card_number",
	"transaction_date", "transaction_amount", "device_id",
	"recommendation", "reason",
}

var statusColumns = []string{
	"transaction_id", "status", "recommendation", "reason", "timestamp",
}

// WriteReports записывает три клиентских отчета в outDir:
// результаты успешных проверок, отклоненные транзакции и статусы всех отправок
func WriteReports(outcomes []Outcome, outDir string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var results, denied, statuses [][]string
	for i := range outcomes {
		o := &outcomes[i]
		if o.Status == StatusSuccess {
			results = append(results, resultRow(o))
		}
		if o.Denied() {
			denied = append(denied, resultRow(o))
		}
		statuses = append(statuses, statusRow(o))
	}

	if err := writeCSV(filepath.Join(outDir, ResultsFileName), resultColumns, results); err != nil {
		return err
	}
	if err := writeCSV(filepath.Join(outDir, DeniedFileName), resultColumns, denied); err != nil {
		return err
	}
	return writeCSV(filepath.Join(outDir, StatusFileName), statusColumns, statuses)
}

func resultRow(o *Outcome) []string {
	return []string{
		strconv.FormatInt(o.Request.TransactionID, 10),
		strconv.FormatInt(o.Request.MerchantID, 10),
		strconv.FormatInt(o.Request.UserID, 10),
		o.Request.CardNumber,
		o.Request.TransactionDate,
		strconv.FormatFloat(o.Request.TransactionAmount, 'f', -1, 64),
		strconv.FormatInt(o.Request.DeviceID, 10),
		o.Recommendation,
		o.Reason,
	}
}

func statusRow(o *Outcome) []string {
	return []string{
		strconv.FormatInt(o.Request.TransactionID, 10),
		o.Status,
		o.Recommendation,
		o.Reason,
		o.Timestamp.Format(time.RFC3339),
	}
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
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
