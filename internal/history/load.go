package history

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"antifraud-system/internal/models"
)

// ErrDataUnavailable возвращается, когда источник базовой выборки недоступен.
// Ошибка не фатальна: вызывающий получает пустое хранилище и продолжает работу
var ErrDataUnavailable = errors.New("historical data unavailable")

// Обязательные колонки источника базовой выборки
var baselineColumns = []string{
	"transaction_id", "merchant_id", "user_id", "card_number",
	"transaction_date", "transaction_amount", "device_id", "has_cbk",
}

// Load читает базовую выборку из CSV файла.
// Отсутствующий файл деградирует до пустого хранилища с ошибкой ErrDataUnavailable.
// Строки с неразбираемыми полями пропускаются с предупреждением
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Empty(), fmt.Errorf("baseline source %s: %w", path, ErrDataUnavailable)
		}
		return Empty(), fmt.Errorf("failed to open baseline source: %w", err)
	}
	defer f.Close()

	store, err := Read(f)
	if err != nil {
		return Empty(), fmt.Errorf("failed to read baseline source %s: %w", path, err)
	}
	return store, nil
}

// Read читает базовую выборку из произвольного CSV потока
func Read(r io.Reader) (*Store, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return Empty(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var baseline []models.Transaction
	skipped := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		tx, err := parseRow(row, columns)
		if err != nil {
			skipped++
			log.Printf("Skipping baseline row: %v", err)
			continue
		}
		baseline = append(baseline, tx)
	}

	if skipped > 0 {
		log.Printf("Baseline loaded with %d skipped rows", skipped)
	}
	return newStore(baseline), nil
}

// mapColumns сопоставляет имена колонок заголовка их позициям
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range baselineColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("baseline source missing column %q", required)
		}
	}
	return columns, nil
}

func parseRow(row []string, columns map[string]int) (models.Transaction, error) {
	field := func(name string) string {
		idx := columns[name]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	txID, err := strconv.ParseInt(field("transaction_id"), 10, 64)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("bad transaction_id %q", field("transaction_id"))
	}
	merchantID, err := strconv.ParseInt(field("merchant_id"), 10, 64)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("bad merchant_id %q", field("merchant_id"))
	}
	userID, err := strconv.ParseInt(field("user_id"), 10, 64)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("bad user_id %q", field("user_id"))
	}
	amount, err := strconv.ParseFloat(field("transaction_amount"), 64)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("bad transaction_amount %q", field("transaction_amount"))
	}
	date, err := models.ParseTransactionDate(field("transaction_date"))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("bad transaction_date: %v", err)
	}

	// device_id опционален, пустое значение означает неизвестное устройство (0)
	var deviceID int64
	if raw := field("device_id"); raw != "" {
		deviceID, err = strconv.ParseInt(strings.TrimSuffix(raw, ".0"), 10, 64)
		if err != nil {
			return models.Transaction{}, fmt.Errorf("bad device_id %q", raw)
		}
	}

	return models.Transaction{
		TransactionID:     txID,
		MerchantID:        merchantID,
		UserID:            userID,
		CardNumber:        field("card_number"),
		TransactionDate:   date,
		TransactionAmount: amount,
		DeviceID:          deviceID,
		HasCbk:            parseBool(field("has_cbk")),
	}, nil
}

func parseBool(value string) bool {
	switch strings.ToLower(value) {
	case "true", "1", "t", "yes":
		return true
	default:
		return false
	}
}
