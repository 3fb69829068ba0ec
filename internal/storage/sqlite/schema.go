package sqlite

// Имена таблиц журнала решений
const (
	fullLogTable   = "decision_logs"
	deniedLogTable = "denied_logs"
)

// initSchema инициализирует схему БД.
// Обе таблицы append-only с одинаковым набором колонок; автоинкрементный id
// фиксирует порядок вставки. UPDATE и DELETE к этим таблицам не выполняются
func (s *Storage) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS decision_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		transaction_id INTEGER NOT NULL,
		merchant_id INTEGER NOT NULL,
		user_id INTEGER NOT NULL,
		card_number TEXT NOT NULL,
		transaction_date TEXT NOT NULL,
		transaction_amount REAL NOT NULL,
		device_id INTEGER NOT NULL DEFAULT 0,
		has_cbk BOOLEAN NOT NULL DEFAULT 0,
		transaction_class TEXT NOT NULL,
		rapid_user BOOLEAN NOT NULL,
		rapid_device BOOLEAN NOT NULL,
		recommendation TEXT NOT NULL,
		reason TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS denied_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		transaction_id INTEGER NOT NULL,
		merchant_id INTEGER NOT NULL,
		user_id INTEGER NOT NULL,
		card_number TEXT NOT NULL,
		transaction_date TEXT NOT NULL,
		transaction_amount REAL NOT NULL,
		device_id INTEGER NOT NULL DEFAULT 0,
		has_cbk BOOLEAN NOT NULL DEFAULT 0,
		transaction_class TEXT NOT NULL,
		rapid_user BOOLEAN NOT NULL,
		rapid_device BOOLEAN NOT NULL,
		recommendation TEXT NOT NULL,
		reason TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_decision_logs_transaction_id ON decision_logs(transaction_id);
	CREATE INDEX IF NOT EXISTS idx_decision_logs_user_id ON decision_logs(user_id);
	CREATE INDEX IF NOT EXISTS idx_denied_logs_transaction_id ON denied_logs(transaction_id);
	CREATE INDEX IF NOT EXISTS idx_denied_logs_user_id ON denied_logs(user_id);
	`

	_, err := s.DB.Exec(query)
	return err
}
