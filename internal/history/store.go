package history

import (
	"antifraud-system/internal/models"
)

// Store владеет базовой выборкой исторических транзакций.
// Выборка загружается один раз при старте процесса и после этого не меняется:
// все методы чтения работают без блокировок, порядок транзакций сохраняется.
// Принятые движком решения обратно в выборку не попадают
type Store struct {
	baseline []models.Transaction
	byUser   map[int64][]models.Transaction
	byDevice map[int64][]models.Transaction
	amounts  []float64
}

// newStore строит хранилище и индексы по пользователю и устройству.
// Индексы допустимы, потому что выборка иммутабельна после загрузки
func newStore(baseline []models.Transaction) *Store {
	s := &Store{
		baseline: baseline,
		byUser:   make(map[int64][]models.Transaction),
		byDevice: make(map[int64][]models.Transaction),
		amounts:  make([]float64, 0, len(baseline)),
	}
	for _, tx := range baseline {
		s.byUser[tx.UserID] = append(s.byUser[tx.UserID], tx)
		// device_id = 0 индексируется как обычный ключ, без спецобработки
		s.byDevice[tx.DeviceID] = append(s.byDevice[tx.DeviceID], tx)
		s.amounts = append(s.amounts, tx.TransactionAmount)
	}
	return s
}

// NewStore строит хранилище поверх готовой выборки.
// Используется загрузчиком и тестами; выборка не должна меняться после передачи
func NewStore(baseline []models.Transaction) *Store {
	return newStore(baseline)
}

// Empty возвращает пустое хранилище: все запросы ведут себя как "истории нет"
func Empty() *Store {
	return newStore(nil)
}

// Size возвращает размер базовой выборки
func (s *Store) Size() int {
	return len(s.baseline)
}

// All возвращает все транзакции базовой выборки в порядке загрузки.
// Срез общий и только для чтения, вызывающий не должен его изменять
func (s *Store) All() []models.Transaction {
	return s.baseline
}

// ByUser возвращает исторические транзакции пользователя в порядке загрузки
func (s *Store) ByUser(userID int64) []models.Transaction {
	return s.byUser[userID]
}

// ByDevice возвращает исторические транзакции устройства в порядке загрузки
func (s *Store) ByDevice(deviceID int64) []models.Transaction {
	return s.byDevice[deviceID]
}

// AmountDistribution возвращает суммы всех транзакций выборки в порядке загрузки.
// Срез общий и только для чтения, вызывающий не должен его изменять
func (s *Store) AmountDistribution() []float64 {
	return s.amounts
}
