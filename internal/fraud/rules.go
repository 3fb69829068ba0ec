package fraud

import (
	"math"
	"sort"
	"time"

	"antifraud-system/internal/models"
)

// Параметры правил по умолчанию
const (
	DefaultRapidWindowMinutes = 5      // Окно детектора частых транзакций
	DefaultDailyLimit         = 3000.0 // Дневной лимит суммы на пользователя
)

// History определяет доступ к базовой выборке, необходимый правилам.
// Реализуется history.Store. Все методы — чистые чтения иммутабельных данных
type History interface {
	ByUser(userID int64) []models.Transaction
	ByDevice(deviceID int64) []models.Transaction
	AmountDistribution() []float64
}

// Ruleset реализует отдельные антифрод-проверки над базовой выборкой:
// классификацию риска, детектор частых транзакций, дневной лимит и чарджбэки
type Ruleset struct {
	history    History
	window     time.Duration
	dailyLimit float64
}

// NewRuleset создает набор правил. Неположительные параметры заменяются значениями по умолчанию
func NewRuleset(history History, windowMinutes int, dailyLimit float64) *Ruleset {
	if windowMinutes <= 0 {
		windowMinutes = DefaultRapidWindowMinutes
	}
	if dailyLimit <= 0 {
		dailyLimit = DefaultDailyLimit
	}
	return &Ruleset{
		history:    history,
		window:     time.Duration(windowMinutes) * time.Minute,
		dailyLimit: dailyLimit,
	}
}

// ClassifyAmount относит сумму к классу LOW/MED/HIGH по 25-му и 75-му перцентилям
// распределения сумм базовой выборки. Пустая выборка дает MED (нет данных — не ошибка).
// Перцентили пересчитываются при каждом вызове: выборка после загрузки не растет
func (r *Ruleset) ClassifyAmount(amount float64) string {
	q1, q3, ok := r.Quantiles()
	if !ok {
		return models.RiskClassMed
	}
	switch {
	case amount < q1:
		return models.RiskClassLow
	case amount <= q3:
		return models.RiskClassMed
	default:
		return models.RiskClassHigh
	}
}

// Quantiles возвращает 25-й и 75-й перцентили распределения сумм.
// ok=false означает пустую выборку
func (r *Ruleset) Quantiles() (q1, q3 float64, ok bool) {
	dist := r.history.AmountDistribution()
	if len(dist) == 0 {
		return 0, 0, false
	}
	sorted := make([]float64, len(dist))
	copy(sorted, dist)
	sort.Float64s(sorted)
	return quantile(sorted, 0.25), quantile(sorted, 0.75), true
}

// IsRapid сообщает, была ли у пользователя или устройства историческая транзакция
// в пределах окна от момента at. Окно симметрично: прошлые и "будущие" метки
// базовой выборки учитываются одинаково, ровно на границе окна — тоже попадание
func (r *Ruleset) IsRapid(userID, deviceID int64, at time.Time) (rapidUser, rapidDevice bool) {
	rapidUser = anyWithinWindow(r.history.ByUser(userID), at, r.window)
	rapidDevice = anyWithinWindow(r.history.ByDevice(deviceID), at, r.window)
	return rapidUser, rapidDevice
}

// ExceedsDailyLimit суммирует транзакции пользователя за ту же календарную дату,
// что и at, прибавляет входящую сумму и сравнивает с лимитом.
// Равенство лимиту нарушением не считается, граница строгая сверху
func (r *Ruleset) ExceedsDailyLimit(userID int64, at time.Time, amount float64) bool {
	total := amount
	for _, tx := range r.history.ByUser(userID) {
		if models.SameCalendarDay(tx.TransactionDate, at) {
			total += tx.TransactionAmount
		}
	}
	return total > r.dailyLimit
}

// HasChargeback сообщает, есть ли у пользователя историческая транзакция с чарджбэком
func (r *Ruleset) HasChargeback(userID int64) bool {
	for _, tx := range r.history.ByUser(userID) {
		if tx.HasCbk {
			return true
		}
	}
	return false
}

func anyWithinWindow(txs []models.Transaction, at time.Time, window time.Duration) bool {
	for _, tx := range txs {
		elapsed := at.Sub(tx.TransactionDate)
		if elapsed < 0 {
			elapsed = -elapsed
		}
		if elapsed <= window {
			return true
		}
	}
	return false
}

// quantile вычисляет квантиль с линейной интерполяцией по отсортированному срезу
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
