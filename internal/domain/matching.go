package domain

import (
	"time"

	"github.com/m04kA/SMC-MatchingService/pkg/types"
)

// TimeSlot запрошенный интервал времени услуги
// Окно доступности исполнителя должно целиком содержать этот интервал
type TimeSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// BookingRequest запрос клиента на подбор исполнителей
type BookingRequest struct {
	ServiceID string
	Date      time.Time // календарная дата услуги, время суток игнорируется
	TimeSlot  TimeSlot
	Location  Location

	// PreferredProviders поднимаются в начало выдачи независимо от балла
	PreferredProviders []string
	// ExcludedProviders безусловно убираются до скоринга
	ExcludedProviders []string
}

// MatchingOptions настраиваемые ограничения и веса одного запроса подбора
// Нулевые указатели означают значения по умолчанию из constants.go
type MatchingOptions struct {
	MinRating            *float64 // 1-5
	MaxDistance          *float64 // мили, > 0
	MinCompletedJobs     *int     // >= 0
	RequiredSkillLevel   *SkillLevel
	PrioritizeRating     bool
	PrioritizeExperience bool
}

// ScoreBreakdown разбивка балла по факторам, каждый в диапазоне 0-100
type ScoreBreakdown struct {
	Distance   float64
	Rating     float64
	Experience float64
	SkillLevel float64
}

// ProviderMatch один элемент ранжированной выдачи
// Производное значение: не хранится, пересчитывается на каждый запрос
type ProviderMatch struct {
	Provider   Provider
	Distance   float64 // мили до клиента
	MatchScore float64 // нормированный взвешенный балл, 0-100
	Scores     ScoreBreakdown
}

// ProviderCandidate исполнитель с известным расстоянием до клиента
// Расстояние либо вычислено движком локально, либо получено от источника
// данных с радиусным пре-фильтром
type ProviderCandidate struct {
	Provider Provider
	Distance float64 // мили
}

// ScoreWeights веса факторов при вычислении итогового балла
type ScoreWeights struct {
	Distance   float64
	Rating     float64
	Experience float64
	SkillLevel float64
}

// Sum возвращает сумму весов (нормирующий знаменатель)
func (w ScoreWeights) Sum() float64 {
	return w.Distance + w.Rating + w.Experience + w.SkillLevel
}
