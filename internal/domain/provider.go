package domain

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-MatchingService/pkg/types"
)

// SkillLevel уровень квалификации исполнителя по услуге
// Числовой порядок значим: сравнения требований идут через >=
type SkillLevel int

const (
	SkillBeginner     SkillLevel = 1
	SkillIntermediate SkillLevel = 2
	SkillAdvanced     SkillLevel = 3
	SkillExpert       SkillLevel = 4

	// MaxSkillLevel максимальный уровень, используется при нормировании оценки
	MaxSkillLevel = SkillExpert
)

// String возвращает строковое представление уровня
func (s SkillLevel) String() string {
	switch s {
	case SkillBeginner:
		return "beginner"
	case SkillIntermediate:
		return "intermediate"
	case SkillAdvanced:
		return "advanced"
	case SkillExpert:
		return "expert"
	default:
		return "unknown"
	}
}

// IsValid проверяет, что уровень принадлежит допустимому набору
func (s SkillLevel) IsValid() bool {
	return s >= SkillBeginner && s <= SkillExpert
}

// ParseSkillLevel разбирает уровень квалификации из строки (БД, JSON)
func ParseSkillLevel(s string) (SkillLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner":
		return SkillBeginner, true
	case "intermediate":
		return SkillIntermediate, true
	case "advanced":
		return SkillAdvanced, true
	case "expert":
		return SkillExpert, true
	default:
		return 0, false
	}
}

// Location координаты точки в градусах WGS84
type Location struct {
	Latitude  float64
	Longitude float64
}

// IsValid проверяет допустимость диапазонов координат
func (l Location) IsValid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

// Capability услуга, которую умеет выполнять исполнитель, и уровень владения ею
// На одну услугу осмысленна максимум одна запись
type Capability struct {
	ServiceID  string
	SkillLevel SkillLevel
}

// AvailabilityWindow окно доступности исполнителя
// Время локальное, без таймзоны; окна не обязаны быть отсортированы и могут пересекаться
type AvailabilityWindow struct {
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Provider исполнитель услуг
// Создается и обновляется вне движка подбора; в рамках одного запроса
// рассматривается как неизменяемые входные данные
type Provider struct {
	ID                string
	Name              string
	Rating            float64 // средний рейтинг клиентов, 1.0-5.0
	CompletedJobs     int     // выполненных заказов за все время
	Capabilities      []Capability
	Availability      []AvailabilityWindow
	MaxTravelDistance float64 // радиус выезда в милях, заявленный исполнителем
	Location          Location

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CapabilityFor возвращает запись о владении услугой serviceID, если она есть
func (p *Provider) CapabilityFor(serviceID string) (Capability, bool) {
	for _, c := range p.Capabilities {
		if c.ServiceID == serviceID {
			return c, true
		}
	}
	return Capability{}, false
}
