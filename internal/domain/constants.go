package domain

// Значения ограничений подбора по умолчанию
const (
	DefaultMinRating        = 3.0
	DefaultMinCompletedJobs = 10
	DefaultMaxDistanceMiles = 50.0
)

// Границы валидации опций подбора
const (
	MinAllowedRating = 1.0
	MaxAllowedRating = 5.0
)

// ExperienceSaturationJobs количество заказов, при котором балл опыта достигает максимума
// Настроечная константа, не бизнес-закон
const ExperienceSaturationJobs = 100

// MaxSubScore верхняя граница каждого под-балла и итогового балла
const MaxSubScore = 100.0

// Наборы весов скоринга. На один вызов выбирается ровно один набор
var (
	// DefaultWeights базовый набор: близость важнее всего
	DefaultWeights = ScoreWeights{Distance: 0.4, Rating: 0.3, Experience: 0.1, SkillLevel: 0.2}

	// RatingWeights набор для PrioritizeRating
	RatingWeights = ScoreWeights{Distance: 0.3, Rating: 0.5, Experience: 0.1, SkillLevel: 0.1}

	// ExperienceWeights набор для PrioritizeExperience
	ExperienceWeights = ScoreWeights{Distance: 0.3, Rating: 0.2, Experience: 0.4, SkillLevel: 0.1}
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
