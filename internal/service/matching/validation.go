package matching

import (
	"fmt"

	"github.com/m04kA/SMC-MatchingService/internal/domain"
)

// ValidateQuery валидирует запрос и опции подбора
// Используется шлюзом удаленного поиска, чтобы отклонить некорректный
// запрос до обращения к источнику данных
func ValidateQuery(req *domain.BookingRequest, opts *domain.MatchingOptions) error {
	if err := validateRequest(req); err != nil {
		return err
	}
	return validateOptions(opts)
}

// validateRequest валидирует запрос подбора
// Выполняется до любой работы: движок не начинает скоринг по некорректному запросу
func validateRequest(req *domain.BookingRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.Location.IsValid() {
		return fmt.Errorf("%w: location out of range: lat=%f, lon=%f",
			ErrInvalidInput, req.Location.Latitude, req.Location.Longitude)
	}

	// Только формат HH:MM; порядок start < end движком не гарантируется
	if err := req.TimeSlot.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid timeSlot.startTime: %v", ErrInvalidInput, err)
	}
	if err := req.TimeSlot.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid timeSlot.endTime: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateOptions валидирует опции подбора, если они переданы
func validateOptions(opts *domain.MatchingOptions) error {
	if opts == nil {
		return nil
	}

	if opts.MinRating != nil {
		if *opts.MinRating < domain.MinAllowedRating || *opts.MinRating > domain.MaxAllowedRating {
			return fmt.Errorf("%w: minRating must be between %v and %v",
				ErrInvalidInput, domain.MinAllowedRating, domain.MaxAllowedRating)
		}
	}

	if opts.MaxDistance != nil && *opts.MaxDistance <= 0 {
		return fmt.Errorf("%w: maxDistance must be positive", ErrInvalidInput)
	}

	if opts.MinCompletedJobs != nil && *opts.MinCompletedJobs < 0 {
		return fmt.Errorf("%w: minCompletedJobs must be non-negative", ErrInvalidInput)
	}

	if opts.RequiredSkillLevel != nil && !opts.RequiredSkillLevel.IsValid() {
		return fmt.Errorf("%w: unknown requiredSkillLevel: %d", ErrInvalidInput, *opts.RequiredSkillLevel)
	}

	// На один вызов выбирается ровно один набор весов
	if opts.PrioritizeRating && opts.PrioritizeExperience {
		return fmt.Errorf("%w: prioritizeRating and prioritizeExperience are mutually exclusive", ErrInvalidInput)
	}

	return nil
}

// effectiveConstraints ограничения подбора после подстановки значений по умолчанию
type effectiveConstraints struct {
	minRating        float64
	maxDistance      float64
	minCompletedJobs int
	requiredSkill    *domain.SkillLevel
}

// resolveConstraints подставляет значения по умолчанию вместо отсутствующих опций
func resolveConstraints(opts *domain.MatchingOptions) effectiveConstraints {
	c := effectiveConstraints{
		minRating:        domain.DefaultMinRating,
		maxDistance:      domain.DefaultMaxDistanceMiles,
		minCompletedJobs: domain.DefaultMinCompletedJobs,
	}

	if opts == nil {
		return c
	}

	if opts.MinRating != nil {
		c.minRating = *opts.MinRating
	}
	if opts.MaxDistance != nil {
		c.maxDistance = *opts.MaxDistance
	}
	if opts.MinCompletedJobs != nil {
		c.minCompletedJobs = *opts.MinCompletedJobs
	}
	c.requiredSkill = opts.RequiredSkillLevel

	return c
}

// resolveWeights выбирает набор весов по опциям запроса
func resolveWeights(opts *domain.MatchingOptions) domain.ScoreWeights {
	if opts != nil {
		if opts.PrioritizeRating {
			return domain.RatingWeights
		}
		if opts.PrioritizeExperience {
			return domain.ExperienceWeights
		}
	}
	return domain.DefaultWeights
}
