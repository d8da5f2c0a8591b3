package matching

import "github.com/m04kA/SMC-MatchingService/internal/domain"

// scoreCandidate вычисляет четыре под-балла (каждый 0-100) и итоговый
// нормированный балл кандидата. capability - запись исполнителя по
// запрошенной услуге, кандидат уже прошел фильтрацию
func scoreCandidate(c domain.ProviderCandidate, capability domain.Capability, weights domain.ScoreWeights) (float64, domain.ScoreBreakdown) {
	scores := domain.ScoreBreakdown{
		Distance:   distanceScore(c.Distance, c.Provider.MaxTravelDistance),
		Rating:     ratingScore(c.Provider.Rating),
		Experience: experienceScore(c.Provider.CompletedJobs),
		SkillLevel: skillLevelScore(capability.SkillLevel),
	}

	total := scores.Distance*weights.Distance +
		scores.Rating*weights.Rating +
		scores.Experience*weights.Experience +
		scores.SkillLevel*weights.SkillLevel

	// Нормируем на сумму весов: итог остается в границах под-баллов
	// при любом наборе весов
	return total / weights.Sum(), scores
}

// distanceScore балл близости: чем ближе, тем выше
// Исполнитель на границе собственного радиуса выезда получает 0
func distanceScore(distance, maxTravelDistance float64) float64 {
	if maxTravelDistance <= 0 {
		return 0
	}
	return clampScore(domain.MaxSubScore * (1 - distance/maxTravelDistance))
}

// ratingScore балл рейтинга: линейная шкала от 0 до 5 звезд
func ratingScore(rating float64) float64 {
	return clampScore(domain.MaxSubScore * rating / domain.MaxAllowedRating)
}

// experienceScore балл опыта: насыщается на ExperienceSaturationJobs заказах
func experienceScore(completedJobs int) float64 {
	ratio := float64(completedJobs) / domain.ExperienceSaturationJobs
	if ratio > 1 {
		ratio = 1
	}
	return clampScore(domain.MaxSubScore * ratio)
}

// skillLevelScore балл квалификации по запрошенной услуге
func skillLevelScore(level domain.SkillLevel) float64 {
	return clampScore(domain.MaxSubScore * float64(level) / float64(domain.MaxSkillLevel))
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > domain.MaxSubScore {
		return domain.MaxSubScore
	}
	return score
}
