package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-MatchingService/internal/domain"
)

func TestScoreCandidate_DefaultWeights(t *testing.T) {
	c := domain.ProviderCandidate{
		Provider: domain.Provider{
			Rating:            4.5,
			CompletedJobs:     200,
			MaxTravelDistance: 20,
		},
		Distance: 5,
	}
	capability := domain.Capability{ServiceID: "cleaning", SkillLevel: domain.SkillExpert}

	score, scores := scoreCandidate(c, capability, domain.DefaultWeights)

	assert.InDelta(t, 75, scores.Distance, 1e-9)    // 100 * (1 - 5/20)
	assert.InDelta(t, 90, scores.Rating, 1e-9)      // 100 * 4.5/5
	assert.InDelta(t, 100, scores.Experience, 1e-9) // насыщение на 100 заказах
	assert.InDelta(t, 100, scores.SkillLevel, 1e-9) // expert = максимум

	// 75*0.4 + 90*0.3 + 100*0.1 + 100*0.2 = 87
	assert.InDelta(t, 87, score, 1e-9)
}

func TestScoreCandidate_WeightPresetsShiftRanking(t *testing.T) {
	// veteran: много заказов, средний рейтинг; darling: наоборот
	veteran := domain.ProviderCandidate{
		Provider: domain.Provider{Rating: 3.5, CompletedJobs: 100, MaxTravelDistance: 20},
		Distance: 10,
	}
	darling := domain.ProviderCandidate{
		Provider: domain.Provider{Rating: 5.0, CompletedJobs: 20, MaxTravelDistance: 20},
		Distance: 10,
	}
	capability := domain.Capability{ServiceID: "cleaning", SkillLevel: domain.SkillIntermediate}

	vExp, _ := scoreCandidate(veteran, capability, domain.ExperienceWeights)
	dExp, _ := scoreCandidate(darling, capability, domain.ExperienceWeights)
	assert.Greater(t, vExp, dExp, "experience preset favours the veteran")

	vRat, _ := scoreCandidate(veteran, capability, domain.RatingWeights)
	dRat, _ := scoreCandidate(darling, capability, domain.RatingWeights)
	assert.Greater(t, dRat, vRat, "rating preset favours the darling")
}

func TestDistanceScore(t *testing.T) {
	tests := []struct {
		name      string
		distance  float64
		maxTravel float64
		want      float64
	}{
		{name: "at the customer", distance: 0, maxTravel: 20, want: 100},
		{name: "half radius", distance: 10, maxTravel: 20, want: 50},
		{name: "edge of own radius", distance: 20, maxTravel: 20, want: 0},
		{name: "beyond radius floors at zero", distance: 25, maxTravel: 20, want: 0},
		{name: "zero radius guard", distance: 0, maxTravel: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, distanceScore(tt.distance, tt.maxTravel), 1e-9)
		})
	}
}

func TestExperienceScore_Saturation(t *testing.T) {
	assert.InDelta(t, 0, experienceScore(0), 1e-9)
	assert.InDelta(t, 50, experienceScore(50), 1e-9)
	assert.InDelta(t, 100, experienceScore(100), 1e-9)
	assert.InDelta(t, 100, experienceScore(5000), 1e-9)
}

func TestSkillLevelScore(t *testing.T) {
	assert.InDelta(t, 25, skillLevelScore(domain.SkillBeginner), 1e-9)
	assert.InDelta(t, 50, skillLevelScore(domain.SkillIntermediate), 1e-9)
	assert.InDelta(t, 75, skillLevelScore(domain.SkillAdvanced), 1e-9)
	assert.InDelta(t, 100, skillLevelScore(domain.SkillExpert), 1e-9)
}

func TestScoreCandidate_BoundedForAnyWeights(t *testing.T) {
	c := domain.ProviderCandidate{
		Provider: domain.Provider{Rating: 5, CompletedJobs: 1000, MaxTravelDistance: 50},
		Distance: 0,
	}
	capability := domain.Capability{SkillLevel: domain.SkillExpert}

	for _, weights := range []domain.ScoreWeights{domain.DefaultWeights, domain.RatingWeights, domain.ExperienceWeights} {
		score, _ := scoreCandidate(c, capability, weights)
		assert.LessOrEqual(t, score, 100.0)
		assert.GreaterOrEqual(t, score, 0.0)
	}
}
